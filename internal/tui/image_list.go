package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fasco-shop/storefront/internal/carousel"
)

// imageItem is the list item backing one carousel image.
type imageItem struct {
	Index int
	Image carousel.Image
}

// List item interface methods.
func (it imageItem) Title() string       { return it.Image.Alt }
func (it imageItem) Description() string { return it.Image.Src }
func (it imageItem) FilterValue() string { return it.Image.Alt + " " + it.Image.Src }

// imageDelegate renders imageItem rows, marking the primary and secondary slots.
type imageDelegate struct{}

func (d imageDelegate) Height() int                             { return 1 }
func (d imageDelegate) Spacing() int                            { return 0 }
func (d imageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d imageDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(imageItem)
	if !ok {
		return
	}
	n := len(m.Items())
	primary := index == m.Index()
	secondary := n > 1 && index == (m.Index()+1)%n

	marker := "  "
	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(gray240Color))
	switch {
	case primary:
		marker = "● "
		lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(blueColor)).Bold(true)
	case secondary:
		marker = "○ "
		lineStyle = lipgloss.NewStyle()
	}

	left := fmt.Sprintf("%s%02d. %s", marker, index+1, it.Image.Alt)
	right := it.Image.Src

	padding := m.Width() - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	_, _ = fmt.Fprint(w, lineStyle.Render(left+strings.Repeat(" ", padding)+right))
}
