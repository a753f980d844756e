package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fasco-shop/storefront/internal/components"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/page"
)

// Driver is the live page the preview shows and steers.
type Driver interface {
	Next()
	Prev()
	State() components.State
	Changes() <-chan page.Update
}

// Model is the root Bubble Tea model.
type Model struct {
	site   config.Site
	driver Driver
	done   <-chan struct{}

	state    components.State
	total    time.Duration
	finished bool

	images   list.Model
	progress progress.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	width    int
	height   int
	quitting bool
}

// NewModel constructs a Model showing d. The update listener stops when done
// is closed.
func NewModel(site config.Site, d Driver, done <-chan struct{}) Model {
	items := make([]list.Item, 0, len(site.Deal.Images))
	for i, img := range site.Deal.Images {
		items = append(items, imageItem{Index: i, Image: img})
	}
	lst := list.New(items, imageDelegate{}, defaultWidth, imageListLines)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(redColor))

	m := Model{
		site:     site,
		driver:   d,
		done:     done,
		total:    site.Deal.Countdown.Duration(),
		images:   lst,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		spinner:  sp,
		help:     help.New(),
		keys:     newKeyMap(),
	}
	m.apply(d.State())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listenForUpdates(), m.spinner.Tick)
}

// listenForUpdates returns a Tea command that waits for the next page update.
func (m Model) listenForUpdates() tea.Cmd {
	changes := m.driver.Changes()
	return func() tea.Msg {
		select {
		case u := <-changes:
			return pageUpdateMsg(u)
		case <-m.done:
			return stoppedMsg{}
		}
	}
}

// apply copies a state snapshot into the model.
func (m *Model) apply(st components.State) {
	m.state = st
	m.images.Select(st.Carousel.Cursor)
	m.finished = st.Countdown.IsZero()
}

// elapsed is the fraction of the deal window that has passed.
func (m Model) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	left := float64(m.state.Countdown.Duration()) / float64(m.total)
	if left > 1 {
		left = 1
	}
	return 1 - left
}
