package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fasco-shop/storefront/internal/components"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	width := m.contentWidth()
	sections := []string{
		renderNav(m),
		renderHero(m),
		renderMarquee(m),
		renderDeal(m),
		renderCarousel(m),
		m.help.View(m.keys),
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(sections, "\n\n")) + "\n"
}

func renderNav(m Model) string {
	brand := lipgloss.NewStyle().Bold(true).Render(m.site.Brand)
	links := make([]string, 0, len(m.site.Nav.Links))
	for _, l := range m.site.Nav.Links {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor))
		if l.Highlight {
			style = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
		}
		links = append(links, style.Render(l.Label))
	}
	return brand + "   " + strings.Join(links, "  ")
}

func renderHero(m Model) string {
	hero := m.site.Hero
	lines := []string{}
	if hero.Eyebrow != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(grayColor)).Bold(true).Render(hero.Eyebrow))
	}
	lines = append(lines, lipgloss.NewStyle().Bold(true).Underline(true).Render(hero.Headline))
	if hero.Tagline != "" {
		lines = append(lines, hero.Tagline)
	}
	lines = append(lines, lipgloss.NewStyle().Reverse(true).Padding(0, 1).Render(hero.CTA))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(gray240Color)).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMarquee lists the logos once; the terminal preview does not animate.
func renderMarquee(m Model) string {
	names := make([]string, 0, len(m.site.Marquee.Logos))
	for _, l := range m.site.Marquee.Logos {
		names = append(names, "Logo "+strconv.Itoa(l.ID))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(gray240Color)).Render(strings.Join(names, marqueeGap))
}

func renderDeal(m Model) string {
	deal := m.site.Deal
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(deal.Headline))
	b.WriteString("\n")
	if deal.Description != "" {
		b.WriteString(lipgloss.NewStyle().Width(m.contentWidth()).Foreground(lipgloss.Color(grayColor)).Render(deal.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderTimer(m))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.elapsed()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Reverse(true).Padding(0, 1).Render(deal.CTA))
	return b.String()
}

func renderTimer(m Model) string {
	heading := m.spinner.View() + " " + components.TimerHeading
	if m.finished {
		heading = lipgloss.NewStyle().Foreground(lipgloss.Color(redColor)).Render("Deal ended")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(timerBoxWidth).
		Align(lipgloss.Center)
	valueColor := greenColor
	if m.finished {
		valueColor = orange208Color
	}

	boxes := make([]string, 0, 4)
	for _, box := range m.state.Countdown.Boxes() {
		value := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(valueColor)).Render(strconv.Itoa(box.Value))
		cell := lipgloss.JoinVertical(lipgloss.Center, boxStyle.Render(value), box.Label)
		boxes = append(boxes, lipgloss.NewStyle().MarginRight(1).Render(cell))
	}
	return heading + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderCarousel(m Model) string {
	view := m.state.Carousel
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	primary := frame.BorderForeground(lipgloss.Color(blueColor)).Render(view.Primary.Alt + "\n" + view.Primary.Src)
	secondary := frame.BorderForeground(lipgloss.Color(gray240Color)).Render(view.Secondary.Alt + "\n" + view.Secondary.Src)

	arrow := lipgloss.NewStyle().Padding(1, 1).Bold(true)
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		arrow.Render("←"),
		primary,
		" ",
		secondary,
		arrow.Render("→"),
	)
	return row + "\n" + m.images.View()
}
