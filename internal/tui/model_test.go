//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasco-shop/storefront/internal/components"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/countdown"
	"github.com/fasco-shop/storefront/internal/page"
)

func newTestModel(t *testing.T) (Model, *page.Page, chan struct{}) {
	t.Helper()
	site := config.Default()
	p, err := page.New(site)
	require.NoError(t, err)
	done := make(chan struct{})
	t.Cleanup(func() {
		select {
		case <-done:
		default:
			close(done)
		}
	})
	return NewModel(site, p, done), p, done
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_InitialState(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, countdown.Initial, m.state.Countdown)
	assert.Equal(t, 2, m.state.Carousel.Cursor)
	assert.Equal(t, 2, m.images.Index())
	assert.False(t, m.finished)
	assert.InDelta(t, 0.0, m.elapsed(), 1e-9)
}

func TestUpdate_ArrowKeysMoveCarousel(t *testing.T) {
	m, p, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.state.Carousel.Cursor)
	assert.Equal(t, 0, m.images.Index())
	assert.Equal(t, 0, p.State().Carousel.Cursor)

	m, _ = press(t, m, runes("l"))
	assert.Equal(t, 1, m.state.Carousel.Cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, runes("h"))
	assert.Equal(t, 2, m.state.Carousel.Cursor)
	assert.Equal(t, "Deal 3", m.state.Carousel.Primary.Alt)
	assert.Equal(t, "Deal 1", m.state.Carousel.Secondary.Alt)
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _, _ := newTestModel(t)
		m, cmd := press(t, m, k)
		require.NotNil(t, cmd, k.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Equal(t, "Shutting down...\n", m.View())
	}
}

func TestUpdate_ToggleHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	short := m.View()

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())

	m, _ = press(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_PageUpdate(t *testing.T) {
	m, p, _ := newTestModel(t)

	st := p.State()
	st.Countdown = countdown.Countdown{}
	next, cmd := m.Update(pageUpdateMsg{Reason: page.ReasonTick, State: st})
	m = next.(Model)

	assert.NotNil(t, cmd, "listener must be re-armed")
	assert.True(t, m.finished)
	assert.InDelta(t, 1.0, m.elapsed(), 1e-9)
	assert.Contains(t, m.View(), "Deal ended")
}

func TestListenForUpdates(t *testing.T) {
	m, p, done := newTestModel(t)

	require.NotNil(t, m.Init())

	p.Next()
	msg := m.listenForUpdates()()
	u, ok := msg.(pageUpdateMsg)
	require.True(t, ok)
	assert.Equal(t, page.ReasonNext, u.Reason)
	assert.Equal(t, 0, u.State.Carousel.Cursor)

	close(done)
	assert.IsType(t, stoppedMsg{}, m.listenForUpdates()())
}

func TestUpdate_SpinnerStopsWhenDealEnds(t *testing.T) {
	m, p, _ := newTestModel(t)

	next, cmd := m.Update(m.spinner.Tick())
	m = next.(Model)
	assert.NotNil(t, cmd, "spinner keeps ticking while the deal runs")

	st := p.State()
	st.Countdown = countdown.Countdown{}
	next, _ = m.Update(pageUpdateMsg{Reason: page.ReasonTick, State: st})
	m = next.(Model)

	_, cmd = m.Update(m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestView_ShowsEverySection(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	m = next.(Model)

	out := m.View()
	for _, s := range []string{
		"FASCO", "Signup",
		"ULTIMATE", "SALE", "NEW COLLECTION", "Shop Now",
		"Logo 1", "Logo 5",
		"Deals Of The Month", components.TimerHeading,
		"Days", "Hr", "Mins", "Sec", "12", "20", "30",
		"Deal 3", "HomeCarousal/image.png",
		"Buy Now",
	} {
		assert.Contains(t, out, s)
	}
}
