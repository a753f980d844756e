package page

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/fasco-shop/storefront/internal/carousel"
	"github.com/fasco-shop/storefront/internal/components"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/countdown"
	"github.com/fasco-shop/storefront/internal/view"
)

func receive(t *testing.T, p *Page) Update {
	t.Helper()
	select {
	case u := <-p.Changes():
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("no update published")
		return Update{}
	}
}

func TestNew_NoImages(t *testing.T) {
	site := config.Default()
	site.Deal.Images = nil
	_, err := New(site)
	require.ErrorIs(t, err, carousel.ErrNoImages)
}

func TestPage_InitialState(t *testing.T) {
	p, err := New(config.Default())
	require.NoError(t, err)

	st := p.State()
	assert.Equal(t, countdown.Initial, st.Countdown)
	assert.Equal(t, 2, st.Carousel.Cursor)
	assert.False(t, p.Running())
}

func TestPage_TickPublishesUpdate(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := countdown.NewManualClock()
	p, err := New(config.Default(), countdown.WithClock(clock))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, p.Mount(ctx))
	require.True(t, clock.Fire(ctx))

	u := receive(t, p)
	assert.Equal(t, ReasonTick, u.Reason)
	assert.Equal(t, countdown.Countdown{Days: 1, Hours: 12, Minutes: 20, Seconds: 29}, u.State.Countdown)

	p.Unmount()
	assert.False(t, p.Running())
	assert.False(t, clock.Fire(ctx), "no schedule after unmount")
}

func TestPage_NextPrev(t *testing.T) {
	p, err := New(config.Default())
	require.NoError(t, err)

	p.Next()
	u := receive(t, p)
	assert.Equal(t, ReasonNext, u.Reason)
	assert.Equal(t, 0, u.State.Carousel.Cursor)

	p.Prev()
	u = receive(t, p)
	assert.Equal(t, ReasonPrev, u.Reason)
	assert.Equal(t, 2, u.State.Carousel.Cursor)
}

func TestPage_ChangesKeepsLatest(t *testing.T) {
	p, err := New(config.Default())
	require.NoError(t, err)

	p.Next()
	p.Next()
	p.Next()

	u := receive(t, p)
	assert.Equal(t, 1, u.State.Carousel.Cursor)
	select {
	case extra := <-p.Changes():
		t.Fatalf("unexpected extra update %+v", extra)
	default:
	}
}

func TestPage_MountTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(config.Default(), countdown.WithClock(countdown.NewManualClock()))
	require.NoError(t, err)

	require.NoError(t, p.Mount(context.Background()))
	defer p.Unmount()
	require.ErrorIs(t, p.Mount(context.Background()), countdown.ErrMounted)
}

func TestPage_MountResetsCarousel(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, err := New(config.Default(), countdown.WithClock(countdown.NewManualClock()))
	require.NoError(t, err)

	p.Next()
	require.Equal(t, 0, p.State().Carousel.Cursor)

	require.NoError(t, p.Mount(context.Background()))
	assert.Equal(t, 2, p.State().Carousel.Cursor)
	p.Unmount()
}

func TestPage_Render(t *testing.T) {
	p, err := New(config.Default())
	require.NoError(t, err)

	n := p.Render()
	assert.Equal(t, "app", n.Attr(components.ComponentAttr))
	primary := view.Find(n, "data-slot", "primary")
	require.NotNil(t, primary)
	assert.Equal(t, "/assets/HomeCarousal/image.png", primary.Attr("src"))

	var b strings.Builder
	require.NoError(t, p.Document().Render(&b))
	out := b.String()
	assert.Contains(t, out, `data-page-id="`+p.ID()+`"`)
	assert.Contains(t, out, "<title>FASCO | Ultimate Sale</title>")
	assert.Contains(t, out, components.TimerHeading)
	assert.Contains(t, out, "@keyframes scroll")
}
