// Package page holds the live state of one landing page: the deal countdown
// and the carousel cursor. Hosts mount it, drive it and render it.
package page

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fasco-shop/storefront/internal/carousel"
	"github.com/fasco-shop/storefront/internal/components"
	"github.com/fasco-shop/storefront/internal/config"
	"github.com/fasco-shop/storefront/internal/countdown"
	"github.com/fasco-shop/storefront/internal/view"
)

// Reason says what caused an Update.
type Reason string

const (
	ReasonTick Reason = "tick"
	ReasonNext Reason = "next"
	ReasonPrev Reason = "prev"
)

// Update is published on Changes after every state change.
type Update struct {
	Reason Reason
	State  components.State
}

// Page owns the Timer and the Carousel for one rendered page.
type Page struct {
	id       string
	site     config.Site
	timer    *countdown.Timer
	carousel *carousel.Carousel
	changes  chan Update
}

// New builds an unmounted page for site. opts are passed to the countdown
// Timer; any OnChange among them is replaced by the page's own.
func New(site config.Site, opts ...countdown.Option) (*Page, error) {
	c, err := carousel.New(site.Deal.Images)
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}

	p := &Page{
		id:       uuid.NewString(),
		site:     site,
		carousel: c,
		changes:  make(chan Update, 1),
	}
	opts = append(opts, countdown.WithOnChange(func(countdown.Countdown) {
		p.publish(ReasonTick)
	}))
	p.timer = countdown.NewTimer(site.Deal.Countdown, opts...)
	return p, nil
}

// ID identifies the page in logs and in the rendered document.
func (p *Page) ID() string { return p.id }

// Site returns the config the page was built from.
func (p *Page) Site() config.Site { return p.site }

// Mount resets both components to their initial state and starts the countdown.
func (p *Page) Mount(ctx context.Context) error {
	p.carousel.Reset()
	if err := p.timer.Mount(ctx); err != nil {
		return fmt.Errorf("mount page %s: %w", p.id, err)
	}
	p.logger().WithField("timer_id", p.timer.ID()).Debug("page mounted")
	return nil
}

// Unmount stops the countdown. No tick Update is published after it returns.
func (p *Page) Unmount() {
	p.timer.Unmount()
	p.logger().Debug("page unmounted")
}

// Running reports whether the countdown is still ticking.
func (p *Page) Running() bool { return p.timer.Running() }

// Next advances the carousel.
func (p *Page) Next() {
	p.carousel.Next()
	p.publish(ReasonNext)
}

// Prev moves the carousel back.
func (p *Page) Prev() {
	p.carousel.Prev()
	p.publish(ReasonPrev)
}

// Changes delivers the latest Update. Slow readers only see the most recent
// one; intermediate updates are dropped.
func (p *Page) Changes() <-chan Update { return p.changes }

// State returns a snapshot of the live state.
func (p *Page) State() components.State {
	return components.State{
		Countdown: p.timer.Snapshot(),
		Carousel:  p.carousel.Current(),
	}
}

// Render builds the view tree for the current state.
func (p *Page) Render() *view.Node {
	return components.App(p.site, p.State())
}

// Document wraps Render in the full HTML shell.
func (p *Page) Document() view.Document {
	return view.Document{
		Title:   p.site.Title,
		Lang:    p.site.Lang,
		Scripts: p.site.Scripts,
		PageID:  p.id,
		Body:    p.Render(),
	}
}

func (p *Page) publish(reason Reason) {
	u := Update{Reason: reason, State: p.State()}
	for {
		select {
		case p.changes <- u:
			return
		default:
		}
		// Drop the stale update and retry.
		select {
		case <-p.changes:
		default:
		}
	}
}

func (p *Page) logger() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"component": "page", "page_id": p.id})
}
