// Package scroll derives the page scroll progress and smooths it for display.
package scroll

import (
	"time"

	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/page"
)

// Viewport is what the tracker reads from the host window.
type Viewport interface {
	ScrollY() float64
	MaxScroll() float64
	AddEventListener(kind page.Event, fn func()) page.ListenerID
	RemoveEventListener(id page.ListenerID)
}

// Progress is the fraction of scrollable distance traversed, clamped to [0, 1].
// A document that cannot scroll reports 0.
func Progress(offset, scrollable float64) float64 {
	if scrollable <= 0 {
		return 0
	}
	return min(max(offset/scrollable, 0), 1)
}

// Tracker keeps the raw progress current and animates a smoothed copy.
type Tracker struct {
	sched  frame.Scheduler
	value  springValue
	vp     Viewport
	ids    []page.ListenerID
	handle frame.Handle
	active bool
	raw    float64
}

// Option configures a Tracker.
type Option func(*trackerConfig)

type trackerConfig struct {
	fps       int
	stiffness float64
	damping   float64
	restDelta float64
}

// WithSpring overrides stiffness, damping and rest delta.
func WithSpring(stiffness, damping, restDelta float64) Option {
	return func(c *trackerConfig) {
		if stiffness > 0 {
			c.stiffness = stiffness
		}
		if damping > 0 {
			c.damping = damping
		}
		if restDelta > 0 {
			c.restDelta = restDelta
		}
	}
}

// WithFPS sets the rate the spring is stepped at.
func WithFPS(fps int) Option {
	return func(c *trackerConfig) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// NewTracker creates an unmounted tracker.
func NewTracker(sched frame.Scheduler, opts ...Option) *Tracker {
	cfg := trackerConfig{
		fps:       60,
		stiffness: DefaultStiffness,
		damping:   DefaultDamping,
		restDelta: DefaultRestDelta,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracker{
		sched: sched,
		value: newSpringValue(cfg.fps, cfg.stiffness, cfg.damping, cfg.restDelta),
	}
}

// Mount listens for scroll and layout changes on vp.
func (t *Tracker) Mount(vp Viewport) {
	if t.vp != nil {
		return
	}
	t.vp = vp
	t.ids = append(t.ids,
		vp.AddEventListener(page.Scroll, t.update),
		vp.AddEventListener(page.Resize, t.update),
	)
	t.update()
}

// Unmount removes listeners and cancels the pending spring frame.
func (t *Tracker) Unmount() {
	if t.vp == nil {
		return
	}
	for _, id := range t.ids {
		t.vp.RemoveEventListener(id)
	}
	t.ids = nil
	if t.active {
		t.sched.CancelFrame(t.handle)
		t.active = false
	}
	t.vp = nil
}

// Progress is the unsmoothed value.
func (t *Tracker) Progress() float64 { return t.raw }

// Value is the spring-smoothed value to draw.
func (t *Tracker) Value() float64 { return t.value.pos }

// Settled reports whether the smoothed value has reached the raw one.
func (t *Tracker) Settled() bool { return t.value.settled() }

func (t *Tracker) update() {
	t.raw = Progress(t.vp.ScrollY(), t.vp.MaxScroll())
	t.value.target = t.raw
	if !t.active && !t.value.settled() {
		t.active = true
		t.handle = t.sched.RequestFrame(t.step)
	}
}

func (t *Tracker) step(time.Duration) {
	t.active = false
	t.value.step()
	if !t.value.settled() && t.vp != nil {
		t.active = true
		t.handle = t.sched.RequestFrame(t.step)
	}
}
