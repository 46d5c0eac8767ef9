// Package nav holds the navigation chrome state: compact mode driven by
// scroll position and the overlay menu that locks page scrolling.
package nav

import (
	"strings"

	"github.com/olivier-w/folio/internal/page"
)

// DefaultCompactThreshold is the scroll offset past which the bar condenses.
const DefaultCompactThreshold = 50.0

// HomeID is the section the identity link scrolls to.
const HomeID = "home"

var links = []string{"About", "Projects", "Contact"}

// Links returns the navigation item labels in display order.
func Links() []string {
	out := make([]string, len(links))
	copy(out, links)
	return out
}

// State is the navigation display state.
type State struct {
	Compact     bool
	OverlayOpen bool
}

// Viewport is what the controller needs from the host window.
type Viewport interface {
	ScrollY() float64
	AddEventListener(kind page.Event, fn func()) page.ListenerID
	RemoveEventListener(id page.ListenerID)
	ScrollIntoView(id string) bool
	ScrollLock() *page.ScrollLock
}

// Controller is the navigation state machine.
type Controller struct {
	threshold float64
	state     State
	vp        Viewport
	scrollID  page.ListenerID
	release   func()
}

// NewController creates a controller with the given compact threshold.
// Non-positive thresholds use DefaultCompactThreshold.
func NewController(threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultCompactThreshold
	}
	return &Controller{threshold: threshold}
}

// Mount subscribes to scroll events and syncs compact mode with the current offset.
func (c *Controller) Mount(vp Viewport) {
	if c.vp != nil {
		return
	}
	c.vp = vp
	c.scrollID = vp.AddEventListener(page.Scroll, c.onScroll)
	c.onScroll()
	c.setOverlay(c.state.OverlayOpen)
}

// Unmount detaches from the viewport. An open overlay is closed so the
// scroll lock is always released.
func (c *Controller) Unmount() {
	if c.vp == nil {
		return
	}
	c.vp.RemoveEventListener(c.scrollID)
	c.setOverlay(false)
	c.vp = nil
}

// State returns the current display state.
func (c *Controller) State() State { return c.state }

// Threshold returns the compact threshold.
func (c *Controller) Threshold() float64 { return c.threshold }

// Toggle flips the overlay menu.
func (c *Controller) Toggle() {
	c.setOverlay(!c.state.OverlayOpen)
}

// Close shuts the overlay if it is open.
func (c *Controller) Close() {
	c.setOverlay(false)
}

// Select closes the overlay and smooth-scrolls to the section named by item.
// It reports whether the section exists; a missing section is a no-op.
func (c *Controller) Select(item string) bool {
	c.setOverlay(false)
	if c.vp == nil {
		return false
	}
	return c.vp.ScrollIntoView(strings.ToLower(item))
}

// SelectHome is Select for the identity link.
func (c *Controller) SelectHome() bool {
	return c.Select(HomeID)
}

func (c *Controller) onScroll() {
	c.state.Compact = IsCompact(c.vp.ScrollY(), c.threshold)
}

// setOverlay is the only writer of OverlayOpen; the scroll lock follows it.
func (c *Controller) setOverlay(open bool) {
	c.state.OverlayOpen = open
	switch {
	case open && c.release == nil && c.vp != nil:
		c.release = c.vp.ScrollLock().Acquire()
	case !open && c.release != nil:
		c.release()
		c.release = nil
	}
}

// IsCompact reports whether offset is past threshold. There is no hysteresis.
func IsCompact(offset, threshold float64) bool {
	return offset > threshold
}
