// Package page models the host a page is mounted into: a viewport, a
// scrollable document of sections, viewport events, and the scroll lock.
package page

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/folio/internal/frame"
)

// Event is a viewport event kind.
type Event uint8

const (
	Scroll Event = iota
	Resize
)

func (e Event) String() string {
	switch e {
	case Scroll:
		return "scroll"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// ListenerID identifies a registered listener.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn func()
}

// smooth scroll settles once both distance and velocity drop below this, in rows.
const settleRows = 0.5

// Window is the viewport plus the document scrolled inside it.
// All methods must be called from the single UI goroutine.
type Window struct {
	width   int
	height  int
	scrollY float64
	doc     Document
	lock    ScrollLock
	sched   frame.Scheduler

	listeners map[Event][]listener
	nextID    ListenerID

	spring   harmonica.Spring
	target   float64
	velocity float64
	handle   frame.Handle
	smooth   bool
}

// Option configures a Window.
type Option func(*Window)

// WithFPS sets the frame rate the smooth-scroll spring is stepped at.
func WithFPS(fps int) Option {
	return func(w *Window) {
		if fps > 0 {
			w.spring = harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)
		}
	}
}

// NewWindow creates a window of the given size in cells.
func NewWindow(sched frame.Scheduler, width, height int, opts ...Option) *Window {
	w := &Window{
		width:     max(width, 0),
		height:    max(height, 0),
		sched:     sched,
		listeners: make(map[Event][]listener),
		spring:    harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddEventListener registers fn for kind.
func (w *Window) AddEventListener(kind Event, fn func()) ListenerID {
	w.nextID++
	w.listeners[kind] = append(w.listeners[kind], listener{id: w.nextID, fn: fn})
	return w.nextID
}

// RemoveEventListener detaches a listener. Unknown ids are ignored.
func (w *Window) RemoveEventListener(id ListenerID) {
	for kind, ls := range w.listeners {
		for i, l := range ls {
			if l.id == id {
				w.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount reports how many listeners are attached for kind.
func (w *Window) ListenerCount(kind Event) int {
	return len(w.listeners[kind])
}

func (w *Window) dispatch(kind Event) {
	ls := make([]listener, len(w.listeners[kind]))
	copy(ls, w.listeners[kind])
	for _, l := range ls {
		l.fn()
	}
}

// InnerSize returns the viewport size in cells.
func (w *Window) InnerSize() (width, height int) { return w.width, w.height }

// ScrollY returns the current vertical scroll offset in rows.
func (w *Window) ScrollY() float64 { return w.scrollY }

// ScrollHeight returns the document height in rows.
func (w *Window) ScrollHeight() int { return w.doc.Height() }

// MaxScroll is the largest reachable scroll offset.
func (w *Window) MaxScroll() float64 {
	return math.Max(0, float64(w.doc.Height()-w.height))
}

// Document returns the current layout.
func (w *Window) Document() Document { return w.doc }

// ScrollLock returns the process-wide scroll lock of this window.
func (w *Window) ScrollLock() *ScrollLock { return &w.lock }

// Resize changes the viewport size and notifies Resize listeners.
func (w *Window) Resize(width, height int) {
	w.width = max(width, 0)
	w.height = max(height, 0)
	w.dispatch(Resize)
	w.clampScroll()
}

// SetLayout replaces the document layout, e.g. after content reflows.
// Resize listeners are notified since the scrollable height may change.
func (w *Window) SetLayout(doc Document) {
	w.doc = doc
	w.dispatch(Resize)
	w.clampScroll()
}

// ScrollBy scrolls by delta rows on behalf of the user.
// It is ignored while the scroll lock is held.
func (w *Window) ScrollBy(delta float64) bool {
	return w.ScrollTo(w.scrollY + delta)
}

// ScrollTo jumps to y on behalf of the user. It interrupts a smooth scroll
// and is ignored while the scroll lock is held.
func (w *Window) ScrollTo(y float64) bool {
	if w.lock.Locked() {
		return false
	}
	w.stopSmooth()
	return w.setScroll(y)
}

// ScrollIntoView smoothly scrolls the section with the given id to the top
// of the viewport. A missing section is a no-op.
func (w *Window) ScrollIntoView(id string) bool {
	off, ok := w.doc.Offset(id)
	if !ok {
		return false
	}
	w.target = math.Min(float64(off), w.MaxScroll())
	if !w.smooth {
		w.smooth = true
		w.velocity = 0
		w.handle = w.sched.RequestFrame(w.stepSmooth)
	}
	return true
}

// Smoothing reports whether a smooth scroll is in flight.
func (w *Window) Smoothing() bool { return w.smooth }

// Close cancels pending smooth-scroll work.
func (w *Window) Close() {
	w.stopSmooth()
}

func (w *Window) stepSmooth(time.Duration) {
	pos, vel := w.spring.Update(w.scrollY, w.velocity, w.target)
	if math.Abs(pos-w.target) < settleRows && math.Abs(vel) < settleRows {
		pos, vel = w.target, 0
	}
	w.velocity = vel
	w.setScroll(pos)
	if pos == w.target {
		w.smooth = false
		return
	}
	w.handle = w.sched.RequestFrame(w.stepSmooth)
}

func (w *Window) stopSmooth() {
	if !w.smooth {
		return
	}
	w.sched.CancelFrame(w.handle)
	w.smooth = false
	w.velocity = 0
}

func (w *Window) clampScroll() {
	w.setScroll(w.scrollY)
	if w.smooth {
		w.target = math.Min(w.target, w.MaxScroll())
	}
}

func (w *Window) setScroll(y float64) bool {
	y = math.Max(0, math.Min(y, w.MaxScroll()))
	if y == w.scrollY {
		return false
	}
	w.scrollY = y
	w.dispatch(Scroll)
	return true
}
