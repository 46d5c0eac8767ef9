// Package wavefield animates a field of horizontal wave strands onto a
// drawing surface sized to the viewport.
package wavefield

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/page"
)

// Surface is a 2D drawing target.
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	Clear()
	StrokePolyline(pts []Point)
}

// Viewport supplies the size the surface tracks and its resize events.
type Viewport interface {
	InnerSize() (width, height int)
	AddEventListener(kind page.Event, fn func()) page.ListenerID
	RemoveEventListener(id page.ListenerID)
}

// Field owns the strands of one surface generation and the redraw loop.
type Field struct {
	sched      frame.Scheduler
	rng        *rand.Rand
	scaleX     int
	scaleY     int
	regenerate bool

	surface  Surface
	viewport Viewport
	lines    []WaveLine
	buf      []Point

	mounted  bool
	resizeID page.ListenerID
	handle   frame.Handle
	pending  bool
	frames   int
	last     time.Duration
}

// Option configures a Field.
type Option func(*Field)

// WithRand injects the generator used for strand phase and speed.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) {
		if r != nil {
			f.rng = r
		}
	}
}

// WithScale sets how many surface pixels one viewport unit covers.
// A braille terminal canvas uses 2x4.
func WithScale(x, y int) Option {
	return func(f *Field) {
		f.scaleX = max(x, 1)
		f.scaleY = max(y, 1)
	}
}

// WithRegenerateOnResize respaces the strands against the new height on every
// resize. By default strands keep the baselines computed at mount.
func WithRegenerateOnResize(on bool) Option {
	return func(f *Field) { f.regenerate = on }
}

// New creates an unmounted field.
func New(sched frame.Scheduler, opts ...Option) *Field {
	f := &Field{
		sched:  sched,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		scaleX: 1,
		scaleY: 1,
		buf:    make([]Point, 0, SegmentCount+1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mount binds the field to surface and starts the redraw loop. A nil surface
// leaves the field inert and reports false.
func (f *Field) Mount(surface Surface, vp Viewport) bool {
	if f.mounted {
		return true
	}
	if surface == nil || vp == nil {
		log.Printf("wavefield: drawing surface unavailable, animation disabled")
		return false
	}
	f.surface = surface
	f.viewport = vp
	f.mounted = true
	f.resizeID = vp.AddEventListener(page.Resize, f.resize)
	f.bindSize()
	_, h := f.surface.Size()
	f.lines = NewLines(LineCount, float64(h), f.rng)
	f.draw(0)
	return true
}

// Unmount cancels the next frame and detaches the resize listener.
func (f *Field) Unmount() {
	if !f.mounted {
		return
	}
	if f.pending {
		f.sched.CancelFrame(f.handle)
		f.pending = false
	}
	f.viewport.RemoveEventListener(f.resizeID)
	f.mounted = false
	f.surface = nil
	f.viewport = nil
}

// Running reports whether a next frame is scheduled.
func (f *Field) Running() bool { return f.mounted && f.pending }

// Lines returns a copy of the current strands.
func (f *Field) Lines() []WaveLine {
	out := make([]WaveLine, len(f.lines))
	copy(out, f.lines)
	return out
}

// Size returns the bound surface size, or zero when unmounted.
func (f *Field) Size() (width, height int) {
	if f.surface == nil {
		return 0, 0
	}
	return f.surface.Size()
}

// Frames reports how many frames have been drawn.
func (f *Field) Frames() int { return f.frames }

// LastFrame is the timestamp of the most recent frame.
func (f *Field) LastFrame() time.Duration { return f.last }

func (f *Field) resize() {
	if !f.mounted {
		return
	}
	f.bindSize()
	if f.regenerate {
		_, h := f.surface.Size()
		f.lines = NewLines(LineCount, float64(h), f.rng)
	}
}

func (f *Field) bindSize() {
	w, h := f.viewport.InnerSize()
	f.surface.SetSize(w*f.scaleX, h*f.scaleY)
}

func (f *Field) draw(now time.Duration) {
	f.pending = false
	if !f.mounted {
		return
	}
	Render(f.surface, f.lines, now, f.buf)
	f.frames++
	f.last = now
	f.handle = f.sched.RequestFrame(f.draw)
	f.pending = true
}

// Render clears surface and strokes every strand at time now.
func Render(surface Surface, lines []WaveLine, now time.Duration, buf []Point) {
	surface.Clear()
	w, _ := surface.Size()
	t := float64(now) / float64(time.Millisecond)
	for _, l := range lines {
		buf = Points(l, float64(w), t, buf)
		surface.StrokePolyline(buf)
	}
}
