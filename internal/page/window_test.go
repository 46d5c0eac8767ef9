package page

import (
	"testing"
	"time"

	"github.com/olivier-w/folio/internal/frame"
)

func newTestWindow(t *testing.T) (*Window, *frame.Loop) {
	t.Helper()
	loop := frame.NewLoop()
	w := NewWindow(loop, 80, 20)
	w.SetLayout(NewDocument(
		Section{ID: "home", Height: 20},
		Section{ID: "About", Height: 30},
		Section{ID: "projects", Height: 40},
		Section{ID: "contact", Height: 10},
	))
	return w, loop
}

func drain(loop *frame.Loop, limit int) int {
	frames := 0
	for loop.Pending() > 0 && frames < limit {
		frames++
		loop.Fire(time.Duration(frames) * 16 * time.Millisecond)
	}
	return frames
}

func TestDocumentOffsetIsCaseInsensitive(t *testing.T) {
	w, _ := newTestWindow(t)
	off, ok := w.Document().Offset("ABOUT")
	if !ok || off != 20 {
		t.Fatalf("expected about at 20, got %d (ok=%v)", off, ok)
	}
	if _, ok := w.Document().Offset("blog"); ok {
		t.Fatal("expected missing section")
	}
	if got := w.ScrollHeight(); got != 100 {
		t.Fatalf("expected height 100, got %d", got)
	}
}

func TestScrollByClampsAndDispatches(t *testing.T) {
	w, _ := newTestWindow(t)
	events := 0
	w.AddEventListener(Scroll, func() { events++ })

	w.ScrollBy(-5)
	if events != 0 {
		t.Fatalf("expected no event at top, got %d", events)
	}
	w.ScrollBy(1000)
	if got := w.ScrollY(); got != 80 {
		t.Fatalf("expected clamp to 80, got %v", got)
	}
	if events != 1 {
		t.Fatalf("expected 1 scroll event, got %d", events)
	}
}

func TestScrollLockBlocksUserScroll(t *testing.T) {
	w, _ := newTestWindow(t)
	release := w.ScrollLock().Acquire()
	if w.ScrollBy(10) {
		t.Fatal("expected locked scroll to be ignored")
	}
	release()
	release()
	if w.ScrollLock().Locked() {
		t.Fatal("expected lock released")
	}
	if !w.ScrollBy(10) {
		t.Fatal("expected scroll after release")
	}
}

func TestScrollLockCountsHolders(t *testing.T) {
	var l ScrollLock
	a := l.Acquire()
	b := l.Acquire()
	a()
	if !l.Locked() {
		t.Fatal("expected lock held by second holder")
	}
	b()
	if l.Locked() || l.Holders() != 0 {
		t.Fatalf("expected unlocked, holders=%d", l.Holders())
	}
}

func TestScrollIntoViewSettlesOnSection(t *testing.T) {
	w, loop := newTestWindow(t)
	if !w.ScrollIntoView("projects") {
		t.Fatal("expected known section")
	}
	if !w.Smoothing() {
		t.Fatal("expected smooth scroll in flight")
	}
	if frames := drain(loop, 600); frames >= 600 {
		t.Fatal("smooth scroll never settled")
	}
	if got := w.ScrollY(); got != 50 {
		t.Fatalf("expected offset 50, got %v", got)
	}
	if w.Smoothing() {
		t.Fatal("expected smooth scroll finished")
	}
}

func TestScrollIntoViewMissingSectionIsNoop(t *testing.T) {
	w, loop := newTestWindow(t)
	if w.ScrollIntoView("nowhere") {
		t.Fatal("expected missing section to report false")
	}
	if loop.Pending() != 0 {
		t.Fatal("expected no frame requested")
	}
}

func TestScrollIntoViewTargetClampsToMaxScroll(t *testing.T) {
	w, loop := newTestWindow(t)
	w.ScrollIntoView("contact")
	drain(loop, 600)
	if got := w.ScrollY(); got != w.MaxScroll() {
		t.Fatalf("expected max scroll %v, got %v", w.MaxScroll(), got)
	}
}

func TestUserScrollInterruptsSmoothScroll(t *testing.T) {
	w, loop := newTestWindow(t)
	w.ScrollIntoView("contact")
	loop.Fire(0)
	w.ScrollTo(3)
	if w.Smoothing() {
		t.Fatal("expected smooth scroll cancelled")
	}
	if loop.Pending() != 0 {
		t.Fatalf("expected pending frame cancelled, got %d", loop.Pending())
	}
}

func TestSetLayoutShrinkClampsScroll(t *testing.T) {
	w, _ := newTestWindow(t)
	w.ScrollTo(80)
	resizes := 0
	w.AddEventListener(Resize, func() { resizes++ })
	w.SetLayout(NewDocument(Section{ID: "home", Height: 30}))
	if resizes != 1 {
		t.Fatalf("expected 1 resize event, got %d", resizes)
	}
	if got := w.ScrollY(); got != 10 {
		t.Fatalf("expected clamp to 10, got %v", got)
	}
}

func TestRemoveEventListener(t *testing.T) {
	w, _ := newTestWindow(t)
	id := w.AddEventListener(Resize, func() {})
	w.AddEventListener(Resize, func() {})
	w.RemoveEventListener(id)
	w.RemoveEventListener(id)
	if got := w.ListenerCount(Resize); got != 1 {
		t.Fatalf("expected 1 listener, got %d", got)
	}
}
