package nav

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/page"
)

func newMounted(t *testing.T) (*Controller, *page.Window, *frame.Loop) {
	t.Helper()
	loop := frame.NewLoop()
	w := page.NewWindow(loop, 60, 20)
	w.SetLayout(page.NewDocument(
		page.Section{ID: "home", Height: 20},
		page.Section{ID: "about", Height: 40},
		page.Section{ID: "projects", Height: 60},
		page.Section{ID: "contact", Height: 20},
	))
	c := NewController(0)
	c.Mount(w)
	return c, w, loop
}

func settle(loop *frame.Loop) {
	for i := 0; loop.Pending() > 0 && i < 1000; i++ {
		loop.Fire(time.Duration(i) * 16 * time.Millisecond)
	}
}

func TestIsCompactThreshold(t *testing.T) {
	tests := []struct {
		offset float64
		want   bool
	}{
		{0, false},
		{50, false},
		{50.0001, true},
		{1000, true},
	}
	for _, tt := range tests {
		if got := IsCompact(tt.offset, DefaultCompactThreshold); got != tt.want {
			t.Errorf("IsCompact(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestScrollDrivesCompact(t *testing.T) {
	c, w, _ := newMounted(t)
	if c.State() != (State{}) {
		t.Fatalf("expected initial zero state, got %+v", c.State())
	}
	w.ScrollTo(50)
	if c.State().Compact {
		t.Fatal("expected expanded at exactly 50")
	}
	w.ScrollTo(51)
	if !c.State().Compact {
		t.Fatal("expected compact past 50")
	}
	w.ScrollTo(10)
	if c.State().Compact {
		t.Fatal("expected expanded after scrolling back")
	}
}

func TestToggleLocksScroll(t *testing.T) {
	c, w, _ := newMounted(t)
	c.Toggle()
	if !c.State().OverlayOpen || !w.ScrollLock().Locked() {
		t.Fatal("expected overlay open and scroll locked")
	}
	if w.ScrollBy(5) {
		t.Fatal("expected user scroll suppressed")
	}
	c.Toggle()
	if c.State().OverlayOpen || w.ScrollLock().Locked() {
		t.Fatal("expected overlay closed and scroll unlocked")
	}
}

func TestSelectClosesOverlayAndScrolls(t *testing.T) {
	c, w, loop := newMounted(t)
	c.Toggle()
	if !c.Select("Projects") {
		t.Fatal("expected projects to exist")
	}
	if c.State().OverlayOpen || w.ScrollLock().Locked() {
		t.Fatal("expected overlay closed and unlocked before scrolling")
	}
	settle(loop)
	if got := w.ScrollY(); got != 60 {
		t.Fatalf("expected offset 60, got %v", got)
	}
	if !c.State().Compact {
		t.Fatal("expected compact after smooth scroll")
	}
}

func TestSelectUnknownSectionIsNoop(t *testing.T) {
	c, w, loop := newMounted(t)
	c.Toggle()
	if c.Select("Blog") {
		t.Fatal("expected missing section")
	}
	if c.State().OverlayOpen {
		t.Fatal("expected overlay closed anyway")
	}
	if loop.Pending() != 0 || w.ScrollY() != 0 {
		t.Fatal("expected no scroll")
	}
}

func TestSelectHomeReturnsToTop(t *testing.T) {
	c, w, loop := newMounted(t)
	w.ScrollTo(100)
	if !c.SelectHome() {
		t.Fatal("expected home section")
	}
	settle(loop)
	if w.ScrollY() != 0 {
		t.Fatalf("expected top, got %v", w.ScrollY())
	}
}

func TestScrollLockFollowsOverlayUnderRandomActions(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for run := range 50 {
		c, w, loop := newMounted(t)
		for step := range 200 {
			switch rng.IntN(5) {
			case 0, 1:
				c.Toggle()
			case 2:
				c.Select(Links()[rng.IntN(len(links))])
			case 3:
				c.SelectHome()
			case 4:
				c.Close()
			}
			loop.Fire(time.Duration(step) * time.Millisecond)
			if c.State().OverlayOpen != w.ScrollLock().Locked() {
				t.Fatalf("run %d step %d: overlay=%v locked=%v", run, step, c.State().OverlayOpen, w.ScrollLock().Locked())
			}
			if h := w.ScrollLock().Holders(); h > 1 {
				t.Fatalf("run %d step %d: lock over-acquired (%d holders)", run, step, h)
			}
		}
		c.Close()
		if w.ScrollLock().Locked() {
			t.Fatalf("run %d: expected unlocked after closing", run)
		}
	}
}

func TestUnmountReleasesLockWhileOpen(t *testing.T) {
	c, w, _ := newMounted(t)
	c.Toggle()
	c.Unmount()
	if w.ScrollLock().Locked() {
		t.Fatal("expected lock released on unmount")
	}
	if w.ListenerCount(page.Scroll) != 0 {
		t.Fatal("expected scroll listener removed")
	}
	c.Unmount()
}

func TestLayoutFor(t *testing.T) {
	if LayoutFor(79, 80) != Mobile {
		t.Fatal("expected mobile below breakpoint")
	}
	if LayoutFor(80, 0) != Desktop {
		t.Fatal("expected desktop at default breakpoint")
	}
}

func TestCrossingBreakpointKeepsOverlayOpen(t *testing.T) {
	c, w, _ := newMounted(t)
	c.Toggle()
	w.Resize(120, 20)
	if !c.State().OverlayOpen || !w.ScrollLock().Locked() {
		t.Fatal("expected overlay to stay open across breakpoint")
	}
}
