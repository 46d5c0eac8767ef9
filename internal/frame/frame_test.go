package frame

import (
	"testing"
	"time"
)

func TestFireRunsPendingInRequestOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	l.RequestFrame(func(time.Duration) { got = append(got, 1) })
	l.RequestFrame(func(time.Duration) { got = append(got, 2) })

	if ran := l.Fire(16 * time.Millisecond); ran != 2 {
		t.Fatalf("expected 2 callbacks, got %d", ran)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected order %v", got)
	}
	if l.Pending() != 0 {
		t.Fatalf("expected nothing pending, got %d", l.Pending())
	}
}

func TestRequestDuringFireWaitsForNextFrame(t *testing.T) {
	l := NewLoop()
	frames := 0
	var tick Func
	tick = func(time.Duration) {
		frames++
		l.RequestFrame(tick)
	}
	l.RequestFrame(tick)

	l.Fire(0)
	if frames != 1 {
		t.Fatalf("expected 1 frame, got %d", frames)
	}
	if l.Pending() != 1 {
		t.Fatalf("expected re-requested frame pending, got %d", l.Pending())
	}
	l.Fire(time.Millisecond)
	if frames != 2 {
		t.Fatalf("expected 2 frames, got %d", frames)
	}
}

func TestCancelFrameSkipsCallback(t *testing.T) {
	l := NewLoop()
	called := false
	h := l.RequestFrame(func(time.Duration) { called = true })
	l.CancelFrame(h)
	l.CancelFrame(h)

	l.Fire(0)
	if called {
		t.Fatal("cancelled callback ran")
	}
	if l.Cancels() != 1 {
		t.Fatalf("expected 1 cancel, got %d", l.Cancels())
	}
	if l.Requests() != 1 {
		t.Fatalf("expected 1 request, got %d", l.Requests())
	}
}
