// Package frame schedules per-frame callbacks the way a display refresh loop does.
package frame

import "time"

// Func runs once for a scheduled frame. now is the time since the loop started.
type Func func(now time.Duration)

// Handle identifies a requested frame so it can be cancelled.
type Handle uint64

// Scheduler requests and cancels one-shot frame callbacks.
type Scheduler interface {
	RequestFrame(fn Func) Handle
	CancelFrame(h Handle)
}

// Loop is a deterministic Scheduler. It is only touched from a single
// goroutine (the bubbletea Update loop or the ebiten Draw loop).
type Loop struct {
	next     Handle
	pending  map[Handle]Func
	order    []Handle
	requests int
	cancels  int
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]Func)}
}

// RequestFrame queues fn for the next Fire.
func (l *Loop) RequestFrame(fn Func) Handle {
	l.next++
	h := l.next
	l.pending[h] = fn
	l.order = append(l.order, h)
	l.requests++
	return h
}

// CancelFrame drops a pending callback. Unknown or already fired handles are ignored.
func (l *Loop) CancelFrame(h Handle) {
	if _, ok := l.pending[h]; !ok {
		return
	}
	delete(l.pending, h)
	l.cancels++
}

// Fire runs every callback pending at call time, in request order.
// Callbacks requested while firing wait for the next call.
func (l *Loop) Fire(now time.Duration) int {
	order := l.order
	l.order = nil
	ran := 0
	for _, h := range order {
		fn, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		fn(now)
		ran++
	}
	return ran
}

// Pending reports how many callbacks wait for the next Fire.
func (l *Loop) Pending() int { return len(l.pending) }

// Requests reports the total number of RequestFrame calls.
func (l *Loop) Requests() int { return l.requests }

// Cancels reports how many pending callbacks were cancelled.
func (l *Loop) Cancels() int { return l.cancels }
