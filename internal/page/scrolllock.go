package page

// ScrollLock suspends user scrolling while at least one holder keeps it.
type ScrollLock struct {
	holders int
}

// Acquire takes the lock. The returned release func is safe to call more than once.
func (l *ScrollLock) Acquire() (release func()) {
	l.holders++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
	}
}

// Locked reports whether any holder keeps the lock.
func (l *ScrollLock) Locked() bool { return l.holders > 0 }

// Holders reports the current reference count.
func (l *ScrollLock) Holders() int { return l.holders }
