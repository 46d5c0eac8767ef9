package nav

// Layout selects which navigation chrome is shown.
type Layout uint8

const (
	Mobile Layout = iota
	Desktop
)

// DefaultBreakpoint is the terminal width at which inline links replace the menu button.
const DefaultBreakpoint = 80

func (l Layout) String() string {
	if l == Desktop {
		return "desktop"
	}
	return "mobile"
}

// LayoutFor picks the layout for a viewport width. Crossing the breakpoint
// does not close an open overlay; on desktop the overlay is just not drawn.
func LayoutFor(width, breakpoint int) Layout {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width >= breakpoint {
		return Desktop
	}
	return Mobile
}
