package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/olivier-w/folio/internal/nav"
)

// heroLine composes one row of the wave canvas with the hero text laid
// over its centre.
func (m Model) heroLine(row int) string {
	cells := m.canvas.Row(row)
	if len(cells) < m.width {
		cells = append(cells, []rune(strings.Repeat(" ", m.width-len(cells)))...)
	}
	cells = cells[:m.width]

	text, style := m.heroText(row)
	if text == "" {
		return m.strokeStyle.Render(string(cells))
	}
	if ansi.StringWidth(text) > m.width-2 {
		text = ansi.Truncate(text, max(m.width-2, 0), "…")
	}
	tw := ansi.StringWidth(text)
	start := (m.width - tw) / 2

	var b strings.Builder
	b.WriteString(m.strokeStyle.Render(string(cells[:start])))
	b.WriteString(style.Render(text))
	b.WriteString(m.strokeStyle.Render(string(cells[start+tw:])))
	return b.String()
}

func (m Model) heroText(row int) (string, lipgloss.Style) {
	mid := m.height / 2
	switch row {
	case mid - 1:
		return m.site.Hero.Lead, leadStyle
	case mid + 1:
		return m.site.Hero.Headline, headlineStyle
	}
	return "", lipgloss.Style{}
}

// drawNavBar paints the identity and links. The compact bar gets a
// background and a rule beneath it.
func (m Model) drawNavBar(rows []string, state nav.State, layout nav.Layout) {
	if len(rows) < 3 {
		return
	}
	gap := lipgloss.NewStyle()
	id := identityStyle
	link := navLinkStyle
	if state.Compact {
		gap = compactBarStyle
		id = id.Inherit(compactBarStyle)
		link = link.Inherit(compactBarStyle)
	}

	left := gap.Render("  ") + id.Render(m.site.Name)
	var right string
	if layout == nav.Desktop {
		var parts []string
		for i, l := range nav.Links() {
			parts = append(parts, link.Render(string(rune('1'+i))+" "+l))
		}
		right = strings.Join(parts, gap.Render("   "))
	} else {
		label := "≡ menu"
		if state.OverlayOpen {
			label = "× close"
		}
		right = link.Render(label)
	}
	right += gap.Render("  ")

	fill := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	bar := fitLine(left+gap.Render(strings.Repeat(" ", max(fill, 1)))+right, m.width)

	if state.Compact {
		rows[1] = bar
		rows[2] = compactBorderStyle.Render(strings.Repeat("─", m.width))
		return
	}
	rows[2] = bar
}

// drawOverlay blanks the page under the mobile menu and lists the links
// centred on screen.
func (m Model) drawOverlay(rows []string) {
	blank := strings.Repeat(" ", m.width)
	for i := 1; i < len(rows)-1; i++ {
		rows[i] = blank
	}

	links := nav.Links()
	const spacing = 3
	top := (len(rows) - (len(links)-1)*spacing) / 2
	for i, l := range links {
		r := top + i*spacing
		if r <= 2 || r >= len(rows)-1 {
			continue
		}
		item := overlayItemStyle.Render(l)
		if i == m.cursor {
			item = overlayActiveStyle.Render("› " + l)
		}
		rows[r] = fitLine(centerLine(item, m.width), m.width)
	}
}
