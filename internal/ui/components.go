package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func newProgressBar() progress.Model {
	p := progress.New(
		progress.WithSolidFill("#52525B"),
		progress.WithoutPercentage(),
	)
	p.Full = '━'
	p.Empty = ' '
	return p
}

// renderProgressLine draws the smoothed scroll progress across width.
func renderProgressLine(p progress.Model, value float64, width int) string {
	p.Width = max(width, 1)
	return p.ViewAs(clamp01(value))
}

// flowTags packs tag chips into rows no wider than width.
func flowTags(tags []string, width int) []string {
	const gap = 2
	var rows []string
	var row []string
	used := 0
	for _, tag := range tags {
		label := "· " + strings.ToUpper(tag)
		w := runewidth.StringWidth(label)
		if len(row) > 0 && used+gap+w > width {
			rows = append(rows, strings.Join(row, strings.Repeat(" ", gap)))
			row, used = nil, 0
		}
		if len(row) > 0 {
			used += gap
		}
		row = append(row, tagStyle.Render(label))
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, strings.Repeat(" ", gap)))
	}
	return rows
}

// fitLine truncates or pads s to exactly width cells.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// centerLine places s in the middle of width cells.
func centerLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func splitLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
