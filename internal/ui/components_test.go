package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/olivier-w/folio/internal/assets"
	"github.com/olivier-w/folio/internal/content"
)

func TestFitLinePadsAndTruncates(t *testing.T) {
	tests := []struct {
		in    string
		width int
	}{
		{"abc", 10},
		{"a much longer line than fits", 8},
		{"", 4},
	}
	for _, tt := range tests {
		if got := ansi.StringWidth(fitLine(tt.in, tt.width)); got != tt.width {
			t.Fatalf("fitLine(%q, %d) width = %d", tt.in, tt.width, got)
		}
	}
	if fitLine("x", 0) != "" {
		t.Fatal("zero width should yield empty line")
	}
}

func TestFlowTagsWrapsAtWidth(t *testing.T) {
	rows := flowTags([]string{"go", "terminal", "springs", "yaml"}, 20)
	if len(rows) < 2 {
		t.Fatalf("expected wrapping, got %d rows", len(rows))
	}
	for _, r := range rows {
		if w := ansi.StringWidth(r); w > 20 {
			t.Fatalf("row %q is %d cells wide", r, w)
		}
	}
	if !strings.Contains(rows[0], "· GO") {
		t.Fatalf("first row %q missing upper-cased chip", rows[0])
	}
}

func TestRenderProgressLineWidth(t *testing.T) {
	p := newProgressBar()
	for _, v := range []float64{-1, 0, 0.5, 1, 2} {
		if w := ansi.StringWidth(renderProgressLine(p, v, 40)); w != 40 {
			t.Fatalf("progress(%v) width = %d, want 40", v, w)
		}
	}
}

func placeholderThumb(_ string, cols, rows int) assets.Thumbnail {
	return assets.Placeholder(cols, rows)
}

func TestSectionsFillViewportAndWidth(t *testing.T) {
	site := content.Default()
	for _, desktop := range []bool{false, true} {
		l := sectionLayout{width: 100, height: 30, desktop: desktop}
		sections := map[string][]string{
			"about":    renderAbout(site, l, placeholderThumb),
			"projects": renderProjects(site, l, placeholderThumb),
			"contact":  renderContact(site, l),
		}
		for id, lines := range sections {
			if len(lines) < l.height {
				t.Fatalf("%s (desktop=%v) has %d lines, want >= %d", id, desktop, len(lines), l.height)
			}
			for i, line := range lines {
				if w := ansi.StringWidth(line); w > l.width {
					t.Fatalf("%s line %d is %d cells wide", id, i, w)
				}
			}
		}
	}
}

func TestProjectWithoutLinkOmitsLinkRow(t *testing.T) {
	p := content.Project{Title: "Quiet", Challenge: "c", Solution: "s"}
	out := renderProject(p, 80, true, placeholderThumb)
	if strings.Contains(out, "→") {
		t.Fatalf("unexpected link marker in %q", out)
	}
	p.Link = &content.Link{Label: "Read more", URL: "https://example.com"}
	out = renderProject(p, 80, true, placeholderThumb)
	if !strings.Contains(out, "Read more") {
		t.Fatalf("missing link label in %q", out)
	}
}
