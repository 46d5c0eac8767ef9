package wavefield

import (
	"strings"
	"testing"
)

func TestBrailleCanvasCellGeometry(t *testing.T) {
	c := NewBrailleCanvas(5, 9)
	cols, rows := c.Cells()
	if cols != 3 || rows != 3 {
		t.Fatalf("expected 3x3 cells, got %dx%d", cols, rows)
	}
}

func TestStrokePolylineSetsEndpointsAndClips(t *testing.T) {
	c := NewBrailleCanvas(10, 8)
	c.StrokePolyline([]Point{{X: 0, Y: 0}, {X: 9, Y: 7}, {X: 20, Y: -5}})

	if !c.Dot(0, 0) || !c.Dot(9, 7) {
		t.Fatal("expected endpoints set")
	}
	if c.Dot(5, 0) {
		t.Fatal("unexpected dot off the line")
	}
}

func TestHorizontalStrokeFillsTopDots(t *testing.T) {
	c := NewBrailleCanvas(4, 4)
	c.StrokePolyline([]Point{{X: 0, Y: 0}, {X: 3, Y: 0}})
	// top-left and top-right dots of each cell: bits 0 and 3
	if got := string(c.Row(0)); got != "⠉⠉" {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestClearLeavesSpaces(t *testing.T) {
	c := NewBrailleCanvas(4, 8)
	c.StrokePolyline([]Point{{X: 0, Y: 0}, {X: 3, Y: 7}})
	c.Clear()
	if got := c.String(); strings.TrimSpace(strings.ReplaceAll(got, "\n", "")) != "" {
		t.Fatalf("expected blank canvas, got %q", got)
	}
}

func TestRenderStrokesEveryLine(t *testing.T) {
	c := NewBrailleCanvas(200, 180)
	lines := []WaveLine{{Baseline: 40}, {Baseline: 120}}
	Render(c, lines, 0, nil)

	// at t=0 with zero phase, x=0 sits on the baseline
	if !c.Dot(0, 40) || !c.Dot(0, 120) {
		t.Fatal("expected both strands drawn at their baselines")
	}
}

func TestStrokeColorBlendsOverBackground(t *testing.T) {
	if got := StrokeColor("#ffffff", "#000000", 0); got != "#000000" {
		t.Fatalf("expected background at zero opacity, got %s", got)
	}
	if got := StrokeColor("#ffffff", "#000000", 1); got != "#ffffff" {
		t.Fatalf("expected stroke at full opacity, got %s", got)
	}
	if got := StrokeColor("nope", "#050505", 2); got != "#ffffff" {
		t.Fatalf("expected fallback stroke clamped to full opacity, got %s", got)
	}
}
