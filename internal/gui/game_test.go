package gui

import (
	"image/color"
	"testing"
)

func TestRGBA(t *testing.T) {
	tests := []struct {
		hex     string
		opacity float64
		want    color.NRGBA
	}{
		{"#FFFFFF", 0.05, color.NRGBA{R: 255, G: 255, B: 255, A: 13}},
		{"#050505", 1, color.NRGBA{R: 5, G: 5, B: 5, A: 255}},
		{"not-a-color", 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"", 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#102030", -1, color.NRGBA{R: 16, G: 32, B: 48, A: 0}},
	}
	for _, tt := range tests {
		if got := rgba(tt.hex, "#FFFFFF", tt.opacity); got != tt.want {
			t.Fatalf("rgba(%q, %v) = %+v, want %+v", tt.hex, tt.opacity, got, tt.want)
		}
	}
}
