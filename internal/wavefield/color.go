package wavefield

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Default stroke and background of the field.
const (
	DefaultStroke     = "#FFFFFF"
	DefaultBackground = "#050505"
)

// StrokeColor flattens a translucent stroke over the background into one
// opaque hex color, since terminals have no alpha. Invalid hex values fall
// back to the defaults.
func StrokeColor(stroke, background string, opacity float64) string {
	fg, err := colorful.Hex(stroke)
	if err != nil {
		fg, _ = colorful.Hex(DefaultStroke)
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		bg, _ = colorful.Hex(DefaultBackground)
	}
	opacity = min(max(opacity, 0), 1)
	return bg.BlendRgb(fg, opacity).Clamped().Hex()
}
