// Package assets turns image references into terminal thumbnails. Every
// failure is returned to the caller, which shows a placeholder instead.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

var (
	ErrUnsupportedAsset = errors.New("unsupported image format")
	ErrEmptyBox         = errors.New("thumbnail box is empty")
)

// Thumbnail is a rendered image, one string per terminal row.
type Thumbnail struct {
	Lines       []string
	Cols        int
	Rows        int
	Placeholder bool
}

func (t Thumbnail) String() string {
	return strings.Join(t.Lines, "\n")
}

// Load decodes the image at path and fits it into cols x rows cells.
func Load(path string, cols, rows int) (Thumbnail, error) {
	if cols <= 0 || rows <= 0 {
		return Thumbnail{}, ErrEmptyBox
	}
	if !isImagePath(path) {
		return Thumbnail{}, fmt.Errorf("%s: %w (supported: %s)", path, ErrUnsupportedAsset, SupportedExtsList())
	}
	f, err := os.Open(path)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("open asset: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Thumbnail{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Render(img, cols, rows), nil
}

// Render fits img into cols x rows cells, two pixel rows per cell using
// the upper half block with fg = top pixel and bg = bottom pixel.
func Render(img image.Image, cols, rows int) Thumbnail {
	fitted := resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear)
	b := fitted.Bounds()
	outRows := (b.Dy() + 1) / 2

	lines := make([]string, 0, outRows)
	for row := range outRows {
		var sb strings.Builder
		top := b.Min.Y + row*2
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexAt(fitted, x, top)))
			if top+1 < b.Max.Y {
				style = style.Background(lipgloss.Color(hexAt(fitted, x, top+1)))
			}
			sb.WriteString(style.Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return Thumbnail{Lines: lines, Cols: b.Dx(), Rows: outRows}
}

func hexAt(img image.Image, x, y int) string {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// fully transparent
		return "#000000"
	}
	return c.Hex()
}

var placeholderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#333333"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"}).
	Align(lipgloss.Center, lipgloss.Center)

// Placeholder is the framed stand-in shown when an image is missing.
func Placeholder(cols, rows int) Thumbnail {
	cols = max(cols, 12)
	rows = max(rows, 3)
	box := placeholderStyle.
		Width(cols - 2).
		Height(rows - 2).
		Render("▣\nUPLOAD SCREENSHOT HERE")
	lines := strings.Split(box, "\n")
	return Thumbnail{Lines: lines, Cols: cols, Rows: len(lines), Placeholder: true}
}

// LoadOrPlaceholder loads path and falls back to the placeholder on any error.
// The error is returned for logging only.
func LoadOrPlaceholder(path string, cols, rows int) (Thumbnail, error) {
	t, err := Load(path, cols, rows)
	if err != nil {
		return Placeholder(cols, rows), err
	}
	return t, nil
}
