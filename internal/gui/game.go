// Package gui renders the wave field in a native window with real alpha
// blending, driven by the same frame loop and window model as the terminal.
package gui

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/page"
	"github.com/olivier-w/folio/internal/wavefield"
)

const (
	// StrokeOpacity is the alpha of each strand in the window backend.
	StrokeOpacity = 0.05

	defaultWidth  = 1024
	defaultHeight = 640
)

// Options configures the window backend.
type Options struct {
	Site               *content.Site
	Rand               *rand.Rand
	Stroke             string
	Background         string
	RegenerateOnResize bool
}

// imageSurface draws strands onto an offscreen image.
type imageSurface struct {
	img    *ebiten.Image
	width  int
	height int
	stroke color.Color
	bg     color.Color
}

func (s *imageSurface) SetSize(width, height int) {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.img = ebiten.NewImage(width, height)
	}
	s.Clear()
}

func (s *imageSurface) Size() (int, int) { return s.width, s.height }

func (s *imageSurface) Clear() {
	if s.img != nil {
		s.img.Fill(s.bg)
	}
}

func (s *imageSurface) StrokePolyline(pts []wavefield.Point) {
	if s.img == nil {
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, s.stroke, true)
	}
}

// Game is the ebiten game hosting the wave field.
type Game struct {
	site    *content.Site
	loop    *frame.Loop
	window  *page.Window
	field   *wavefield.Field
	surface *imageSurface
	start   time.Time
	mounted bool
}

// NewGame builds a game. The field mounts on the first layout.
func NewGame(opts Options) *Game {
	site := opts.Site
	if site == nil {
		site = content.Default()
	}
	loop := frame.NewLoop()
	fieldOpts := []wavefield.Option{wavefield.WithRegenerateOnResize(opts.RegenerateOnResize)}
	if opts.Rand != nil {
		fieldOpts = append(fieldOpts, wavefield.WithRand(opts.Rand))
	}
	return &Game{
		site:   site,
		loop:   loop,
		window: page.NewWindow(loop, 0, 0),
		field:  wavefield.New(loop, fieldOpts...),
		surface: &imageSurface{
			stroke: rgba(opts.Stroke, wavefield.DefaultStroke, StrokeOpacity),
			bg:     rgba(opts.Background, wavefield.DefaultBackground, 1),
		},
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if g.mounted {
		g.loop.Fire(time.Since(g.start))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.surface.bg)
	if g.surface.img != nil {
		screen.DrawImage(g.surface.img, nil)
	}
	w, h := g.window.InnerSize()
	ebitenutil.DebugPrintAt(screen, g.site.Hero.Lead, w/2-len(g.site.Hero.Lead)*3, h/2-24)
	ebitenutil.DebugPrintAt(screen, g.site.Hero.Headline, w/2-len(g.site.Hero.Headline)*3, h/2)
}

// Layout tracks the outside size, which doubles as the viewport resize event.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.window.InnerSize(); w != outsideWidth || h != outsideHeight {
		g.window.Resize(outsideWidth, outsideHeight)
	}
	if !g.mounted {
		g.start = time.Now()
		g.mounted = g.field.Mount(g.surface, g.window)
	}
	return outsideWidth, outsideHeight
}

// Close stops the field and releases the offscreen image.
func (g *Game) Close() {
	g.field.Unmount()
	g.window.Close()
	g.mounted = false
	if g.surface.img != nil {
		g.surface.img.Deallocate()
		g.surface.img = nil
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle(g.site.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Printf("gui: %v", err)
	}
	return err
}

// rgba parses hex with the given alpha, using fallback when hex is invalid.
func rgba(hex, fallback string, opacity float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}
	r, g, b := c.RGB255()
	a := math.Round(min(max(opacity, 0), 1) * 255)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}
}
