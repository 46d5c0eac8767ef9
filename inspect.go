package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/page"
	"github.com/olivier-w/folio/internal/scroll"
	"github.com/olivier-w/folio/internal/wavefield"
)

// renderFrame draws the field at time now into a width x height cell canvas.
func renderFrame(width, height int, now time.Duration, rng *rand.Rand) string {
	canvas := wavefield.NewBrailleCanvas(width*2, height*4)
	_, h := canvas.Size()
	lines := wavefield.NewLines(wavefield.LineCount, float64(h), rng)
	wavefield.Render(canvas, lines, now, nil)
	return canvas.String()
}

// springSamples records the smoothed progress frame by frame after a jump
// from the top of a page to its bottom.
func springSamples(p config.ProgressConfig, fps, maxFrames int) []float64 {
	loop := frame.NewLoop()
	win := page.NewWindow(loop, 80, 24)
	win.SetLayout(page.NewDocument(page.Section{ID: "body", Height: 240}))

	tr := scroll.NewTracker(loop,
		scroll.WithFPS(fps),
		scroll.WithSpring(p.Stiffness, p.Damping, p.RestDelta),
	)
	tr.Mount(win)
	defer tr.Unmount()

	win.ScrollTo(win.MaxScroll())
	samples := []float64{tr.Value()}
	step := time.Second / time.Duration(fps)
	for i := 1; i <= maxFrames && loop.Pending() > 0; i++ {
		loop.Fire(time.Duration(i) * step)
		samples = append(samples, tr.Value())
	}
	return samples
}

func plotSpring(p config.ProgressConfig, fps int) string {
	samples := springSamples(p, fps, 4*fps)
	caption := fmt.Sprintf("progress spring k=%g c=%g (%d frames to rest)", p.Stiffness, p.Damping, len(samples)-1)
	return asciigraph.Plot(samples,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// lineSamples returns the vertical offset of one strand from its baseline.
func lineSamples(index int, now time.Duration, rng *rand.Rand) ([]float64, error) {
	lines := wavefield.NewLines(wavefield.LineCount, 640, rng)
	if index < 0 || index >= len(lines) {
		return nil, fmt.Errorf("line %d out of range [0, %d)", index, len(lines))
	}
	ms := float64(now) / float64(time.Millisecond)
	pts := wavefield.Points(lines[index], 1024, ms, nil)
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = lines[index].Baseline - pt.Y
	}
	return out, nil
}

func plotLine(index int, now time.Duration, rng *rand.Rand) (string, error) {
	samples, err := lineSamples(index, now, rng)
	if err != nil {
		return "", err
	}
	return asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(len(samples)),
		asciigraph.Caption(fmt.Sprintf("strand %d at t=%v", index, now)),
	), nil
}
