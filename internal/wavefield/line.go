package wavefield

import (
	"math"
	"math/rand/v2"
)

const (
	// LineCount is the number of strands in every surface generation.
	LineCount = 45
	// SegmentCount is the number of segments per strand; each strand has SegmentCount+1 points.
	SegmentCount = 100
	// Amplitude is the vertical swing of a strand in surface pixels.
	Amplitude = 35.0
	// SpatialFrequency is the phase advance per sample index, in radians.
	SpatialFrequency = 0.05

	maxPhase   = 1000.0
	minSpeed   = 0.0005
	speedRange = 0.001
)

// WaveLine is one animated horizontal strand. Its fields never change for
// the lifetime of a surface generation.
type WaveLine struct {
	Baseline float64 // resting row in surface pixels
	Phase    float64 // in [0, 1000)
	Speed    float64 // radians per millisecond, in [0.0005, 0.0015)
}

// Point is a vertex of a strand polyline in surface pixels.
type Point struct {
	X float64
	Y float64
}

// NewLines spreads count strands evenly over height with random phase and speed.
func NewLines(count int, height float64, rng *rand.Rand) []WaveLine {
	lines := make([]WaveLine, 0, count)
	for i := range count {
		lines = append(lines, WaveLine{
			Baseline: height / float64(count) * float64(i),
			Phase:    rng.Float64() * maxPhase,
			Speed:    minSpeed + rng.Float64()*speedRange,
		})
	}
	return lines
}

// Points samples the strand across width at time t (milliseconds).
// dst is reused when it has enough capacity.
func Points(l WaveLine, width, t float64, dst []Point) []Point {
	dst = dst[:0]
	for j := 0; j <= SegmentCount; j++ {
		x := width / SegmentCount * float64(j)
		y := l.Baseline + math.Sin(float64(j)*SpatialFrequency+l.Phase+t*l.Speed)*Amplitude
		dst = append(dst, Point{X: x, Y: y})
	}
	return dst
}
