package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Default spring settings for the progress indicator.
const (
	DefaultStiffness = 100.0
	DefaultDamping   = 30.0
	DefaultRestDelta = 0.001
	defaultMass      = 1.0
)

// SpringParams converts physical spring settings into harmonica's angular
// frequency and damping ratio.
func SpringParams(stiffness, damping, mass float64) (frequency, ratio float64) {
	if mass <= 0 {
		mass = defaultMass
	}
	frequency = math.Sqrt(stiffness / mass)
	ratio = damping / (2 * math.Sqrt(stiffness*mass))
	return frequency, ratio
}

// springValue chases a target and snaps once within restDelta.
type springValue struct {
	spring    harmonica.Spring
	restDelta float64
	pos       float64
	vel       float64
	target    float64
}

func newSpringValue(fps int, stiffness, damping, restDelta float64) springValue {
	freq, ratio := SpringParams(stiffness, damping, defaultMass)
	return springValue{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), freq, ratio),
		restDelta: restDelta,
	}
}

func (s *springValue) settled() bool {
	return s.pos == s.target && s.vel == 0
}

func (s *springValue) step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.target-s.pos) < s.restDelta && math.Abs(s.vel) < s.restDelta {
		s.pos, s.vel = s.target, 0
	}
	return s.pos
}
