// Package generator draws random hit-zone placements.
package generator

import (
	"math/rand"
	"time"
)

// Bounds of the region the hit-zone centre is drawn from, in degrees.
const (
	OrbitMin = 150.0
	OrbitMax = 210.0
)

// Generator produces randomized hit-zone centres.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Center draws a hit-zone centre uniformly from [OrbitMin, OrbitMax).
func (g *Generator) Center() float64 {
	return g.rnd.Float64()*(OrbitMax-OrbitMin) + OrbitMin
}
