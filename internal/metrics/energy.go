// Package metrics provides run metrics sampled once per simulation
// step.
package metrics

import "github.com/jsolberg/pointmass/internal/sim"

// Energy averages the total mechanical energy of the world over a run:
// kinetic ½mv² plus gravitational potential mgh measured along +y.
// Immovable particles carry no meaningful energy and are skipped.
type Energy struct {
	gravity float64
	samples int
	total   float64
}

// NewEnergy returns an energy metric for a gravity magnitude, e.g.
// 9.81.
func NewEnergy(gravity float64) *Energy {
	return &Energy{gravity: gravity}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(w *sim.World, t float64) {
	sum := 0.0
	for _, p := range w.Particles() {
		if !p.HasFiniteMass() {
			continue
		}
		m := p.Mass()
		ke := 0.5 * m * p.Velocity.MagnitudeSquared()
		pe := m * e.gravity * p.Position.Y
		sum += ke + pe
	}
	e.total += sum
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}
