package metrics

import "github.com/jsolberg/pointmass/internal/sim"

// Apex tracks the highest y position reached by any particle.
type Apex struct {
	max float64
	set bool
}

func NewApex() *Apex { return &Apex{} }

func (a *Apex) Name() string { return "apex" }

func (a *Apex) Observe(w *sim.World, t float64) {
	for _, p := range w.Particles() {
		if !a.set || p.Position.Y > a.max {
			a.max = p.Position.Y
			a.set = true
		}
	}
}

func (a *Apex) Value() float64 { return a.max }

func (a *Apex) Reset() {
	a.max = 0
	a.set = false
}

// MaxSpeed tracks the highest speed reached by any particle. A value
// that keeps climbing across a run is the usual first sign of an
// unstable configuration.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(w *sim.World, t float64) {
	for _, p := range w.Particles() {
		if s := p.Velocity.Magnitude(); s > m.max {
			m.max = s
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }

func (m *MaxSpeed) Reset() { m.max = 0 }
