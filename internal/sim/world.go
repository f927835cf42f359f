// Package sim orchestrates simulation steps over a set of particles
// and their force registrations, and records trajectories for the
// application shell.
package sim

import (
	"fmt"

	"github.com/jsolberg/pointmass/internal/force"
	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/vec"
)

// World owns a set of particles and the force registry acting on them.
// A step runs the fixed sequence: accumulate forces for every
// registration, then integrate every particle. Integration clears each
// accumulator, so the buffer is empty again before the next
// accumulation phase begins.
//
// World is not safe for concurrent use; steps are strictly sequential
// and caller-driven.
type World struct {
	particles []*particle.Particle
	registry  *force.Registry
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{registry: force.NewRegistry()}
}

// AddParticle adds p to the set advanced by Step. The world shares the
// pointer; it does not own particle lifetime.
func (w *World) AddParticle(p *particle.Particle) {
	w.particles = append(w.particles, p)
}

// Particles returns the particles in registration order.
func (w *World) Particles() []*particle.Particle {
	return w.particles
}

// Registry returns the force registry for wiring generators. Mutate it
// only between steps.
func (w *World) Registry() *force.Registry {
	return w.registry
}

// Step advances the world by dt seconds. dt must be positive; this
// outer layer reports the violation as an error so hosts can surface
// it, while the particle contract underneath treats it as fatal.
func (w *World) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("sim: step duration must be positive, got %g", dt)
	}

	w.registry.UpdateForces(dt)

	for _, p := range w.particles {
		p.Integrate(dt)
		if !p.HasFiniteMass() {
			// Immovable particles skip integration entirely, but their
			// accumulator must still be empty before the next phase.
			p.ClearAccumulator()
		}
	}
	return nil
}

// snapshot captures the current positions and velocities.
func (w *World) snapshot() ([]vec.Vec3, []vec.Vec3) {
	pos := make([]vec.Vec3, len(w.particles))
	vel := make([]vec.Vec3, len(w.particles))
	for i, p := range w.particles {
		pos[i] = p.Position
		vel[i] = p.Velocity
	}
	return pos, vel
}

// valid reports whether every particle holds finite state.
func (w *World) valid() bool {
	for _, p := range w.particles {
		if !p.Position.IsValid() || !p.Velocity.IsValid() {
			return false
		}
	}
	return true
}
