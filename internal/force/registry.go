package force

import "github.com/jsolberg/pointmass/internal/particle"

type registration struct {
	particle  *particle.Particle
	generator Generator
}

// Registry holds the many-to-many associations between particles and
// force generators. One particle may appear in several registrations
// (both ends of a spring, gravity plus drag) and one generator may be
// registered against several particles.
//
// The registry does not own particle lifetime, only the association.
// It must only be mutated between simulation steps, never from inside a
// generator callback.
type Registry struct {
	registrations []registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers that gen applies to p each step.
func (r *Registry) Add(p *particle.Particle, gen Generator) {
	r.registrations = append(r.registrations, registration{particle: p, generator: gen})
}

// Remove deletes the first registration matching the (p, gen) pair by
// identity. Removing a pair that was never added is a no-op.
func (r *Registry) Remove(p *particle.Particle, gen Generator) {
	for i, reg := range r.registrations {
		if reg.particle == p && reg.generator == gen {
			r.registrations = append(r.registrations[:i], r.registrations[i+1:]...)
			return
		}
	}
}

// Clear removes every registration. The particles and generators
// themselves are untouched.
func (r *Registry) Clear() {
	r.registrations = r.registrations[:0]
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	return len(r.registrations)
}

// UpdateForces invokes every registered generator on its particle,
// accumulating forces for the coming integration step. Callers must
// integrate only after this returns; the accumulate-then-integrate
// ordering is the core sequencing contract of the simulation.
func (r *Registry) UpdateForces(duration float64) {
	for _, reg := range r.registrations {
		reg.generator.UpdateForce(reg.particle, duration)
	}
}
