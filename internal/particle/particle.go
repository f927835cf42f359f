// Package particle holds the kinematic state of a point mass and the
// semi-implicit Euler step that advances it.
package particle

import (
	"math"

	"github.com/jsolberg/pointmass/internal/vec"
)

// Particle is a point mass with position, velocity and acceleration in
// world space, plus a force accumulator that generators write into
// between integration steps.
//
// Mass is stored as its inverse so that an immovable object (inverse
// mass zero) is representable without a division by zero anywhere in
// the integrator.
type Particle struct {
	Position     vec.Vec3
	Velocity     vec.Vec3
	Acceleration vec.Vec3

	// Damping is the fraction of velocity retained per second, in
	// (0, 1]. It is applied as damping^dt each step so the decay rate
	// is independent of the frame rate: stepping once with dt or twice
	// with dt/2 removes the same energy.
	Damping float64

	// InverseMass is 1/mass, or zero for an immovable particle.
	// Never negative.
	InverseMass float64

	forceAccum vec.Vec3
}

// New returns a particle with zeroed state and zero inverse mass. It
// must be given a mass before it can move.
func New() *Particle {
	return &Particle{}
}

// SetMass sets the particle's mass. It panics if mass is not positive;
// use SetInverseMass(0) for an immovable particle.
func (p *Particle) SetMass(mass float64) {
	if mass <= 0 {
		panic("particle: mass must be positive")
	}
	p.InverseMass = 1 / mass
}

// SetInverseMass sets the inverse mass directly. Zero makes the
// particle immovable.
func (p *Particle) SetInverseMass(inverseMass float64) {
	if inverseMass < 0 {
		panic("particle: inverse mass must not be negative")
	}
	p.InverseMass = inverseMass
}

// Mass returns the particle's mass, or math.MaxFloat64 for an immovable
// particle.
func (p *Particle) Mass() float64 {
	if p.InverseMass == 0 {
		return math.MaxFloat64
	}
	return 1 / p.InverseMass
}

// HasFiniteMass reports whether the particle can be moved by forces.
func (p *Particle) HasFiniteMass() bool {
	return p.InverseMass > 0
}

// AddForce adds f to the accumulator for the next integration step.
// Calls compose additively; this is how multiple generators act on the
// same particle within one step.
func (p *Particle) AddForce(f vec.Vec3) {
	p.forceAccum = p.forceAccum.Add(f)
}

// ForceAccum returns the forces accumulated since the last integration.
func (p *Particle) ForceAccum() vec.Vec3 {
	return p.forceAccum
}

// ClearAccumulator zeroes the accumulated force.
func (p *Particle) ClearAccumulator() {
	p.forceAccum.Clear()
}

// Integrate advances the particle by duration seconds using
// semi-implicit Euler and clears the accumulator. The position update
// uses the velocity from before this step; reordering the updates
// changes the numerical behavior and loses the scheme's stability for
// oscillatory systems.
//
// Integrate panics if duration is not positive: frame time is the
// caller's contract, not a runtime condition. An immovable particle is
// left untouched.
func (p *Particle) Integrate(duration float64) {
	if duration <= 0 {
		panic("particle: integration duration must be positive")
	}
	if p.InverseMass <= 0 {
		return
	}

	p.Position.AddScaled(p.Velocity, duration)

	resultingAcc := p.Acceleration
	resultingAcc.AddScaled(p.forceAccum, p.InverseMass)

	p.Velocity.AddScaled(resultingAcc, duration)

	p.Velocity = p.Velocity.Scale(math.Pow(p.Damping, duration))

	p.ClearAccumulator()
}
