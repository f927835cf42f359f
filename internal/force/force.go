// Package force provides the force generators that feed particle
// accumulators, and the registry that associates generators with the
// particles they act on.
//
// A generator computes a force from the particle's current state (and
// possibly external reference state such as an anchor point or a second
// particle) and contributes it via [particle.Particle.AddForce]. It
// never integrates and never touches the accumulator directly.
package force

import (
	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/vec"
)

// Generator computes and applies a force to a particle for one
// simulation step. Implementations call p.AddForce at most once per
// invocation and must tolerate a zero duration.
type Generator interface {
	UpdateForce(p *particle.Particle, duration float64)
}

// Gravity applies a constant acceleration field scaled by particle
// mass: F = g * m. Particles without finite mass are skipped.
type Gravity struct {
	gravity vec.Vec3
}

// NewGravity returns a gravity generator for the given field, e.g.
// (0, -9.81, 0) for Earth gravity pointing down the y axis.
func NewGravity(gravity vec.Vec3) *Gravity {
	return &Gravity{gravity: gravity}
}

func (g *Gravity) UpdateForce(p *particle.Particle, _ float64) {
	if !p.HasFiniteMass() {
		return
	}
	p.AddForce(g.gravity.Scale(p.Mass()))
}

// Drag opposes motion with a linear and a quadratic term:
// F = -v̂ * (k1*|v| + k2*|v|²). k1 models laminar flow, k2 turbulent.
type Drag struct {
	k1, k2 float64
}

// NewDrag returns a drag generator with the given linear and quadratic
// coefficients.
func NewDrag(k1, k2 float64) *Drag {
	return &Drag{k1: k1, k2: k2}
}

func (d *Drag) UpdateForce(p *particle.Particle, _ float64) {
	force := p.Velocity

	speed := force.Magnitude()
	if speed <= 0 {
		return
	}

	dragCoeff := d.k1*speed + d.k2*speed*speed

	force.Normalize()
	p.AddForce(force.Scale(-dragCoeff))
}

// Spring connects the particle it updates to a second particle. The
// force follows Hooke's law along the line between them; the sign of
// (|d| - restLength) already selects pull versus push through the
// normalize-and-negate composition, so no absolute value is taken.
type Spring struct {
	other          *particle.Particle
	springConstant float64
	restLength     float64
}

// NewSpring returns a spring generator anchored to other. Register a
// second Spring with the roles swapped to act on both ends.
func NewSpring(other *particle.Particle, springConstant, restLength float64) *Spring {
	return &Spring{other: other, springConstant: springConstant, restLength: restLength}
}

func (s *Spring) UpdateForce(p *particle.Particle, _ float64) {
	force := p.Position.Sub(s.other.Position)

	magnitude := force.Magnitude()
	if magnitude <= 0 {
		return
	}
	magnitude = (magnitude - s.restLength) * s.springConstant

	force.Normalize()
	p.AddForce(force.Scale(-magnitude))
}

// AnchoredSpring connects the particle to a fixed point in space. The
// anchor is held by pointer so setup code can move it between steps.
type AnchoredSpring struct {
	anchor         *vec.Vec3
	springConstant float64
	restLength     float64
}

// NewAnchoredSpring returns a spring generator anchored at the given
// point.
func NewAnchoredSpring(anchor *vec.Vec3, springConstant, restLength float64) *AnchoredSpring {
	return &AnchoredSpring{anchor: anchor, springConstant: springConstant, restLength: restLength}
}

func (s *AnchoredSpring) UpdateForce(p *particle.Particle, _ float64) {
	force := p.Position.Sub(*s.anchor)

	magnitude := force.Magnitude()
	if magnitude <= 0 {
		return
	}
	magnitude = s.springConstant * (s.restLength - magnitude)

	force.Normalize()
	p.AddForce(force.Scale(magnitude))
}

// Bungee behaves like Spring while stretched beyond its rest length and
// exerts no force while slack or compressed.
type Bungee struct {
	other          *particle.Particle
	springConstant float64
	restLength     float64
}

// NewBungee returns a bungee generator attached to other.
func NewBungee(other *particle.Particle, springConstant, restLength float64) *Bungee {
	return &Bungee{other: other, springConstant: springConstant, restLength: restLength}
}

func (b *Bungee) UpdateForce(p *particle.Particle, _ float64) {
	force := p.Position.Sub(b.other.Position)

	magnitude := force.Magnitude()
	if magnitude <= b.restLength {
		return
	}
	magnitude = (magnitude - b.restLength) * b.springConstant

	force.Normalize()
	p.AddForce(force.Scale(-magnitude))
}

// Buoyancy pushes a particle up while it sits below the surface plane
// of a liquid parallel to the XZ plane. The force ramps linearly from
// zero at the surface to liquidDensity*volume at maxDepth and saturates
// below that.
type Buoyancy struct {
	maxDepth      float64
	volume        float64
	waterHeight   float64
	liquidDensity float64
}

// NewBuoyancy returns a buoyancy generator for a liquid plane at
// waterHeight. liquidDensity is in kg/m³; 1000 models pure water.
func NewBuoyancy(maxDepth, volume, waterHeight, liquidDensity float64) *Buoyancy {
	return &Buoyancy{
		maxDepth:      maxDepth,
		volume:        volume,
		waterHeight:   waterHeight,
		liquidDensity: liquidDensity,
	}
}

func (b *Buoyancy) UpdateForce(p *particle.Particle, _ float64) {
	depth := p.Position.Y

	// Out of the water.
	if depth >= b.waterHeight+b.maxDepth {
		return
	}

	var force vec.Vec3
	if depth <= b.waterHeight-b.maxDepth {
		// Fully submerged.
		force.Y = b.liquidDensity * b.volume
	} else {
		// Partially submerged.
		force.Y = b.liquidDensity * b.volume *
			(depth - b.maxDepth - b.waterHeight) / (-2 * b.maxDepth)
	}
	p.AddForce(force)
}
