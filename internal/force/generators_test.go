package force_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jsolberg/pointmass/internal/force"
	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/vec"
)

const dt = 1.0 / 60.0

func newParticle(mass float64) *particle.Particle {
	p := particle.New()
	p.SetMass(mass)
	p.Damping = 1.0
	return p
}

var _ = Describe("Gravity", func() {
	It("applies the field scaled by mass", func() {
		p := newParticle(2.0)
		g := force.NewGravity(vec.V3(0, -10, 0))

		g.UpdateForce(p, dt)

		Expect(p.ForceAccum()).To(Equal(vec.V3(0, -20, 0)))
	})

	It("skips particles with infinite mass", func() {
		p := particle.New()
		g := force.NewGravity(vec.V3(0, -10, 0))

		g.UpdateForce(p, dt)

		Expect(p.ForceAccum()).To(Equal(vec.Vec3{}))
	})

	It("tolerates a zero duration", func() {
		p := newParticle(1.0)
		g := force.NewGravity(vec.V3(0, -9.81, 0))

		Expect(func() { g.UpdateForce(p, 0) }).NotTo(Panic())
	})
})

var _ = Describe("Drag", func() {
	It("does nothing for a resting particle", func() {
		p := newParticle(1.0)
		d := force.NewDrag(0.5, 0.1)

		d.UpdateForce(p, dt)

		Expect(p.ForceAccum()).To(Equal(vec.Vec3{}))
	})

	It("opposes motion with linear and quadratic terms", func() {
		p := newParticle(1.0)
		p.Velocity = vec.V3(3, 0, 0)
		d := force.NewDrag(0.5, 0.1)

		d.UpdateForce(p, dt)

		// |v| = 3: coeff = 0.5*3 + 0.1*9 = 2.4, opposing +x.
		Expect(p.ForceAccum().X).To(BeNumerically("~", -2.4, 1e-9))
		Expect(p.ForceAccum().Y).To(BeZero())
		Expect(p.ForceAccum().Z).To(BeZero())
	})
})

var _ = Describe("Spring", func() {
	It("pulls a stretched pair together", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(2, 0, 0)

		// rest length 1, stretched to 2: |F| = 5 * (2 - 1) = 5.
		force.NewSpring(b, 5.0, 1.0).UpdateForce(a, dt)
		force.NewSpring(a, 5.0, 1.0).UpdateForce(b, dt)

		Expect(a.ForceAccum().X).To(BeNumerically("~", 5.0, 1e-9))
		Expect(b.ForceAccum().X).To(BeNumerically("~", -5.0, 1e-9))
	})

	It("pushes a compressed pair apart", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(0.5, 0, 0)

		force.NewSpring(b, 5.0, 1.0).UpdateForce(a, dt)

		// Compressed below rest length: force points away from b.
		Expect(a.ForceAccum().X).To(BeNumerically("~", -2.5, 1e-9))
	})

	It("skips coincident particles", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)

		force.NewSpring(b, 5.0, 1.0).UpdateForce(a, dt)

		Expect(a.ForceAccum()).To(Equal(vec.Vec3{}))
	})
})

var _ = Describe("AnchoredSpring", func() {
	It("pulls the particle toward a distant anchor", func() {
		p := newParticle(1.0)
		p.Position = vec.V3(0, -3, 0)
		anchor := vec.V3(0, 0, 0)

		force.NewAnchoredSpring(&anchor, 2.0, 1.0).UpdateForce(p, dt)

		// |d| = 3, rest 1: |F| = 2 * (3 - 1) = 4, pointing up.
		Expect(p.ForceAccum().Y).To(BeNumerically("~", 4.0, 1e-9))
	})

	It("sees anchor movement between steps", func() {
		p := newParticle(1.0)
		anchor := vec.V3(2, 0, 0)
		s := force.NewAnchoredSpring(&anchor, 1.0, 1.0)

		s.UpdateForce(p, dt)
		first := p.ForceAccum()
		p.ClearAccumulator()

		anchor.X = 5
		s.UpdateForce(p, dt)

		Expect(p.ForceAccum().X).To(BeNumerically(">", first.X))
	})
})

var _ = Describe("Bungee", func() {
	It("is slack below its rest length", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(0.5, 0, 0)

		force.NewBungee(b, 5.0, 1.0).UpdateForce(a, dt)

		Expect(a.ForceAccum()).To(Equal(vec.Vec3{}))
	})

	It("matches the spring magnitude once stretched", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(2, 0, 0)

		force.NewBungee(b, 5.0, 1.0).UpdateForce(a, dt)

		Expect(a.ForceAccum().X).To(BeNumerically("~", 5.0, 1e-9))
	})

	It("pulls the ends together while stretched", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(2, 0, 0)

		force.NewBungee(b, 5.0, 1.0).UpdateForce(a, dt)
		bungeeForce := a.ForceAccum()
		a.ClearAccumulator()

		force.NewSpring(b, 5.0, 1.0).UpdateForce(a, dt)
		springForce := a.ForceAccum()

		// Attraction: positive X pulls a toward b at (2,0,0).
		Expect(bungeeForce.X).To(BeNumerically(">", 0))
		Expect(bungeeForce.X).To(BeNumerically("~", springForce.X, 1e-9))
		Expect(bungeeForce.Y).To(BeNumerically("~", springForce.Y, 1e-9))
		Expect(bungeeForce.Z).To(BeNumerically("~", springForce.Z, 1e-9))
	})

	It("exerts nothing exactly at rest length", func() {
		a := newParticle(1.0)
		b := newParticle(1.0)
		b.Position = vec.V3(1, 0, 0)

		force.NewBungee(b, 5.0, 1.0).UpdateForce(a, dt)

		Expect(a.ForceAccum()).To(Equal(vec.Vec3{}))
	})
})

var _ = Describe("Buoyancy", func() {
	newBuoyancy := func() *force.Buoyancy {
		// Liquid surface at y=0, object half-height 0.5, volume 0.01 m³.
		return force.NewBuoyancy(0.5, 0.01, 0, 1000)
	}

	It("ignores a particle above the surface", func() {
		p := newParticle(1.0)
		p.Position = vec.V3(0, 1, 0)

		newBuoyancy().UpdateForce(p, dt)

		Expect(p.ForceAccum()).To(Equal(vec.Vec3{}))
	})

	It("applies full displacement when fully submerged", func() {
		p := newParticle(1.0)
		p.Position = vec.V3(0, -2, 0)

		newBuoyancy().UpdateForce(p, dt)

		Expect(p.ForceAccum().Y).To(BeNumerically("~", 10.0, 1e-9))
	})

	It("ramps the force through the surface band", func() {
		p := newParticle(1.0)
		p.Position = vec.V3(0, 0, 0)

		newBuoyancy().UpdateForce(p, dt)

		// Half submerged at the surface plane.
		Expect(p.ForceAccum().Y).To(BeNumerically("~", 5.0, 1e-9))
	})
})

var _ = Describe("composition", func() {
	It("sums gravity and drag additively in the accumulator", func() {
		p := newParticle(2.0)
		p.Velocity = vec.V3(0, 0, 10)

		force.NewGravity(vec.V3(0, -10, 0)).UpdateForce(p, dt)
		force.NewDrag(0.1, 0).UpdateForce(p, dt)

		Expect(p.ForceAccum().Y).To(BeNumerically("~", -20.0, 1e-9))
		Expect(p.ForceAccum().Z).To(BeNumerically("~", -1.0, 1e-9))
	})

	It("never leaves NaN in the accumulator for degenerate inputs", func() {
		p := newParticle(1.0)
		b := newParticle(1.0) // coincident with p

		force.NewSpring(b, 5.0, 1.0).UpdateForce(p, dt)
		force.NewDrag(0.5, 0.1).UpdateForce(p, dt)

		f := p.ForceAccum()
		Expect(math.IsNaN(f.X) || math.IsNaN(f.Y) || math.IsNaN(f.Z)).To(BeFalse())
	})
})
