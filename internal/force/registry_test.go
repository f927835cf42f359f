package force_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jsolberg/pointmass/internal/force"
	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/vec"
)

var _ = Describe("Registry", func() {
	var (
		reg *force.Registry
		p   *particle.Particle
	)

	BeforeEach(func() {
		reg = force.NewRegistry()
		p = newParticle(2.0)
	})

	It("invokes each registered generator on its particle", func() {
		reg.Add(p, force.NewGravity(vec.V3(0, -10, 0)))

		reg.UpdateForces(dt)

		Expect(p.ForceAccum()).To(Equal(vec.V3(0, -20, 0)))
	})

	It("allows one particle in several registrations", func() {
		p.Velocity = vec.V3(0, 0, 10)
		reg.Add(p, force.NewGravity(vec.V3(0, -10, 0)))
		reg.Add(p, force.NewDrag(0.1, 0))

		reg.UpdateForces(dt)

		Expect(p.ForceAccum().Y).To(BeNumerically("~", -20.0, 1e-9))
		Expect(p.ForceAccum().Z).To(BeNumerically("~", -1.0, 1e-9))
	})

	It("allows one generator shared by several particles", func() {
		q := newParticle(1.0)
		g := force.NewGravity(vec.V3(0, -10, 0))
		reg.Add(p, g)
		reg.Add(q, g)

		reg.UpdateForces(dt)

		Expect(p.ForceAccum().Y).To(BeNumerically("~", -20.0, 1e-9))
		Expect(q.ForceAccum().Y).To(BeNumerically("~", -10.0, 1e-9))
	})

	It("removes exactly the matching pair", func() {
		g1 := force.NewGravity(vec.V3(0, -10, 0))
		g2 := force.NewDrag(0.5, 0)
		reg.Add(p, g1)
		reg.Add(p, g2)

		reg.Remove(p, g1)

		Expect(reg.Len()).To(Equal(1))
		reg.UpdateForces(dt)
		Expect(p.ForceAccum().Y).To(BeZero())
	})

	It("ignores removal of an unknown pair", func() {
		g := force.NewGravity(vec.V3(0, -10, 0))
		reg.Add(p, g)

		reg.Remove(newParticle(1.0), g)

		Expect(reg.Len()).To(Equal(1))
	})

	It("clears every registration at once", func() {
		reg.Add(p, force.NewGravity(vec.V3(0, -10, 0)))
		reg.Add(p, force.NewDrag(0.5, 0))

		reg.Clear()

		Expect(reg.Len()).To(BeZero())
		reg.UpdateForces(dt)
		Expect(p.ForceAccum()).To(Equal(vec.Vec3{}))
	})

	It("updates both ends of a spring through paired registrations", func() {
		q := newParticle(1.0)
		q.Position = vec.V3(2, 0, 0)
		reg.Add(p, force.NewSpring(q, 5.0, 1.0))
		reg.Add(q, force.NewSpring(p, 5.0, 1.0))

		reg.UpdateForces(dt)

		Expect(p.ForceAccum().X).To(BeNumerically("~", 5.0, 1e-9))
		Expect(q.ForceAccum().X).To(BeNumerically("~", -5.0, 1e-9))
	})
})
