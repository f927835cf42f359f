// Package scenario wires configs into runnable simulations: it builds
// the world, registers the force generators and attaches the standard
// metrics.
package scenario

import (
	"fmt"

	"github.com/jsolberg/pointmass/internal/ballistic"
	"github.com/jsolberg/pointmass/internal/config"
	"github.com/jsolberg/pointmass/internal/force"
	"github.com/jsolberg/pointmass/internal/metrics"
	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/sim"
	"github.com/jsolberg/pointmass/internal/vec"
)

// Build returns a simulator for the configured scenario.
func Build(cfg *config.Config) (*sim.Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		w   *sim.World
		err error
	)
	switch cfg.Scenario {
	case "ballistic":
		w, err = buildBallistic(cfg)
	case "spring":
		w, err = buildSpring(cfg)
	default:
		return nil, fmt.Errorf("scenario: unknown scenario %q", cfg.Scenario)
	}
	if err != nil {
		return nil, err
	}

	s := sim.New(w)
	s.AddMetric(metrics.NewApex())
	s.AddMetric(metrics.NewMaxSpeed())
	s.AddMetric(metrics.NewEnergy(-cfg.Gravity.Y))
	return s, nil
}

// Config returns the sim config slice of cfg.
func Config(cfg *config.Config) sim.Config {
	return sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	}
}

func buildBallistic(cfg *config.Config) (*sim.World, error) {
	shot, err := ballistic.ParseShotType(cfg.Shot)
	if err != nil {
		return nil, err
	}

	round := ballistic.NewRound()
	round.Fire(shot)

	w := sim.NewWorld()
	w.AddParticle(&round.Particle)

	// The shot profiles encode gravity in their acceleration; drag is
	// the only registered generator.
	if cfg.Drag.K1 > 0 || cfg.Drag.K2 > 0 {
		w.Registry().Add(&round.Particle, force.NewDrag(cfg.Drag.K1, cfg.Drag.K2))
	}
	return w, nil
}

func buildSpring(cfg *config.Config) (*sim.World, error) {
	sc := cfg.Spring
	gravity := vec.V3(cfg.Gravity.X, cfg.Gravity.Y, cfg.Gravity.Z)

	w := sim.NewWorld()

	a := particle.New()
	a.SetMass(sc.Mass)
	a.Damping = sc.Damping
	a.Position = vec.V3(0, sc.Separation, 0)
	w.AddParticle(a)

	switch sc.Kind {
	case "anchored":
		anchor := vec.V3(0, 2*sc.Separation, 0)
		w.Registry().Add(a, force.NewAnchoredSpring(&anchor, sc.Constant, sc.RestLength))
	case "spring", "bungee":
		b := particle.New()
		b.SetMass(sc.Mass)
		b.Damping = sc.Damping
		w.AddParticle(b)

		if sc.Kind == "bungee" {
			w.Registry().Add(a, force.NewBungee(b, sc.Constant, sc.RestLength))
			w.Registry().Add(b, force.NewBungee(a, sc.Constant, sc.RestLength))
		} else {
			w.Registry().Add(a, force.NewSpring(b, sc.Constant, sc.RestLength))
			w.Registry().Add(b, force.NewSpring(a, sc.Constant, sc.RestLength))
		}
	}

	if gravity.MagnitudeSquared() > 0 {
		g := force.NewGravity(gravity)
		for _, p := range w.Particles() {
			w.Registry().Add(p, g)
		}
	}
	return w, nil
}
