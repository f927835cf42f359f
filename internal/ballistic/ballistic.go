// Package ballistic is the projectile demo built on the particle core:
// a round is fired from the origin and advanced frame by frame until it
// hits the ground or flies out of range.
package ballistic

import (
	"fmt"

	"github.com/jsolberg/pointmass/internal/particle"
	"github.com/jsolberg/pointmass/internal/vec"
)

// ShotType selects the kinematic profile of a fired round.
type ShotType int

const (
	Unused ShotType = iota
	Pistol
	Artillery
	Fireball
	Laser
)

var shotNames = map[string]ShotType{
	"pistol":    Pistol,
	"artillery": Artillery,
	"fireball":  Fireball,
	"laser":     Laser,
}

// ParseShotType maps a CLI/config name to a shot type.
func ParseShotType(name string) (ShotType, error) {
	if st, ok := shotNames[name]; ok {
		return st, nil
	}
	return Unused, fmt.Errorf("ballistic: unknown shot type %q", name)
}

func (s ShotType) String() string {
	switch s {
	case Pistol:
		return "pistol"
	case Artillery:
		return "artillery"
	case Fireball:
		return "fireball"
	case Laser:
		return "laser"
	default:
		return "unused"
	}
}

// Round is a single projectile. The particle state is exposed for the
// display layer, which only ever reads it.
type Round struct {
	Particle particle.Particle
	Type     ShotType
	// Age is simulated seconds since firing.
	Age float64
}

// NewRound returns an idle round.
func NewRound() *Round {
	return &Round{Type: Unused}
}

// Fire resets the round at the muzzle position with the kinematics of
// the given shot type. Acceleration here stands in for gravity scaled
// to each projectile's feel: a laser is unaffected, a fireball floats
// upward.
func (r *Round) Fire(shot ShotType) {
	p := &r.Particle

	switch shot {
	case Pistol:
		p.SetMass(2.0)
		p.Velocity = vec.V3(0, 0, 35)
		p.Acceleration = vec.V3(0, -1, 0)
		p.Damping = 0.99
	case Artillery:
		p.SetMass(200.0)
		p.Velocity = vec.V3(0, 30, 40)
		p.Acceleration = vec.V3(0, -20, 0)
		p.Damping = 0.99
	case Fireball:
		p.SetMass(1.0)
		p.Velocity = vec.V3(0, 0, 10)
		p.Acceleration = vec.V3(0, 0.6, 0)
		p.Damping = 0.9
	case Laser:
		// Almost massless and undamped; no gravity.
		p.SetMass(0.1)
		p.Velocity = vec.V3(0, 0, 100)
		p.Acceleration = vec.Vec3{}
		p.Damping = 0.99
	default:
		return
	}

	p.Position = vec.V3(0, 1.5, 0)
	p.ClearAccumulator()
	r.Type = shot
	r.Age = 0
}

// Live reports whether the round is in flight: fired, above ground and
// inside the demo range.
func (r *Round) Live() bool {
	return r.Type != Unused &&
		r.Particle.Position.Y > 0 &&
		r.Particle.Position.Z < 200
}

// Update advances the round by dt seconds.
func (r *Round) Update(dt float64) {
	if r.Type == Unused {
		return
	}
	r.Particle.Integrate(dt)
	r.Age += dt
}
