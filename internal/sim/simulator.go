package sim

import (
	"context"
	"fmt"

	"github.com/jsolberg/pointmass/internal/vec"
)

// Result holds the trajectory of a completed run. Positions and
// Velocities are indexed [step][particle], parallel to Times.
type Result struct {
	Times      []float64
	Positions  [][]vec.Vec3
	Velocities [][]vec.Vec3
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Simulator drives a World through a fixed-step run, recording the
// trajectory and feeding metrics and observers along the way.
//
// Simulator instances are not safe for concurrent use.
type Simulator struct {
	world     *World
	metrics   []Metric
	observers []Observer
}

// New returns a simulator over the given world.
func New(world *World) *Simulator {
	return &Simulator{world: world}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// World returns the world being advanced.
func (s *Simulator) World() *World { return s.world }

// Run advances the world for cfg.Duration seconds in cfg.Dt steps,
// checking ctx between frames. The returned Result always contains
// whatever trajectory was recorded, even on early exit.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	// Round rather than truncate: Duration/Dt quotients that land just
	// under an integer must not drop the final step.
	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	t := 0.0
	s.record(result, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(s.world, t)
		}

		if err := s.world.Step(cfg.Dt); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !s.world.valid() {
			result.Errors = append(result.Errors,
				StepError{Time: t, Step: i, Message: "invalid particle state (NaN/Inf)"})
			break
		}

		for _, o := range s.observers {
			o.OnStep(s.world, t, cfg.Dt)
		}

		s.record(result, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback advances the world frame by frame, handing each
// completed step to the callback. Returning false from the callback
// stops the run. Used by the live view, which renders instead of
// recording.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(w *World, t float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.world, t) {
			return nil
		}

		if err := s.world.Step(cfg.Dt); err != nil {
			return err
		}
		t += cfg.Dt

		if cfg.ValidateState && !s.world.valid() {
			return fmt.Errorf("sim: invalid particle state at t=%.4f", t)
		}
	}

	return nil
}

func (s *Simulator) record(result *Result, t float64) {
	pos, vel := s.world.snapshot()
	result.Times = append(result.Times, t)
	result.Positions = append(result.Positions, pos)
	result.Velocities = append(result.Velocities, vel)
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %g", cfg.Duration)
	}
	return nil
}
