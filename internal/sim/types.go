package sim

import "fmt"

// Metric aggregates an observation over a run, sampled once per step
// before the world advances.
type Metric interface {
	Name() string
	Observe(w *World, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each completed step.
type Observer interface {
	OnStep(w *World, t, dt float64)
}

// Config controls a simulation run.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// DefaultConfig returns a 60 Hz run of ten seconds with state
// validation enabled.
func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60.0,
		Duration:      10.0,
		ValidateState: true,
	}
}

// StepError records where in a run a step went wrong.
type StepError struct {
	Time    float64
	Step    int
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
