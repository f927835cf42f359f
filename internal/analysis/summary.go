package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jsolberg/pointmass/internal/sim"
)

// Summary condenses one particle's trajectory.
type Summary struct {
	FlightTime  float64 // seconds until the last recorded frame
	Range       float64 // horizontal distance from start to finish
	Apex        float64 // highest y reached
	MeanSpeed   float64
	SpeedStdDev float64
	PeakSpeed   float64
}

// Summarize reduces the trajectory of particle index idx in result.
func Summarize(result *sim.Result, idx int) (*Summary, error) {
	if len(result.Times) == 0 {
		return nil, fmt.Errorf("analysis: empty result")
	}
	if idx < 0 || idx >= len(result.Positions[0]) {
		return nil, fmt.Errorf("analysis: particle index %d out of range", idx)
	}

	speeds := make([]float64, len(result.Times))
	apex := math.Inf(-1)
	for i := range result.Times {
		speeds[i] = result.Velocities[i][idx].Magnitude()
		if y := result.Positions[i][idx].Y; y > apex {
			apex = y
		}
	}

	first := result.Positions[0][idx]
	last := result.Positions[len(result.Positions)-1][idx]
	dx := last.X - first.X
	dz := last.Z - first.Z

	mean, std := stat.MeanStdDev(speeds, nil)
	// A single-frame run has no spread.
	if math.IsNaN(std) {
		std = 0
	}

	peak := 0.0
	for _, s := range speeds {
		if s > peak {
			peak = s
		}
	}

	return &Summary{
		FlightTime:  result.Times[len(result.Times)-1] - result.Times[0],
		Range:       math.Hypot(dx, dz),
		Apex:        apex,
		MeanSpeed:   mean,
		SpeedStdDev: std,
		PeakSpeed:   peak,
	}, nil
}

// Format renders the summary as aligned report lines.
func (s *Summary) Format() string {
	return fmt.Sprintf(
		"flight time  %8.3f s\nrange        %8.3f m\napex         %8.3f m\nmean speed   %8.3f m/s (±%.3f)\npeak speed   %8.3f m/s",
		s.FlightTime, s.Range, s.Apex, s.MeanSpeed, s.SpeedStdDev, s.PeakSpeed,
	)
}
