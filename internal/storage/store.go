// Package storage persists completed simulation runs: one directory
// per run holding JSON metadata and the trajectory as CSV.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/jsolberg/pointmass/internal/sim"
)

// Store writes runs under a base directory.
type Store struct {
	baseDir string
}

// New returns a store rooted at baseDir. Call Init before saving.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a saved run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// TrajectoryRow is one frame of one particle in the CSV trajectory.
type TrajectoryRow struct {
	Time     float64 `csv:"time"`
	Particle int     `csv:"particle"`
	PosX     float64 `csv:"pos_x"`
	PosY     float64 `csv:"pos_y"`
	PosZ     float64 `csv:"pos_z"`
	VelX     float64 `csv:"vel_x"`
	VelY     float64 `csv:"vel_y"`
	VelZ     float64 `csv:"vel_z"`
}

// Save writes a run directory named by a fresh UUID and returns the
// run ID.
func (s *Store) Save(scenario string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	particles := 0
	if len(result.Positions) > 0 {
		particles = len(result.Positions[0])
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Steps:     result.StepsTaken,
		Particles: particles,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	rows := flatten(result)

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.MarshalFile(&rows, csvFile); err != nil {
		return "", fmt.Errorf("storage: write trajectory: %w", err)
	}

	return runID, nil
}

// LoadMetadata reads a saved run's metadata by ID.
func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a saved run's trajectory rows by ID.
func (s *Store) LoadTrajectory(runID string) ([]TrajectoryRow, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []TrajectoryRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("storage: read trajectory: %w", err)
	}
	return rows, nil
}

// List returns the metadata of all saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func flatten(result *sim.Result) []TrajectoryRow {
	var rows []TrajectoryRow
	for i, t := range result.Times {
		for j := range result.Positions[i] {
			pos := result.Positions[i][j]
			vel := result.Velocities[i][j]
			rows = append(rows, TrajectoryRow{
				Time:     t,
				Particle: j,
				PosX:     pos.X, PosY: pos.Y, PosZ: pos.Z,
				VelX: vel.X, VelY: vel.Y, VelZ: vel.Z,
			})
		}
	}
	return rows
}
