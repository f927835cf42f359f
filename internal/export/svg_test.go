package export

import (
	"strings"
	"testing"

	"github.com/jsolberg/pointmass/internal/sim"
	"github.com/jsolberg/pointmass/internal/vec"
)

func arc() *sim.Result {
	return &sim.Result{
		Times: []float64{0, 1, 2},
		Positions: [][]vec.Vec3{
			{vec.V3(0, 0, 0)},
			{vec.V3(0, 5, 10)},
			{vec.V3(0, 0, 20)},
		},
		Velocities: [][]vec.Vec3{
			{vec.Vec3{}}, {vec.Vec3{}}, {vec.Vec3{}},
		},
	}
}

func TestTrajectorySVG(t *testing.T) {
	svg, err := TrajectorySVG(arc(), 0, 400, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("missing polyline")
	}
	// Three frames, three points.
	points := strings.Split(strings.Split(svg, `points="`)[1], `"`)[0]
	if got := len(strings.Fields(points)); got != 3 {
		t.Errorf("expected 3 points, got %d", got)
	}
}

func TestTrajectorySVGErrors(t *testing.T) {
	if _, err := TrajectorySVG(&sim.Result{}, 0, 400, 200); err == nil {
		t.Error("expected error for empty result")
	}
	if _, err := TrajectorySVG(arc(), 5, 400, 200); err == nil {
		t.Error("expected error for bad index")
	}
}

func TestTrajectorySVGFlatPath(t *testing.T) {
	r := &sim.Result{
		Times: []float64{0, 1},
		Positions: [][]vec.Vec3{
			{vec.V3(0, 2, 0)},
			{vec.V3(0, 2, 0)},
		},
		Velocities: [][]vec.Vec3{{vec.Vec3{}}, {vec.Vec3{}}},
	}

	svg, err := TrajectorySVG(r, 0, 100, 100)
	if err != nil {
		t.Fatalf("flat path should still render: %v", err)
	}
	if strings.Contains(svg, "NaN") {
		t.Error("flat path produced NaN coordinates")
	}
}
