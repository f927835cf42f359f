// Package export renders recorded trajectories to SVG for reports.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsolberg/pointmass/internal/sim"
)

// TrajectorySVG plots one particle's side view (z across, y up) as an
// SVG polyline. width and height are the pixel dimensions of the
// output.
func TrajectorySVG(result *sim.Result, idx, width, height int) (string, error) {
	if len(result.Positions) < 2 {
		return "", fmt.Errorf("export: need at least two frames")
	}
	if idx < 0 || idx >= len(result.Positions[0]) {
		return "", fmt.Errorf("export: particle index %d out of range", idx)
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, frame := range result.Positions {
		p := frame[idx]
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
	}
	// Degenerate extents still need a nonzero span to scale by.
	if maxY-minY < 1e-9 {
		maxY = minY + 1
	}
	if maxZ-minZ < 1e-9 {
		maxZ = minZ + 1
	}

	const margin = 10.0
	w := float64(width) - 2*margin
	h := float64(height) - 2*margin

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="#00ff00" stroke-width="1.5" points="`,
		width, height, width, height))

	for i, frame := range result.Positions {
		p := frame[idx]
		x := margin + (p.Z-minZ)/(maxZ-minZ)*w
		// SVG y grows downward.
		y := margin + (1-(p.Y-minY)/(maxY-minY))*h
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.2f,%.2f", x, y))
	}

	sb.WriteString("\"/>\n</svg>\n")
	return sb.String(), nil
}
