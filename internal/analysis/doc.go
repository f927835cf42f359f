// Package analysis summarizes recorded trajectories.
//
// A [Summary] condenses one particle's run into the figures the CLI
// reports after a simulation:
//
//   - flight time and ground range
//   - apex height
//   - mean and peak speed with their spread
//
// Speeds are aggregated with gonum's stat package; positions are read
// straight off the recorded frames.
package analysis
