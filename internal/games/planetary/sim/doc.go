// Package sim implements the polar motion, collision, and combat simulation
// behind Planetary.
//
// Every entity lives at a (radius, angle) position around the world center.
// Angles are radians normalized to [0, 2π) with 0 pointing up; Cartesian
// render coordinates are derived with x = r·sin(θ), y = -r·cos(θ) and are
// never authoritative, except for bullets, which fly in straight lines.
//
// A World advances one fixed tick at a time. Nothing in this package blocks,
// logs, or reads the clock; all randomness comes from the World's seeded
// generator, so equal seeds and inputs replay identically.
package sim

import "fmt"

// assertf panics when an internal invariant is broken. Violations indicate a
// bug in the integration step, never bad input.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("sim: invariant violated: "+format, args...))
	}
}
