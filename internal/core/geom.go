// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Rect represents an axis-aligned box in screen cells, used for HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// NormalizeAngle maps any angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleInBand reports whether angle a falls inside [lo, hi].
// The band may extend below 0 or above 2π; a is tested together with its
// copies a-2π and a+2π so that bands straddling the 0/2π seam still match.
func AngleInBand(a, lo, hi float64) bool {
	for _, c := range [3]float64{a, a - TwoPi, a + TwoPi} {
		if c >= lo && c <= hi {
			return true
		}
	}
	return false
}

// AngularDistance returns the length of the shortest arc between two
// normalized angles, in [0, π].
func AngularDistance(a, b float64) float64 {
	return math.Pi - math.Abs(math.Abs(a-b)-math.Pi)
}

// PolarToCartesian converts a (radius, angle) position around the world
// center into render coordinates. Angle 0 points up (negative y).
func PolarToCartesian(radius, angle float64) (x, y float64) {
	return radius * math.Sin(angle), -radius * math.Cos(angle)
}

// CartesianToPolar is the inverse of PolarToCartesian.
// The returned angle is normalized.
func CartesianToPolar(x, y float64) (radius, angle float64) {
	return math.Hypot(x, y), NormalizeAngle(math.Atan2(x, -y))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
