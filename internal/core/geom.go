// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
// Used by the screen buffer for boxes and fills.
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

// Vec is a 2D vector in world units (pixels of the 800x600 stage).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Polar returns a vector of the given length pointing at angle (radians).
func Polar(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Circle is a circle in world units.
type Circle struct {
	Center Vec
	R      float64
}

// Overlaps reports whether two circles overlap.
// Touching circles (distance exactly equal to the radius sum) do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Sub(o.Center).Len() < c.R+o.R
}

// VSegment is a vertical line segment at X spanning [Top, Bottom].
type VSegment struct {
	X           float64
	Top, Bottom float64
}

// Closest returns the point on the segment closest to p.
func (s VSegment) Closest(p Vec) Vec {
	return Vec{X: s.X, Y: ClampF(p.Y, s.Top, s.Bottom)}
}

// Touches reports whether the circle reaches the segment.
// Contact at exactly the radius counts as touching.
func (c Circle) Touches(s VSegment) bool {
	return c.Center.Sub(s.Closest(c.Center)).Len() <= c.R
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
