// Package geom provides the float geometry shared by the scroll container and its hosts.
package geom

import "math"

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Vector is a displacement in logical pixels.
type Vector struct {
	X, Y float64
}

// Size is a width and height in logical pixels.
type Size struct {
	Width, Height float64
}

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec is shorthand for Vector{x, y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Rect is shorthand for Rectangle{x, y, w, h}.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Add translates the point by v.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns the component-wise sum.
func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }

// Scale multiplies both components by f.
func (v Vector) Scale(f float64) Vector { return Vector{X: v.X * f, Y: v.Y * f} }

// Neg flips both components.
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y} }

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Size returns the rectangle's extent.
func (r Rectangle) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Position returns the top-left corner.
func (r Rectangle) Position() Point { return Point{X: r.X, Y: r.Y} }

// Center returns the middle of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Max returns the bottom-right corner.
func (r Rectangle) Max() Point { return Point{X: r.X + r.Width, Y: r.Y + r.Height} }

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Translate moves the rectangle by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// Intersection returns the overlap of r and s, or false when they do not overlap.
func (r Rectangle) Intersection(s Rectangle) (Rectangle, bool) {
	x0 := math.Max(r.X, s.X)
	y0 := math.Max(r.Y, s.Y)
	x1 := math.Min(r.X+r.Width, s.X+s.Width)
	y1 := math.Min(r.Y+r.Height, s.Y+s.Height)
	if x1 < x0 || y1 < y0 {
		return Rectangle{}, false
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// Shrink removes p from every side, never producing a negative extent.
func (r Rectangle) Shrink(p float64) Rectangle {
	return Rectangle{
		X:      r.X + p,
		Y:      r.Y + p,
		Width:  math.Max(r.Width-2*p, 0),
		Height: math.Max(r.Height-2*p, 0),
	}
}

// ApproxEqual compares every field of r and s with the given tolerance.
func (r Rectangle) ApproxEqual(s Rectangle, epsilon float64) bool {
	return math.Abs(r.X-s.X) <= epsilon &&
		math.Abs(r.Y-s.Y) <= epsilon &&
		math.Abs(r.Width-s.Width) <= epsilon &&
		math.Abs(r.Height-s.Height) <= epsilon
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
