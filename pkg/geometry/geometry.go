package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

type LineSegment struct {
	A Point
	B Point
}

// Rectangle is an axis-aligned box. The zero value is a degenerate box at the
// origin; use EmptyRectangle as the identity for Union.
type Rectangle struct {
	Min Point
	Max Point
}

// Polygon is a closed ring of points. The closing edge from the last point back
// to the first is implicit.
type Polygon []Point

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Scale returns the point scaled by the given factor f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Near reports whether p and other are within tol of each other.
func (p Point) Near(other Point, tol float64) bool {
	return p.Distance(other) <= tol
}

func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

func (s LineSegment) Midpoint() Point {
	return s.A.Add(s.B).Scale(0.5)
}

func (s LineSegment) Reverse() LineSegment {
	return LineSegment{A: s.B, B: s.A}
}

// Coincident reports whether both segments cover the same span, in either direction.
func (s LineSegment) Coincident(other LineSegment, tol float64) bool {
	if s.A.Near(other.A, tol) && s.B.Near(other.B, tol) {
		return true
	}
	return s.A.Near(other.B, tol) && s.B.Near(other.A, tol)
}

// EmptyRectangle returns an inverted rectangle that any Extend call replaces.
func EmptyRectangle() Rectangle {
	return Rectangle{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

func (r Rectangle) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the width and height as a vector.
func (r Rectangle) Size() Vector2 {
	return r.Max.Minus(r.Min)
}

func (r Rectangle) Center() Point {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Extend grows the rectangle to include p.
func (r Rectangle) Extend(p Point) Rectangle {
	return Rectangle{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

func (r Rectangle) Union(other Rectangle) Rectangle {
	if other.Empty() {
		return r
	}
	return r.Extend(other.Min).Extend(other.Max)
}

// Expand offsets every side of the rectangle outward by d. A negative d shrinks it.
func (r Rectangle) Expand(d float64) Rectangle {
	return Rectangle{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Contains reports whether p lies inside r, allowing tol of slack on every side.
func (r Rectangle) Contains(p Point, tol float64) bool {
	return p.X >= r.Min.X-tol && p.X <= r.Max.X+tol &&
		p.Y >= r.Min.Y-tol && p.Y <= r.Max.Y+tol
}

// ContainsRectangle reports whether other lies entirely inside r.
func (r Rectangle) ContainsRectangle(other Rectangle, tol float64) bool {
	return r.Contains(other.Min, tol) && r.Contains(other.Max, tol)
}

// Polygon returns the corners counter-clockwise, starting at Min.
func (r Rectangle) Polygon() Polygon {
	return Polygon{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func (poly Polygon) Bounds() Rectangle {
	b := EmptyRectangle()
	for _, p := range poly {
		b = b.Extend(p)
	}
	return b
}

// SignedArea is positive for counter-clockwise rings (shoelace formula).
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.CrossProductZ(q)
	}
	return area / 2
}

func (poly Polygon) Edges() []LineSegment {
	if len(poly) < 2 {
		return nil
	}
	edges := make([]LineSegment, len(poly))
	for i, p := range poly {
		edges[i] = LineSegment{A: p, B: poly[(i+1)%len(poly)]}
	}
	return edges
}
