package panel

import (
	"honeycomb/pkg/geometry"
)

// Profile is a planar region: an outer ring minus zero or more holes.
// All rings are stored counter-clockwise; for ring-shaped profiles hole
// vertex i sits opposite outer vertex i.
type Profile struct {
	Outer geometry.Polygon
	Holes []geometry.Polygon
}

func (p Profile) Bounds() geometry.Rectangle {
	return p.Outer.Bounds()
}

// Area is the outer area minus the hole areas.
func (p Profile) Area() float64 {
	area := p.Outer.SignedArea()
	for _, h := range p.Holes {
		area -= h.SignedArea()
	}
	return area
}

// Solid is a set of profiles extruded from ZMin to ZMax.
type Solid struct {
	Name     string
	Profiles []Profile
	ZMin     float64
	ZMax     float64
}

func (s *Solid) Height() float64 {
	return s.ZMax - s.ZMin
}

// Bounds is the planar bounding box of every profile.
func (s *Solid) Bounds() geometry.Rectangle {
	b := geometry.EmptyRectangle()
	for _, p := range s.Profiles {
		b = b.Union(p.Bounds())
	}
	return b
}

// Volume assumes profiles do not overlap, which both builders guarantee.
func (s *Solid) Volume() float64 {
	area := 0.0
	for _, p := range s.Profiles {
		area += p.Area()
	}
	return area * s.Height()
}

// Walls returns every boundary edge of every profile, outer rings first within each profile.
// The bool slice marks edges that belong to holes.
func (s *Solid) Walls() (edges []geometry.LineSegment, inner []bool) {
	for _, p := range s.Profiles {
		for _, e := range p.Outer.Edges() {
			edges = append(edges, e)
			inner = append(inner, false)
		}
		for _, h := range p.Holes {
			for _, e := range h.Edges() {
				edges = append(edges, e)
				inner = append(inner, true)
			}
		}
	}
	return edges, inner
}

// Outline returns the edges that bound the solid: profile edges not shared with
// a neighboring profile. Touching cells contribute no edge along their common wall.
func (s *Solid) Outline(tol float64) []geometry.LineSegment {
	edges, _ := s.Walls()
	shared := geometry.SharedSegments(edges, tol)
	var outline []geometry.LineSegment
	for i, e := range edges {
		if !shared[i] {
			outline = append(outline, e)
		}
	}
	return outline
}
