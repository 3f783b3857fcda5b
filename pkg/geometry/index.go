package geometry

import (
	"math"
	"sort"

	"github.com/asim/quadtree"
)

// PointIndex is a spatial index over points, each carrying arbitrary data.
type PointIndex struct {
	quadTree *quadtree.QuadTree
	width    float64
	height   float64
}

// IndexedPoint is a point returned from a PointIndex query.
type IndexedPoint struct {
	Point
	Data any
}

// NewPointIndex creates an index that accepts points inside bounds.
func NewPointIndex(bounds Rectangle) *PointIndex {
	center := bounds.Center()
	halfWidth := bounds.Width() / 2
	halfHeight := bounds.Height() / 2

	// Add a small margin to avoid dropping objects at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &PointIndex{
		quadTree: quadtree.New(aabb, 0, nil),
		width:    halfWidth * 2,
		height:   halfHeight * 2,
	}
}

// Insert adds p to the index. It returns false when p is outside the index bounds.
func (ix *PointIndex) Insert(p Point, data any) bool {
	return ix.quadTree.Insert(quadtree.NewPoint(p.X, p.Y, data))
}

// Within returns all indexed points within radius of p, nearest first.
func (ix *PointIndex) Within(p Point, radius float64) []IndexedPoint {
	box := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(radius, radius, nil),
	)
	var found []IndexedPoint
	for _, qp := range ix.quadTree.Search(box) {
		x, y := qp.Coordinates()
		candidate := Point{X: x, Y: y}
		if candidate.Distance(p) <= radius {
			found = append(found, IndexedPoint{Point: candidate, Data: qp.Data()})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Distance(p) < found[j].Distance(p)
	})
	return found
}

// SharedSegments reports, for every segment, whether another segment in the
// list covers the same span within tol. Touching hexagon walls show up here.
func SharedSegments(segments []LineSegment, tol float64) []bool {
	shared := make([]bool, len(segments))
	if len(segments) == 0 {
		return shared
	}

	bounds := EmptyRectangle()
	for _, s := range segments {
		bounds = bounds.Extend(s.A).Extend(s.B)
	}
	ix := NewPointIndex(bounds)
	for i, s := range segments {
		ix.Insert(s.Midpoint(), i)
	}

	for i, s := range segments {
		if shared[i] {
			continue
		}
		for _, hit := range ix.Within(s.Midpoint(), math.Max(tol, 1e-12)) {
			j := hit.Data.(int)
			if j != i && s.Coincident(segments[j], tol) {
				shared[i] = true
				shared[j] = true
			}
		}
	}
	return shared
}
