package gcode

import (
	"math"
	"sort"

	"github.com/asim/quadtree"

	"honeycomb/pkg/geometry"
	"honeycomb/pkg/svgpath"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// pathTree indexes path endpoints. Each quadtree point carries the set of
// paths that start or end there.
type pathTree struct {
	quadTree *quadtree.QuadTree
	width    float64
	height   float64
}

func newPathTree(bounds geometry.Rectangle) *pathTree {
	center := bounds.Center()
	halfWidth := bounds.Width() / 2
	halfHeight := bounds.Height() / 2

	// Add a small margin to avoid dropping objects at the edges
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &pathTree{
		quadTree: quadtree.New(aabb, 0, nil),
		width:    halfWidth * 2,
		height:   halfHeight * 2,
	}
}

func (t *pathTree) addPath(path *svgpath.SubPath) {
	if len(path.DrawTo) == 0 {
		return
	}

	addOne := func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				paths := points[0].Data().(map[*svgpath.SubPath]struct{})
				paths[path] = struct{}{}
				return
			}
		}
		paths := map[*svgpath.SubPath]struct{}{path: {}}
		t.quadTree.Insert(quadtree.NewPoint(x, y, paths))
	}

	addOne(path.StartPoint())
	addOne(path.EndPoint())
}

func (t *pathTree) removePath(path *svgpath.SubPath) {
	removeOne := func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				paths := points[0].Data().(map[*svgpath.SubPath]struct{})
				delete(paths, path)
				if len(paths) == 0 {
					t.quadTree.Remove(points[0])
				}
			}
		}
	}
	removeOne(path.StartPoint())
	removeOne(path.EndPoint())
}

// findNearest returns up to maxCount paths ordered by the distance from (x, y)
// to their nearer endpoint.
func (t *pathTree) findNearest(x, y float64, maxCount int) []*svgpath.SubPath {
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(t.width, t.height, nil),
	)
	points := t.quadTree.KNearest(aabb, maxCount+50, nil)

	seen := map[*svgpath.SubPath]struct{}{}
	var nearest []*svgpath.SubPath
	for _, point := range points {
		paths := point.Data().(map[*svgpath.SubPath]struct{})
		for path := range paths {
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				nearest = append(nearest, path)
			}
		}
	}

	sort.SliceStable(nearest, func(i, j int) bool {
		return endDistance(x, y, nearest[i]) < endDistance(x, y, nearest[j])
	})

	if len(nearest) > maxCount {
		nearest = nearest[:maxCount]
	}

	return nearest
}

// distance measures from (x, y) to the start of path, or to its end.
func distance(x, y float64, path *svgpath.SubPath, start bool) float64 {
	px, py := path.StartPoint()
	if !start {
		px, py = path.EndPoint()
	}
	return math.Hypot(px-x, py-y)
}

func endDistance(x, y float64, path *svgpath.SubPath) float64 {
	return math.Min(distance(x, y, path, true), distance(x, y, path, false))
}
