package gcode

import (
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/svgpath"
)

// SortPaths orders paths greedily so that each one starts at the endpoint
// nearest to where the previous one finished, beginning at start. Open paths
// are reversed when their end is nearer. The input slice is not modified.
func SortPaths(paths []*svgpath.SubPath, start geometry.Point) []*svgpath.SubPath {
	if len(paths) == 0 {
		return nil
	}

	bounds := geometry.EmptyRectangle().Extend(start)
	remaining := map[*svgpath.SubPath]struct{}{}
	for _, path := range paths {
		bounds = bounds.Extend(pointOf(path.StartPoint())).Extend(pointOf(path.EndPoint()))
	}
	tree := newPathTree(bounds)
	for _, path := range paths {
		if len(path.DrawTo) == 0 {
			continue
		}
		tree.addPath(path)
		remaining[path] = struct{}{}
	}

	sorted := make([]*svgpath.SubPath, 0, len(remaining))
	x, y := start.X, start.Y
	for len(remaining) > 0 {
		var nearest *svgpath.SubPath
		for _, candidate := range tree.findNearest(x, y, 1) {
			if _, ok := remaining[candidate]; ok {
				nearest = candidate
				break
			}
		}
		if nearest == nil {
			// The tree lost track of a path; fall back to input order.
			for _, path := range paths {
				if _, ok := remaining[path]; ok {
					nearest = path
					break
				}
			}
		}
		tree.removePath(nearest)
		delete(remaining, nearest)

		if !nearest.Closed() && distance(x, y, nearest, false) < distance(x, y, nearest, true) {
			nearest = nearest.Reverse()
		}
		x, y = nearest.EndPoint()
		sorted = append(sorted, nearest)
	}
	return sorted
}

// JoinPaths merges each path into its predecessor when it starts where the
// predecessor ends, within tol. Closed paths are never extended.
func JoinPaths(paths []*svgpath.SubPath, tol float64) []*svgpath.SubPath {
	var joined []*svgpath.SubPath
	for _, path := range paths {
		if n := len(joined); n > 0 {
			last := joined[n-1]
			if !last.Closed() && !path.Closed() && pointOf(last.EndPoint()).Near(pointOf(path.StartPoint()), tol) {
				last.DrawTo = append(last.DrawTo, path.DrawTo...)
				continue
			}
		}
		copied := &svgpath.SubPath{X: path.X, Y: path.Y, DrawTo: append([]*svgpath.DrawTo(nil), path.DrawTo...)}
		joined = append(joined, copied)
	}
	return joined
}

func pointOf(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}
