// Package svgpath models SVG path data as sub-paths of absolute draw commands.
package svgpath

import (
	"strconv"
	"strings"

	"honeycomb/pkg/geometry"
)

type SubPath struct {
	X, Y   float64
	DrawTo []*DrawTo
}

type Command string

const (
	ClosePath = "Z"
	LineTo    = "L"
)

type DrawTo struct {
	Command Command
	X, Y    float64
}

// FromPolygon returns a closed sub-path through every vertex of poly.
func FromPolygon(poly geometry.Polygon) *SubPath {
	if len(poly) == 0 {
		return nil
	}
	path := &SubPath{X: poly[0].X, Y: poly[0].Y}
	for _, p := range poly[1:] {
		path.DrawTo = append(path.DrawTo, &DrawTo{Command: LineTo, X: p.X, Y: p.Y})
	}
	path.DrawTo = append(path.DrawTo, &DrawTo{Command: ClosePath, X: poly[0].X, Y: poly[0].Y})
	return path
}

// FromSegment returns an open, single-line sub-path.
func FromSegment(s geometry.LineSegment) *SubPath {
	return &SubPath{
		X: s.A.X, Y: s.A.Y,
		DrawTo: []*DrawTo{{Command: LineTo, X: s.B.X, Y: s.B.Y}},
	}
}

func ToString(groups []*SubPath) string {
	var buf strings.Builder

	// Note: this function runs a simple serialization. It does not try to optimize the path string.

	formatNumber := func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	for i, group := range groups {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("M " + formatNumber(group.X) + " " + formatNumber(group.Y))
		for _, drawTo := range group.DrawTo {
			switch drawTo.Command {
			case LineTo:
				buf.WriteString(" L " + formatNumber(drawTo.X) + " " + formatNumber(drawTo.Y))
			case ClosePath:
				buf.WriteString(" Z")
			}
		}
	}

	return buf.String()
}
