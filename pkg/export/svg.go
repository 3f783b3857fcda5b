package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"honeycomb/pkg/color"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

// Margin is the blank border, in mm, around drawings.
var Margin = 2.0

// page maps document coordinates (mm, y up) onto a page with its origin at the
// top left, y down, and Margin on every side. It returns the page size in mm.
func page(doc *panel.Document) (svgpath.Matrix, float64, float64) {
	b := doc.Bounds()
	m := svgpath.Translate(Margin-b.Min.X, Margin-b.Min.Y).Multiply(svgpath.FlipY(b.Min.Y, b.Max.Y))
	return m, b.Width() + 2*Margin, b.Height() + 2*Margin
}

// solidPaths returns every ring of s as a closed sub-path, transformed by m.
func solidPaths(s *panel.Solid, m svgpath.Matrix) []*svgpath.SubPath {
	var paths []*svgpath.SubPath
	for _, pr := range s.Profiles {
		for _, ring := range append([]geometry.Polygon{pr.Outer}, pr.Holes...) {
			if p := svgpath.FromPolygon(ring); p != nil {
				paths = append(paths, p)
			}
		}
	}
	m.TransformPath(paths)
	return paths
}

func objectColor(name string) color.Color {
	if name == panel.FrameName {
		return color.Frame
	}
	return color.Honeycomb
}

// WriteSVG draws the top view of doc in mm. Each object is a group holding
// one even-odd filled path, so cavities show as holes.
func WriteSVG(w io.Writer, doc *panel.Document) error {
	m, width, height := page(doc)
	pw, ph := int(math.Ceil(width)), int(math.Ceil(height))

	out := bufio.NewWriter(w)
	canvas := svg.New(out)
	canvas.StartviewUnit(pw, ph, "mm", 0, 0, pw, ph)
	canvas.Title(doc.Name)
	canvas.Rect(0, 0, pw, ph, "fill:"+color.Background.Hex())
	for _, o := range doc.Objects {
		canvas.Gid(o.Name)
		canvas.Path(svgpath.ToString(solidPaths(o, m)),
			fmt.Sprintf("fill:%s;fill-rule:evenodd;stroke:%s;stroke-width:0.1", objectColor(o.Name).Hex(), color.Outline.Hex()))
		canvas.Gend()
	}
	canvas.End()
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "write svg")
	}
	return nil
}
