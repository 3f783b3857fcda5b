package export

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"honeycomb/pkg/color"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
)

func ringXYs(poly geometry.Polygon) plotter.XYs {
	pts := make(plotter.XYs, 0, len(poly)+1)
	for _, p := range poly {
		pts = append(pts, plotter.XY{X: p.X, Y: p.Y})
	}
	if len(poly) > 0 {
		pts = append(pts, plotter.XY{X: poly[0].X, Y: poly[0].Y})
	}
	return pts
}

// LayoutPlot charts the cell centers of doc, each cell's outer hexagon and
// the honeycomb and frame envelopes.
func LayoutPlot(doc *panel.Document) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - %d cells", doc.Name, len(doc.Cells))
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	if hc := doc.Honeycomb(); hc != nil {
		for _, pr := range hc.Profiles {
			line, err := plotter.NewLine(ringXYs(pr.Outer))
			if err != nil {
				return nil, err
			}
			line.Color = color.Honeycomb.RGBA()
			line.Width = vg.Points(0.5)
			p.Add(line)
		}

		envelope, err := plotter.NewLine(ringXYs(hc.Bounds().Polygon()))
		if err != nil {
			return nil, err
		}
		envelope.Color = color.Cut.RGBA()
		envelope.Width = vg.Points(1)
		envelope.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(envelope)
		p.Legend.Add("Honeycomb bounds", envelope)
	}

	if fr := doc.Frame(); fr != nil {
		outer, err := plotter.NewLine(ringXYs(fr.Bounds().Polygon()))
		if err != nil {
			return nil, err
		}
		outer.Color = color.Frame.RGBA()
		outer.Width = vg.Points(1)
		p.Add(outer)
		p.Legend.Add("Frame", outer)
	}

	centers := make(plotter.XYs, 0, len(doc.Cells))
	for _, c := range doc.Cells {
		centers = append(centers, plotter.XY{X: c.Center.X, Y: c.Center.Y})
	}
	if len(centers) > 0 {
		scatter, err := plotter.NewScatter(centers)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		p.Legend.Add("Cell centers", scatter)
	}
	return p, nil
}

// WritePlot saves the layout plot to path. The format follows the file
// extension (png, svg, pdf, ...).
func WritePlot(path string, doc *panel.Document) error {
	p, err := LayoutPlot(doc)
	if err != nil {
		return errors.Wrap(err, "layout plot")
	}
	b := doc.Bounds()
	width := 6 * vg.Inch
	height := width
	if b.Width() > 0 {
		height = vg.Length(float64(width) * b.Height() / b.Width())
	}
	if err := p.Save(width, height+vg.Inch, path); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return nil
}
