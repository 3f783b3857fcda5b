package export

import (
	"image"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"

	"honeycomb/pkg/color"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

// RenderPreview rasterizes the top view of doc at pixelsPerMM.
func RenderPreview(doc *panel.Document, pixelsPerMM float64) (*image.RGBA, error) {
	if pixelsPerMM <= 0 {
		return nil, errors.Errorf("pixels per mm must be positive, got %g", pixelsPerMM)
	}
	m, width, height := page(doc)
	m = svgpath.Scale(pixelsPerMM, pixelsPerMM).Multiply(m)
	pw := int(math.Ceil(width * pixelsPerMM))
	ph := int(math.Ceil(height * pixelsPerMM))

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	gc := draw2dimg.NewGraphicContext(img)

	gc.SetFillColor(color.Background.RGBA())
	draw2dkit.Rectangle(gc, 0, 0, float64(pw), float64(ph))
	gc.Fill()

	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	for _, o := range doc.Objects {
		gc.SetFillColor(objectColor(o.Name).RGBA())
		gc.BeginPath()
		for _, path := range solidPaths(o, m) {
			gc.MoveTo(path.X, path.Y)
			for _, drawTo := range path.DrawTo {
				switch drawTo.Command {
				case svgpath.LineTo:
					gc.LineTo(drawTo.X, drawTo.Y)
				case svgpath.ClosePath:
					gc.Close()
				}
			}
		}
		gc.Fill()
	}
	return img, nil
}

// WritePNG saves a preview of doc to path.
func WritePNG(path string, doc *panel.Document, pixelsPerMM float64) error {
	img, err := RenderPreview(doc, pixelsPerMM)
	if err != nil {
		return err
	}
	if err := draw2dimg.SaveToPngFile(path, img); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return nil
}
