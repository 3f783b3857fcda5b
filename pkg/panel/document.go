package panel

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/hexgrid"
)

// Document holds the generated objects, in the order they were added.
type Document struct {
	Name    string
	Params  cfg.Params
	Layout  hexgrid.Layout
	Cells   []hexgrid.Cell
	Objects []*Solid
}

func (d *Document) Object(name string) *Solid {
	for _, o := range d.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func (d *Document) Honeycomb() *Solid {
	return d.Object(HoneycombName)
}

func (d *Document) Frame() *Solid {
	return d.Object(FrameName)
}

// Bounds covers every object in the document.
func (d *Document) Bounds() geometry.Rectangle {
	b := geometry.EmptyRectangle()
	for _, o := range d.Objects {
		b = b.Union(o.Bounds())
	}
	return b
}

// LayoutCells returns the grid for p and the cells to build: every cell of
// the explicit grid, or the cells that fit inside the area in fit mode.
func LayoutCells(p cfg.Params) (hexgrid.Layout, []hexgrid.Cell, error) {
	if p.FitArea() {
		layout, err := hexgrid.Fit(p.Width, p.Length, p.CellSize)
		if err != nil {
			return hexgrid.Layout{}, nil, errors.Wrap(err, "fit layout")
		}
		layout.Origin = layout.Origin.Add(geometry.Point{X: p.OffsetX, Y: p.OffsetY})
		area := geometry.Rectangle{
			Min: geometry.Point{X: p.OffsetX, Y: p.OffsetY},
			Max: geometry.Point{X: p.OffsetX + p.Width, Y: p.OffsetY + p.Length},
		}
		return layout, hexgrid.FitCells(layout, area, cfg.CoincidenceTolerance), nil
	}
	layout := hexgrid.Layout{
		Columns:  p.Columns,
		Rows:     p.Rows,
		CellSize: p.CellSize,
		Origin:   geometry.Point{X: p.OffsetX, Y: p.OffsetY},
	}
	if err := layout.Validate(); err != nil {
		return hexgrid.Layout{}, nil, err
	}
	return layout, layout.All(), nil
}

// Generate validates p, lays out the grid, builds the honeycomb and then the
// frame around its bounds. Nothing is built when p is invalid. A nil logger discards output.
func Generate(p cfg.Params, logger *log.Logger) (*Document, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	layout, cells, err := LayoutCells(p)
	if err != nil {
		return nil, err
	}
	logger.Printf("Generating honeycomb: %d rows, %d columns", layout.Rows, layout.Columns)

	honeycomb, err := BuildHoneycomb(p, cells)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate the honeycomb structure")
	}
	logger.Printf("Honeycomb generated with %d cells", len(cells))

	bounds := honeycomb.Bounds()
	logger.Printf("Honeycomb bounds: X=(%.2f, %.2f), Y=(%.2f, %.2f)", bounds.Min.X, bounds.Max.X, bounds.Min.Y, bounds.Max.Y)

	frame, err := BuildFrame(bounds, p.FrameWall(), honeycomb.ZMin, honeycomb.ZMax)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate the frame")
	}
	outer := frame.Bounds()
	logger.Printf("Frame bounds: X=(%.2f, %.2f), Y=(%.2f, %.2f)", outer.Min.X, outer.Max.X, outer.Min.Y, outer.Max.Y)

	return &Document{
		Name:    DocumentName,
		Params:  p,
		Layout:  layout,
		Cells:   cells,
		Objects: []*Solid{honeycomb, frame},
	}, nil
}

// GenerateFit fills a width x length area with as many whole cells as fit,
// then builds the honeycomb and frame as Generate does.
func GenerateFit(p cfg.Params, width, length float64, logger *log.Logger) (*Document, error) {
	p.Width, p.Length = width, length
	if !p.FitArea() {
		return nil, errors.Wrapf(cfg.ErrInvalidParams, "fit area %gx%g must be positive", width, length)
	}
	return Generate(p, logger)
}
