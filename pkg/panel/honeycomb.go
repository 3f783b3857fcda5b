package panel

import (
	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/hexgrid"
)

const (
	DocumentName  = "HoneycombWithFrame"
	HoneycombName = "Honeycomb"
	FrameName     = "Frame"
)

var ErrNoCells = errors.New("no hexagon cells were generated")

// CellProfile is one hollow cell: the outer hexagon minus a hexagon inset by wall.
func CellProfile(center geometry.Point, radius, wall float64) Profile {
	return Profile{
		Outer: geometry.Hexagon(center, radius),
		Holes: []geometry.Polygon{geometry.Hexagon(center, radius-wall)},
	}
}

// BuildHoneycomb assembles one hollow cell per position into a single solid
// from z=0 to the panel thickness. Cells must be distinct.
func BuildHoneycomb(p cfg.Params, cells []hexgrid.Cell) (*Solid, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	if !cfg.Positive(p.CellSize) || !cfg.Positive(p.WallThickness) || p.WallThickness >= p.CellSize/2 || !cfg.Positive(p.PanelThickness) {
		return nil, errors.Wrapf(cfg.ErrInvalidParams, "cannot build cells of size %g with wall %g and thickness %g",
			p.CellSize, p.WallThickness, p.PanelThickness)
	}
	if err := hexgrid.CheckDistinct(cells, cfg.CoincidenceTolerance); err != nil {
		return nil, errors.Wrap(err, "honeycomb")
	}

	radius := p.CellSize / 2
	s := &Solid{
		Name:     HoneycombName,
		Profiles: make([]Profile, 0, len(cells)),
		ZMin:     0,
		ZMax:     p.PanelThickness,
	}
	for _, c := range cells {
		s.Profiles = append(s.Profiles, CellProfile(c.Center, radius, p.WallThickness))
	}
	return s, nil
}
