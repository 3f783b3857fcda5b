package hexgrid

import (
	"math"

	"github.com/pkg/errors"

	"honeycomb/pkg/geometry"
)

// Fit derives a layout from an area of width x length. The first cell is
// placed so its hexagon touches the lower-left corner of the area. A single
// column is not staggered, so its rows are counted at the tip-to-tip pitch.
func Fit(width, length, cellSize float64) (Layout, error) {
	if !(width > 0) || !(length > 0) || math.IsInf(width, 0) || math.IsInf(length, 0) {
		return Layout{}, errors.Wrapf(ErrInvalidLayout, "area must be positive, got %gx%g", width, length)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return Layout{}, errors.Wrapf(ErrInvalidLayout, "cell size must be positive, got %g", cellSize)
	}
	radius := cellSize / 2
	colPitch := geometry.HexWidth(radius)
	columns := int(math.Floor(width / colPitch))
	rowPitch := 1.5 * radius
	if columns == 1 {
		rowPitch = geometry.HexHeight(radius)
	}
	return Layout{
		Columns:  columns,
		Rows:     int(math.Floor(length / rowPitch)),
		CellSize: cellSize,
		Origin:   geometry.Point{X: colPitch / 2, Y: radius},
	}, nil
}

// FitCells returns the cells of l whose hexagon lies entirely inside area.
func FitCells(l Layout, area geometry.Rectangle, tol float64) []Cell {
	var cells []Cell
	for c := range l.Cells() {
		if area.ContainsRectangle(geometry.HexBounds(c.Center, l.Radius()), tol) {
			cells = append(cells, c)
		}
	}
	return cells
}
