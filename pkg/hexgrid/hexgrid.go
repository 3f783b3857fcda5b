// Package hexgrid lays out pointy-top hexagon cells on an offset grid.
//
// Rows run along X with a pitch of sqrt(3)*R, and odd rows are shifted right
// by half a pitch so they nest into the row below at a vertical pitch of 1.5*R.
package hexgrid

import (
	"iter"
	"math"

	"github.com/pkg/errors"

	"honeycomb/pkg/geometry"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Cell is one hexagon position.
type Cell struct {
	Row    int
	Col    int
	Center geometry.Point
}

// Axial converts the odd-row offset coordinates to axial (q, r) coordinates.
// Only meaningful for staggered layouts.
func (c Cell) Axial() (q, r int) {
	return c.Col - (c.Row-(c.Row&1))/2, c.Row
}

type Layout struct {
	Columns  int
	Rows     int
	CellSize float64 // outer vertex-to-vertex diameter

	// Origin is the center of the cell at row 0, column 0.
	Origin geometry.Point
}

func (l Layout) Validate() error {
	if l.Columns <= 0 || l.Rows <= 0 {
		return errors.Wrapf(ErrInvalidLayout, "grid must be at least 1x1, got %dx%d", l.Columns, l.Rows)
	}
	if l.CellSize <= 0 || math.IsNaN(l.CellSize) || math.IsInf(l.CellSize, 0) {
		return errors.Wrapf(ErrInvalidLayout, "cell size must be positive, got %g", l.CellSize)
	}
	return nil
}

// Radius is the circumradius of one cell.
func (l Layout) Radius() float64 {
	return l.CellSize / 2
}

// Staggered reports whether odd rows are offset. A single row or a single
// column is laid out straight.
func (l Layout) Staggered() bool {
	return l.Columns > 1 && l.Rows > 1
}

func (l Layout) ColPitch() float64 {
	return geometry.HexWidth(l.Radius())
}

// RowPitch is the vertical distance between row centers. Without the stagger,
// rows of pointy-top cells can only meet tip to tip.
func (l Layout) RowPitch() float64 {
	if !l.Staggered() {
		return geometry.HexHeight(l.Radius())
	}
	return 1.5 * l.Radius()
}

func (l Layout) Count() int {
	return l.Columns * l.Rows
}

// Center returns the center of the cell at (row, col).
func (l Layout) Center(row, col int) geometry.Point {
	x := l.Origin.X + float64(col)*l.ColPitch()
	y := l.Origin.Y + float64(row)*l.RowPitch()
	if l.Staggered() && row%2 == 1 {
		x += l.ColPitch() / 2
	}
	return geometry.Point{X: x, Y: y}
}

// Cells yields every cell in row-major order.
func (l Layout) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := 0; row < l.Rows; row++ {
			for col := 0; col < l.Columns; col++ {
				if !yield(Cell{Row: row, Col: col, Center: l.Center(row, col)}) {
					return
				}
			}
		}
	}
}

// All collects Cells into a slice.
func (l Layout) All() []Cell {
	cells := make([]Cell, 0, max(l.Count(), 0))
	for c := range l.Cells() {
		cells = append(cells, c)
	}
	return cells
}

// Bounds returns the box around every cell's outer hexagon.
func (l Layout) Bounds() geometry.Rectangle {
	return CellBounds(l.All(), l.Radius())
}

// CellBounds returns the box around the outer hexagons of cells.
func CellBounds(cells []Cell, radius float64) geometry.Rectangle {
	b := geometry.EmptyRectangle()
	for _, c := range cells {
		b = b.Union(geometry.HexBounds(c.Center, radius))
	}
	return b
}
