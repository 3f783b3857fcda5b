package hexgrid

import (
	"github.com/pkg/errors"

	"honeycomb/pkg/geometry"
)

var ErrDuplicateCell = errors.New("duplicate cell")

// CheckDistinct fails when two cells have centers within tol of each other.
func CheckDistinct(cells []Cell, tol float64) error {
	if len(cells) == 0 {
		return nil
	}
	bounds := geometry.EmptyRectangle()
	for _, c := range cells {
		bounds = bounds.Extend(c.Center)
	}
	ix := geometry.NewPointIndex(bounds)
	for i, c := range cells {
		if hits := ix.Within(c.Center, tol); len(hits) > 0 {
			other := cells[hits[0].Data.(int)]
			return errors.Wrapf(ErrDuplicateCell, "cell (%d,%d) coincides with cell (%d,%d) at %v",
				c.Row, c.Col, other.Row, other.Col, c.Center)
		}
		ix.Insert(c.Center, i)
	}
	return nil
}
