package export

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"honeycomb/pkg/hexgrid"
)

// CellRecord is one CSV row: grid position, axial coordinates and center in mm.
type CellRecord struct {
	Row int     `csv:"row"`
	Col int     `csv:"col"`
	Q   int     `csv:"q"`
	R   int     `csv:"r"`
	X   float64 `csv:"x"`
	Y   float64 `csv:"y"`
}

func CellRecords(cells []hexgrid.Cell) []*CellRecord {
	records := make([]*CellRecord, 0, len(cells))
	for _, c := range cells {
		q, r := c.Axial()
		records = append(records, &CellRecord{Row: c.Row, Col: c.Col, Q: q, R: r, X: c.Center.X, Y: c.Center.Y})
	}
	return records
}

// WriteCellsCSV writes a header line and one line per cell.
func WriteCellsCSV(w io.Writer, cells []hexgrid.Cell) error {
	if err := gocsv.Marshal(CellRecords(cells), w); err != nil {
		return errors.Wrap(err, "write cells csv")
	}
	return nil
}
