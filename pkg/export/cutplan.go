package export

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/color"
	"honeycomb/pkg/gcode"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

// travelPaths returns the pen-up moves between consecutive cut paths,
// starting and finishing at home. Moves shorter than 0.1 mm are skipped.
func travelPaths(plan []*svgpath.SubPath, home geometry.Point) ([]*svgpath.SubPath, float64) {
	var travel []*svgpath.SubPath
	totalTravel := 0.0
	lastX, lastY := home.X, home.Y
	travelTo := func(x, y float64) {
		if math.Abs(x-lastX)+math.Abs(y-lastY) <= 0.1 {
			return
		}
		totalTravel += math.Hypot(x-lastX, y-lastY)
		travel = append(travel, &svgpath.SubPath{
			X: lastX,
			Y: lastY,
			DrawTo: []*svgpath.DrawTo{
				{Command: svgpath.LineTo, X: x, Y: y},
			},
		})
	}
	for _, path := range plan {
		travelTo(path.StartPoint())
		lastX, lastY = path.EndPoint()
	}
	travelTo(home.X, home.Y)
	return travel, totalTravel
}

// WriteCutPlanSVG draws the cut job for doc: every cut path in machining
// order, plus dashed lines for the travel moves between them.
func WriteCutPlanSVG(w io.Writer, doc *panel.Document, home geometry.Point) error {
	plan := gcode.Plan(doc, home, cfg.CoincidenceTolerance)
	travel, totalTravel := travelPaths(plan, home)

	m, width, height := page(doc)
	m.TransformPath(plan)
	m.TransformPath(travel)
	pw, ph := int(math.Ceil(width)), int(math.Ceil(height))

	out := bufio.NewWriter(w)
	canvas := svg.New(out)
	canvas.StartviewUnit(pw, ph, "mm", 0, 0, pw, ph)
	canvas.Title(fmt.Sprintf("%s cut plan", doc.Name))
	canvas.Desc(fmt.Sprintf("%d cut paths, %.1f mm travel", len(plan), totalTravel))

	canvas.Gid("cuts")
	for _, path := range plan {
		canvas.Path(svgpath.ToString([]*svgpath.SubPath{path}),
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:0.2", color.Cut.Hex()))
	}
	canvas.Gend()

	canvas.Path(svgpath.ToString(travel),
		`id="travel_indicators"`,
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:0.2;stroke-dasharray:0.5,0.5", color.Travel.Hex()))
	canvas.End()
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "write cut plan svg")
	}
	return nil
}
