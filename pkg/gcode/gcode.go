// Package gcode turns a generated panel into a cut job for a flat sheet.
package gcode

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

var ErrInvalidJob = errors.New("invalid cut job")

// Job holds the machine settings. Z is zero at the top of the stock and
// negative into it.
type Job struct {
	Home           geometry.Point
	Depth          float64
	PassDepth      float64
	SafeZ          float64
	TravelFeedRate float64
	CutFeedRate    float64
	PlungeFeedRate float64
}

// DefaultJob cuts through doc's panel thickness plus cfg.CutOvershoot.
func DefaultJob(doc *panel.Document) Job {
	depth := doc.Params.PanelThickness
	if hc := doc.Honeycomb(); hc != nil {
		depth = hc.Height()
	}
	return Job{
		Depth:          depth + cfg.CutOvershoot,
		PassDepth:      cfg.PassDepth,
		SafeZ:          cfg.SafeZ,
		TravelFeedRate: cfg.TravelFeedRate,
		CutFeedRate:    cfg.CutFeedRate,
		PlungeFeedRate: cfg.PlungeFeedRate,
	}
}

func (j Job) Validate() error {
	switch {
	case j.Depth <= 0:
		return errors.Wrapf(ErrInvalidJob, "depth must be positive, got %g", j.Depth)
	case j.PassDepth <= 0:
		return errors.Wrapf(ErrInvalidJob, "pass depth must be positive, got %g", j.PassDepth)
	case j.SafeZ <= 0:
		return errors.Wrapf(ErrInvalidJob, "safe Z must be above the stock, got %g", j.SafeZ)
	case j.TravelFeedRate <= 0 || j.CutFeedRate <= 0 || j.PlungeFeedRate <= 0:
		return errors.Wrap(ErrInvalidJob, "feed rates must be positive")
	}
	return nil
}

// Passes returns the depth of every pass, the last one at j.Depth.
func (j Job) Passes() []float64 {
	n := int(math.Ceil(j.Depth/j.PassDepth - 1e-9))
	passes := make([]float64, n)
	for i := range passes {
		passes[i] = math.Min(float64(i+1)*j.PassDepth, j.Depth)
	}
	return passes
}

// Stats summarizes a written job.
type Stats struct {
	Paths        int
	Passes       int
	CutLength    float64
	TravelLength float64
}

// Plan collects the cut paths of doc in machining order: cell cavities, then
// the honeycomb's outer outline, then the frame's inner and outer outlines.
// Each group is ordered nearest-neighbor, continuing from where the previous
// group finished.
func Plan(doc *panel.Document, home geometry.Point, tol float64) []*svgpath.SubPath {
	var plan []*svgpath.SubPath
	at := home
	add := func(group []*svgpath.SubPath) {
		if len(group) == 0 {
			return
		}
		sorted := SortPaths(group, at)
		plan = append(plan, sorted...)
		at = pointOf(sorted[len(sorted)-1].EndPoint())
	}

	if hc := doc.Honeycomb(); hc != nil {
		var cavities []*svgpath.SubPath
		for _, pr := range hc.Profiles {
			for _, hole := range pr.Holes {
				cavities = append(cavities, svgpath.FromPolygon(hole))
			}
		}
		add(cavities)

		edges, inner := hc.Walls()
		shared := geometry.SharedSegments(edges, tol)
		var outline []*svgpath.SubPath
		for i, e := range edges {
			if !inner[i] && !shared[i] {
				outline = append(outline, svgpath.FromSegment(e))
			}
		}
		if len(outline) > 0 {
			chained := JoinPaths(SortPaths(outline, at), tol)
			plan = append(plan, chained...)
			at = pointOf(chained[len(chained)-1].EndPoint())
		}
	}

	if fr := doc.Frame(); fr != nil {
		var holes, outers []*svgpath.SubPath
		for _, pr := range fr.Profiles {
			for _, hole := range pr.Holes {
				holes = append(holes, svgpath.FromPolygon(hole))
			}
			outers = append(outers, svgpath.FromPolygon(pr.Outer))
		}
		add(holes)
		add(outers)
	}
	return plan
}

// Write emits the job for paths to w. Every path is cut at each pass depth in
// turn; open paths alternate direction between passes.
func Write(w io.Writer, paths []*svgpath.SubPath, job Job, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := job.Validate(); err != nil {
		return Stats{}, err
	}
	passes := job.Passes()
	stats := Stats{Passes: len(passes)}
	out := bufio.NewWriter(w)

	// Output gcode header
	fmt.Fprintln(out, "G21 (metric)")
	fmt.Fprintln(out, "G90 (absolute mode)")
	fmt.Fprintf(out, "G92 X%.3f Y%.3f Z%.3f (you are here)\n", job.Home.X, job.Home.Y, job.SafeZ)
	fmt.Fprintln(out, "M3 (Start cutter)")
	fmt.Fprintf(out, "G0 Z%.3f F%.1f (Safe Z)\n", job.SafeZ, job.TravelFeedRate)

	lastX, lastY := job.Home.X, job.Home.Y
	travelTo := func(x, y float64) {
		stats.TravelLength += math.Hypot(x-lastX, y-lastY)
		fmt.Fprintf(out, "G0 X%.3f Y%.3f F%.1f\n", x, y, job.TravelFeedRate)
		lastX, lastY = x, y
	}

	for _, path := range paths {
		if len(path.DrawTo) == 0 {
			continue
		}
		stats.Paths++
		fmt.Fprintf(out, "\n(Path %d: %d segments)\n", stats.Paths, len(path.DrawTo))
		travelTo(path.StartPoint())

		current := path
		for i, z := range passes {
			if i > 0 && !current.Closed() {
				current = current.Reverse()
			}
			fmt.Fprintf(out, "G1 Z%.3f F%.1f (pass %d)\n", -z, job.PlungeFeedRate, i+1)
			for j, drawTo := range current.DrawTo {
				if j == 0 {
					fmt.Fprintf(out, "G1 X%.3f Y%.3f F%.1f\n", drawTo.X, drawTo.Y, job.CutFeedRate)
				} else {
					fmt.Fprintf(out, "G1 X%.3f Y%.3f\n", drawTo.X, drawTo.Y)
				}
			}
			stats.CutLength += current.Length()
			lastX, lastY = current.EndPoint()
		}
		fmt.Fprintf(out, "G0 Z%.3f (Retract)\n", job.SafeZ)
	}

	// Output gcode footer
	fmt.Fprintln(out)
	fmt.Fprintln(out, "(end of job)")
	fmt.Fprintln(out, "M5 (Stop cutter)")
	travelTo(job.Home.X, job.Home.Y)

	if err := out.Flush(); err != nil {
		return stats, errors.Wrap(err, "write gcode")
	}
	logger.Printf("Cut job: %d paths, %d passes, cut %.1f mm, travel %.1f mm", stats.Paths, stats.Passes, stats.CutLength, stats.TravelLength)
	return stats, nil
}

// Generate plans and writes the cut job for doc.
func Generate(w io.Writer, doc *panel.Document, job Job, logger *log.Logger) (Stats, error) {
	return Write(w, Plan(doc, job.Home, cfg.CoincidenceTolerance), job, logger)
}
