// Package export writes a generated panel document to files: STL meshes,
// an SVG plan, a PNG preview, a cell CSV, a layout plot, a cut job and a
// drawing of that job.
package export

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/gcode"
	"honeycomb/pkg/panel"
)

// Options selects the outputs. STL files are always written.
type Options struct {
	Dir         string
	Kernel      Kernel
	BinarySTL   bool
	SVG         bool
	PNG         bool
	CSV         bool
	Plot        bool
	GCode       bool
	CutPlan     bool
	PixelsPerMM float64
}

func DefaultOptions() Options {
	return Options{
		Dir:         ".",
		Kernel:      KernelExact,
		PixelsPerMM: cfg.PreviewPixelsPerMM,
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return f.Close()
}

// Export writes every output selected in opts and returns the paths written.
func Export(doc *panel.Document, opts Options, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "error creating %s", opts.Dir)
	}

	written, err := WriteSTL(opts.Dir, doc, opts.Kernel, opts.BinarySTL, logger)
	if err != nil {
		return written, err
	}
	base := filepath.Join(opts.Dir, doc.Name)

	if opts.SVG {
		path := base + ".svg"
		if err := writeFile(path, func(w io.Writer) error { return WriteSVG(w, doc) }); err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	if opts.PNG {
		path := base + ".png"
		if err := WritePNG(path, doc, opts.PixelsPerMM); err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	if opts.CSV {
		path := base + "_cells.csv"
		if err := writeFile(path, func(w io.Writer) error { return WriteCellsCSV(w, doc.Cells) }); err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	if opts.Plot {
		path := base + "_layout.png"
		if err := WritePlot(path, doc); err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	if opts.GCode {
		path := base + ".gcode"
		err := writeFile(path, func(w io.Writer) error {
			_, err := gcode.Generate(w, doc, gcode.DefaultJob(doc), logger)
			return err
		})
		if err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	if opts.CutPlan {
		path := base + "_cutplan.svg"
		home := gcode.DefaultJob(doc).Home
		if err := writeFile(path, func(w io.Writer) error { return WriteCutPlanSVG(w, doc, home) }); err != nil {
			return written, err
		}
		logger.Printf("Wrote %s", path)
		written = append(written, path)
	}
	return written, nil
}
