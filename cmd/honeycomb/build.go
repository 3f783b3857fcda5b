package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honeycomb/pkg/export"
	"honeycomb/pkg/panel"
)

func addExportFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.export.Dir, "out", "o", opts.export.Dir, "output directory")
	flags.Var(&opts.export.Kernel, "kernel", "mesh kernel: exact or sdf")
	flags.BoolVar(&opts.export.BinarySTL, "stl-binary", false, "write binary STL (exact kernel)")
	flags.BoolVar(&opts.export.SVG, "svg", false, "write an SVG plan")
	flags.BoolVar(&opts.export.PNG, "png", false, "write a PNG preview")
	flags.Float64Var(&opts.export.PixelsPerMM, "png-scale", opts.export.PixelsPerMM, "PNG preview pixels per mm")
	flags.BoolVar(&opts.export.CSV, "csv", false, "write cell centers as CSV")
	flags.BoolVar(&opts.export.Plot, "plot", false, "write a layout plot")
	flags.BoolVar(&opts.export.GCode, "gcode", false, "write a G-code cut job")
	flags.BoolVar(&opts.export.CutPlan, "cut-plan", false, "write an SVG drawing of the cut job")
}

func newBuildCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the honeycomb and frame and write them to files",
		Long: `Generate the honeycomb and frame and write one STL file per object
(Honeycomb.stl, Frame.stl) to the output directory, plus any extra
outputs requested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
	addExportFlags(cmd, opts)
	return cmd
}

func runBuild(cmd *cobra.Command, opts *options) error {
	p, err := resolveParams(cmd, opts)
	if err != nil {
		return err
	}
	logger := opts.logger(cmd.ErrOrStderr())

	doc, err := panel.Generate(p, logger)
	if err != nil {
		return err
	}
	paths, err := export.Export(doc, opts.export, logger)
	if err != nil {
		return err
	}

	hb := doc.Honeycomb().Bounds()
	fb := doc.Frame().Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cells, honeycomb %.2f x %.2f mm, frame %.2f x %.2f mm\n",
		doc.Name, len(doc.Cells), hb.Width(), hb.Height(), fb.Width(), fb.Height())
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
