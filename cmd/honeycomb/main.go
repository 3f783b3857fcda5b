// Command honeycomb generates a hollow-cell honeycomb panel and a frame that
// fits exactly around it, and exports both as STL and other formats.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"honeycomb/pkg/export"
)

type options struct {
	configPath string
	columns    int
	rows       int
	cellSize   float64
	wall       float64
	frame      float64
	thickness  float64
	offsetX    float64
	offsetY    float64
	fit        string
	verbose    bool

	export export.Options
}

func (o *options) logger(stderr io.Writer) *log.Logger {
	if !o.verbose {
		return nil
	}
	return log.New(stderr, "honeycomb: ", 0)
}

func newRootCmd() *cobra.Command {
	opts := &options{export: export.DefaultOptions()}

	rootCmd := &cobra.Command{
		Use:   "honeycomb",
		Short: "Honeycomb panel and exact-fit frame generator",
		Long: `Generate a parametric honeycomb panel of hollow hexagonal cells and a
rectangular frame whose inner boundary matches the honeycomb's bounds.

Parameters come from the built-in defaults, then an optional --config file
(JSON or YAML), then flags. By default the grid is sized to the largest
number of whole cells that fit in a 70 x 60 mm area; --fit WxL picks another
area, and --columns/--rows switch to an explicit grid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "parameters file (.json, .yaml or .yml)")
	flags.IntVar(&opts.columns, "columns", 0, "number of cell columns")
	flags.IntVar(&opts.rows, "rows", 0, "number of cell rows")
	flags.Float64Var(&opts.cellSize, "cell-size", 0, "cell diameter in mm, vertex to vertex")
	flags.Float64Var(&opts.wall, "wall", 0, "cell wall thickness in mm")
	flags.Float64Var(&opts.frame, "frame", 0, "frame wall thickness in mm (0 uses --wall)")
	flags.Float64Var(&opts.thickness, "thickness", 0, "panel thickness (extrusion height) in mm")
	flags.Float64Var(&opts.offsetX, "offset-x", 0, "grid origin X in mm")
	flags.Float64Var(&opts.offsetY, "offset-y", 0, "grid origin Y in mm")
	flags.StringVar(&opts.fit, "fit", "", "fit the grid to an area, given as WIDTHxLENGTH in mm")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each generation stage")

	rootCmd.AddCommand(newBuildCmd(opts), newLayoutCmd(opts))
	addExportFlags(rootCmd, opts)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
