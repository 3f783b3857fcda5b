package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"honeycomb/pkg/cfg"
)

// parseFit reads an area given as WIDTHxLENGTH, e.g. "70x60".
func parseFit(s string) (width, length float64, err error) {
	w, l, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, errors.Wrapf(cfg.ErrInvalidParams, "fit area %q must be WIDTHxLENGTH", s)
	}
	width, err = strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(cfg.ErrInvalidParams, "fit width %q", w)
	}
	length, err = strconv.ParseFloat(strings.TrimSpace(l), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(cfg.ErrInvalidParams, "fit length %q", l)
	}
	return width, length, nil
}

// resolveParams layers the config file and then any flag set on the command
// line over the defaults. Naming --columns or --rows without --fit selects the
// explicit grid instead of the default fit area.
func resolveParams(cmd *cobra.Command, opts *options) (cfg.Params, error) {
	p := cfg.Defaults()
	if opts.configPath != "" {
		var err error
		p, err = cfg.Load(opts.configPath)
		if err != nil {
			return cfg.Params{}, err
		}
	}

	flags := cmd.Flags()
	if (flags.Changed("columns") || flags.Changed("rows")) && !flags.Changed("fit") {
		p.UseGrid()
	}
	if flags.Changed("columns") {
		p.Columns = opts.columns
	}
	if flags.Changed("rows") {
		p.Rows = opts.rows
	}
	if flags.Changed("cell-size") {
		p.CellSize = opts.cellSize
	}
	if flags.Changed("wall") {
		p.WallThickness = opts.wall
	}
	if flags.Changed("frame") {
		p.FrameThickness = opts.frame
	}
	if flags.Changed("thickness") {
		p.PanelThickness = opts.thickness
	}
	if flags.Changed("offset-x") {
		p.OffsetX = opts.offsetX
	}
	if flags.Changed("offset-y") {
		p.OffsetY = opts.offsetY
	}
	if flags.Changed("fit") {
		width, length, err := parseFit(opts.fit)
		if err != nil {
			return cfg.Params{}, err
		}
		p.Width, p.Length = width, length
	}
	return p, p.Validate()
}
