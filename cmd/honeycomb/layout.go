package main

import (
	"github.com/spf13/cobra"

	"honeycomb/pkg/export"
	"honeycomb/pkg/panel"
)

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the cell grid as CSV without building any solid",
		Long: `Print one CSV line per cell: row, column, axial q and r, and the
center X and Y in mm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd, opts)
			if err != nil {
				return err
			}
			layout, cells, err := panel.LayoutCells(p)
			if err != nil {
				return err
			}
			if logger := opts.logger(cmd.ErrOrStderr()); logger != nil {
				logger.Printf("Layout: %d rows, %d columns, %d cells", layout.Rows, layout.Columns, len(cells))
			}
			return export.WriteCellsCSV(cmd.OutOrStdout(), cells)
		},
	}
}
