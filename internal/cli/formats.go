package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/calendar"
	"github.com/faizmokh/hari/internal/render"
	"github.com/faizmokh/hari/internal/version"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats with a sample line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sampleDate := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.Local)
			sample := calendar.Match{Date: sampleDate, Label: calendar.Label(sampleDate.Weekday())}

			out := cmd.OutOrStdout()
			for _, opt := range render.Formats() {
				fmt.Fprintf(out, "%-9s %-32s %s\n", opt.Format, opt.Label, render.Line(sample, opt.Format))
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Banner())
		},
	}
}
