package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/calendar"
	"github.com/faizmokh/hari/internal/exitcode"
	"github.com/faizmokh/hari/internal/logging"
	"github.com/faizmokh/hari/internal/render"
)

func newScanCommand(ctx context.Context, deps Deps) *cobra.Command {
	var (
		fromFlag   string
		toFlag     string
		daysFlag   string
		formatFlag string
		copyFlag   bool
		jsonFlag   bool
		prettyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print every date in a range that falls on the selected weekdays.",
		Long: "scan walks the range between --from and --to (both inclusive) and prints each date " +
			"whose weekday is selected with --days, one per line in the chosen --format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.New("scan", logging.Options{
				Level: deps.Config.LogLevel,
				File:  deps.Config.LogFile,
				Out:   cmd.ErrOrStderr(),
			})
			if err != nil {
				return exitcode.General("set up logging", err)
			}
			defer closer.Close()

			start, err := resolveDate(fromFlag)
			if err != nil {
				return exitcode.Usage("invalid --from", err)
			}
			end, err := resolveDate(toFlag)
			if err != nil {
				return exitcode.Usage("invalid --to", err)
			}
			mask, err := resolveMask(daysFlag, deps.Config)
			if err != nil {
				return exitcode.Usage("invalid --days", err)
			}

			format := deps.Config.OutputFormat()
			if cmd.Flags().Changed("format") {
				format, _ = render.ParseFormat(formatFlag)
			}
			if !format.Known() {
				logger.Warn().Str("format", string(format)).Msg("unknown format, using default rendering")
			}
			if prettyFlag && !jsonFlag && format != render.Markdown {
				return exitcode.Usage("invalid --pretty", fmt.Errorf("--pretty needs the markdown format, got %q", format))
			}

			matches, err := calendar.Calculate(calendar.Fixed(start), calendar.Fixed(end), mask)
			if err != nil {
				if calendar.IsValidation(err) {
					return exitcode.Usage("invalid range", err)
				}
				logger.Error().Err(err).Msg("scan failed")
				return exitcode.General("scan failed", err)
			}

			days := calendar.Days(start, end)
			if deps.Config.LargeRange(days) {
				logger.Warn().Int("days", days).Msg("scanning a large range")
			}
			logger.Info().
				Str("from", start.Format(calendar.DateLayout)).
				Str("to", end.Format(calendar.DateLayout)).
				Str("days", mask.String()).
				Int("matches", len(matches)).
				Msg("dates found")

			text := render.Render(matches, format)

			switch {
			case jsonFlag:
				if err := printMatchesJSON(cmd, matches); err != nil {
					return err
				}
			case prettyFlag:
				if err := render.Pretty(cmd.OutOrStdout(), text, 0); err != nil {
					return exitcode.General("render markdown", err)
				}
			case text != "":
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}

			if copyFlag {
				if deps.Clipboard == nil {
					return exitcode.General("copy to clipboard", fmt.Errorf("no clipboard configured"))
				}
				if err := deps.Clipboard.Write(text); err != nil {
					logger.Error().Err(err).Msg("clipboard write failed")
					return exitcode.General("copy to clipboard", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Dates copied!")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Start date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&toFlag, "to", "", "End date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&daysFlag, "days", "", "Weekdays to match: mon..sun, 0-6, all, weekdays, weekends (default from config)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: full, short, iso, day or markdown (default from config)")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Also copy the rendered dates to the clipboard")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit matches as JSON objects")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Render markdown output for the terminal (requires --format markdown)")

	return cmd
}
