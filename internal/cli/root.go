package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/hari/internal/clipboard"
	"github.com/faizmokh/hari/internal/config"
	"github.com/faizmokh/hari/internal/exitcode"
	"github.com/faizmokh/hari/internal/logging"
	"github.com/faizmokh/hari/internal/ui"
	"github.com/faizmokh/hari/internal/version"
)

// Deps bundles the collaborators shared by every command.
type Deps struct {
	Config    config.Config
	Clipboard clipboard.Writer
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, deps Deps) *cobra.Command {
	var (
		fromFlag string
		toFlag   string
		daysFlag string
	)

	cmd := &cobra.Command{
		Use:     "hari",
		Short:   "Find every date in a range that falls on the weekdays you pick.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ui.Options{
				Config:    deps.Config,
				Clipboard: deps.Clipboard,
			}

			var err error
			if fromFlag != "" {
				if opts.Start, err = resolveDate(fromFlag); err != nil {
					return exitcode.Usage("invalid --from", err)
				}
			}
			if toFlag != "" {
				if opts.End, err = resolveDate(toFlag); err != nil {
					return exitcode.Usage("invalid --to", err)
				}
			}
			if opts.Mask, err = resolveMask(daysFlag, deps.Config); err != nil {
				return exitcode.Usage("invalid --days", err)
			}

			logger, closer, err := logging.New("ui", logging.Options{
				Level: deps.Config.LogLevel,
				File:  deps.Config.LogFile,
			})
			if err != nil {
				return exitcode.General("set up logging", err)
			}
			defer closer.Close()
			opts.Logger = logger

			m := ui.NewModel(ctx, opts)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return exitcode.General("run TUI", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Prefill the start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Prefill the end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&daysFlag, "days", "", "Prefill weekdays, e.g. mon,wed or weekdays (default from config)")

	cmd.AddCommand(
		newScanCommand(ctx, deps),
		newFormatsCommand(),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return exitcode.General("load config", err)
	}
	cmd := NewRootCommand(ctx, Deps{
		Config:    *cfg,
		Clipboard: clipboard.System(),
	})
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/hari/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitcode.ExitCode(err))
	}
}
