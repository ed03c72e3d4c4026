package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hxo-dev/hxo/internal/config"
	"github.com/hxo-dev/hxo/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by all commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	noColor bool
}

func main() {
	a := &app{}
	if err := rootCmd(a).Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hxo",
		Short: "Render, diff and benchmark hxo view trees",
		Long: `hxo is the command-line companion of the hxo reactive UI runtime.

It renders JSON tree files to HTML, shows the host mutations the
patcher applies between two trees, and benchmarks signal propagation.

Settings come from the nearest hxo.json, a .env file next to it and
HXO_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored error output")

	cmd.AddCommand(
		renderCmd(a),
		patchCmd(a),
		benchCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) init() error {
	if a.noColor {
		errors.SetColor(false)
	}
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger(os.Stderr)
	slog.SetDefault(a.logger)
	if cfg.Path() != "" {
		a.logger.Debug("loaded config", "path", cfg.Path())
	}
	return nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
