// Package main provides the entry point for the pwademo developer CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/envfile"
	"github.com/gorewood/pwademo/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2026-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color persistent flag against the output writer.
func useColor(cmd *cobra.Command) bool {
	mode := "auto"
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newLogger returns a debug logger on stderr with --debug, or a discarding one.
func newLogger(cmd *cobra.Command) *slog.Logger {
	flag := cmd.Root().PersistentFlags().Lookup("debug")
	if flag == nil || flag.Value.String() != "true" {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the pwademo CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwademo",
		Short: "Hash-fragment router demo, outside the browser",
		Long: `pwademo - a WASM page driven by CLI-like arguments in the URL hash.

The browser build reads #<arg1>/<arg2> from the location and renders one of
four pages. This CLI runs the same router against an in-memory document:
  - route    render the page for a fragment in the terminal
  - pages    inspect the page templates and their overrides
  - serve    expose the router as an MCP tool over stdio
  - preview  serve the web folder to try the WASM build locally

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'pwademo --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files only fill variables the environment has not already set.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles(newLogger(cmd))
		flag := cmd.Root().PersistentFlags().Lookup("color")
		if flag == nil {
			return nil
		}
		return output.ValidateColorMode(flag.Value.String())
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always or never")
	cmd.PersistentFlags().Bool("debug", false, "Log router events to stderr")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles(logger *slog.Logger) {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	if err := envfile.LoadAll(paths...); err != nil {
		logger.Debug("loading env files", "error", err)
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "render", Title: "Render Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "dev", Title: "Development Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newRouteCmd(), "render")
	addGroupedCommand(cmd, newPagesCmd(), "render")

	addGroupedCommand(cmd, newConfigCmd(), "dev")
	addGroupedCommand(cmd, newServeCmd(), "dev")
	addGroupedCommand(cmd, newPreviewCmd(), "dev")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// loadConfig resolves the configuration, reporting failures through printer.
func loadConfig(printer *output.Printer) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		exitErr := output.NewUserError(err.Error())
		printer.Error(exitErr)
		return config.Config{}, exitErr
	}
	return cfg, nil
}
