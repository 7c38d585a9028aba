package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for algo
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algo",
		Short: "Exercise runner for learning algorithms in Rust",
		Long: `Algo is a collection of exercises to get you used to writing and reading
Rust code with a series of common algorithms.

Exercises are listed in order in the curriculum manifest (info.toml).
Each one is compiled and checked in that order; an exercise is finished
once it passes and its "I AM NOT DONE" comment has been removed.

Configuration is loaded from .algo/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  algo verify            # Check every exercise once, in order
  algo watch             # Re-check exercises as you edit them
  algo run bubble_sort   # Compile and run a single exercise
  algo hint bubble_sort  # Show the hint for an exercise
  algo list              # Show progress through the curriculum`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE:    runWelcome,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("nocapture", false, "Show outputs from the test exercises")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: .algo/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level for console and file logs (trace, debug, info, warn, error)")

	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewWatchCommand())
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewHintCommand())
	cmd.AddCommand(NewListCommand())

	return cmd
}

// runWelcome prints the welcome header and, once the workspace checks pass,
// the banner file
func runWelcome(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "       welcome to algorithm")
	fmt.Fprintln(out)

	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	path := ws.cfg.Banner
	if !filepath.IsAbs(path) {
		path = filepath.Join(ws.curriculum.Root(), path)
	}
	banner, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read banner: %w", err)
	}
	ws.printer.Output(string(banner))
	return nil
}
