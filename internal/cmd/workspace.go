package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/algo/internal/completion"
	"github.com/harrison/algo/internal/config"
	"github.com/harrison/algo/internal/curriculum"
	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/executor"
	"github.com/harrison/algo/internal/logger"
	"github.com/harrison/algo/internal/toolchain"
)

// workspace is everything a subcommand needs once the curriculum directory
// has been checked: config, curriculum, toolchain, printer and loggers.
type workspace struct {
	dir        string
	cfg        *config.Config
	curriculum *curriculum.Curriculum
	toolchain  *toolchain.Rustc
	gate       *completion.Gate
	printer    *display.Printer
	logger     logger.Logger
	fileLog    *logger.FileLogger
	nocapture  bool
}

// openWorkspace loads configuration and the curriculum from the working
// directory and checks that the toolchain can be run. Failures are explained
// on stderr before being returned.
func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return nil, err
	}

	c, err := curriculum.Load(dir, cfg.Manifest)
	if err != nil {
		if errors.Is(err, curriculum.ErrManifestMissing) {
			probed := curriculum.DefaultManifests
			if cfg.Manifest != "" {
				probed = []string{cfg.Manifest}
			}
			display.WarnManifestMissing(executableName(), probed).Display(cmd.ErrOrStderr())
		}
		return nil, err
	}

	printer := display.NewPrinter(cmd.OutOrStdout())
	nocapture, _ := cmd.Flags().GetBool("nocapture")

	rustc := toolchain.NewRustc(toolchain.Options{
		Binary:     cfg.Toolchain.Binary,
		Root:       c.Root(),
		LintArgs:   cfg.Toolchain.LintArgs,
		Color:      printer.Terminal(),
		ShowOutput: nocapture,
	}, nil)
	if err := rustc.CheckInstalled(cmd.Context()); err != nil {
		display.WarnToolchainMissing(cfg.Toolchain.Binary).Display(cmd.ErrOrStderr())
		return nil, err
	}

	logDir, err := cfg.ResolveLogDir(dir)
	if err != nil {
		return nil, err
	}
	fileLog, err := logger.NewFileLoggerWithDirAndLevel(logDir, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.ConsoleLogLevel)

	ws := &workspace{
		dir:        dir,
		cfg:        cfg,
		curriculum: c,
		toolchain:  rustc,
		gate:       completion.NewGate(c.Root()),
		printer:    printer,
		logger:     logger.NewMultiLogger(consoleLog, fileLog),
		fileLog:    fileLog,
		nocapture:  nocapture,
	}
	ws.logger.LogDebug(fmt.Sprintf("Loaded %d exercises from %s", c.Len(), c.ManifestPath()))
	return ws, nil
}

// loadConfig reads --config or .algo/config.yaml and applies flag overrides
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.MergeWithFlags(&level)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// verifier builds the verification engine bound to this workspace
func (w *workspace) verifier() *executor.Verifier {
	return executor.NewVerifier(w.toolchain, w.gate, w.printer, w.logger)
}

// watchDir returns the absolute directory watched for changes
func (w *workspace) watchDir() string {
	if filepath.IsAbs(w.cfg.Watch.Dir) {
		return w.cfg.Watch.Dir
	}
	return filepath.Join(w.curriculum.Root(), w.cfg.Watch.Dir)
}

// Close releases the file logger
func (w *workspace) Close() {
	if w.fileLog != nil {
		w.fileLog.Close()
	}
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return "algo"
	}
	return exe
}
