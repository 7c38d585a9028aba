package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harrison/algo/internal/config"
	"github.com/harrison/algo/internal/display"
	"github.com/harrison/algo/internal/filelock"
	"github.com/harrison/algo/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Aliases: []string{"w"},
		Short:   "Reruns `verify` when files were edited",
		Long: `Watch verifies the curriculum, then keeps watching the exercise files.

Whenever an exercise file is saved, verification resumes from that exercise.
While watching, type 'hint' to see the hint for the exercise you are stuck
on, or 'clear' to clear the screen. Watch exits once every exercise is done.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	lockPath, err := config.GetWatchLockPath(ws.dir)
	if err != nil {
		return err
	}
	lock := filelock.NewFileLock(lockPath)
	if err := lock.Acquire(); err != nil {
		if errors.Is(err, filelock.ErrLocked) {
			return fmt.Errorf("another watch session is already running in %s", ws.dir)
		}
		return err
	}
	defer lock.Unlock()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watchCfg := ws.cfg.Watch
	dir := ws.watchDir()
	open := func() (watch.EventSource, error) {
		return watch.NewFileWatcher(dir, watchCfg.Extensions, watchCfg.Debounce)
	}

	orchestrator := watch.NewOrchestrator(ws.curriculum, ws.verifier(), open, ws.printer, ws.logger, watch.Options{
		Verbose:    ws.nocapture,
		Extensions: watchCfg.Extensions,
		Input:      cmd.InOrStdin(),
	})

	ws.logger.LogInfo(fmt.Sprintf("Watching %s", dir))
	err = orchestrator.Run(ctx)
	switch {
	case err == nil:
		printCompletion(ws.printer)
		return nil
	case errors.Is(err, context.Canceled):
		ws.logger.LogInfo("Watch session interrupted")
		return nil
	}

	var werr *watch.WatcherError
	if errors.As(err, &werr) {
		display.WarnWatcherFailure(werr.Err).Display(cmd.ErrOrStderr())
	}
	return err
}

func printCompletion(p *display.Printer) {
	p.Println("🎉 All exercises completed! 🎉")
	p.Println()
	p.Println("Hope you enjoyed and found the content of this repository useful for you!")
	p.Println("If you noticed any issues, please don't hesitate to report them to repo.")
	p.Println("You can also contribute your own exercises to help the greater community!")
}
