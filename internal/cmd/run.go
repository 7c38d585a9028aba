package cmd

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "run <name>",
		Aliases: []string{"r"},
		Short:   "Runs/Tests a single exercise",
		Long: `Run compiles a single exercise by name and runs it once.

Test exercises run their test harness. Other exercises are run as programs
and their output is printed. The "I AM NOT DONE" comment is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: runExercise,
	}
}

func runExercise(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	ex, err := ws.curriculum.Find(args[0])
	if err != nil {
		return err
	}
	return ws.verifier().Run(cmd.Context(), ex, ws.nocapture)
}
