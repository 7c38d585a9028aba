package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/algo/internal/logger"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "Lists exercises and whether they are done",
		Long: `List prints every exercise in curriculum order with its mode and state.

An exercise is Done when its source no longer contains the "I AM NOT DONE"
comment. Nothing is compiled; state is read from the source files.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Bool("pending", false, "Only list exercises that are not done")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	pendingOnly, _ := cmd.Flags().GetBool("pending")
	p := ws.printer

	exercises := ws.curriculum.Exercises()
	bar := logger.NewProgressBar(len(exercises), 30, p.Terminal())
	bar.SetPrefix("Progress: ")

	p.Printf("%-28s %-8s %s\n", "Name", "Mode", "State")
	for _, ex := range exercises {
		status := "Pending"
		state, err := ws.gate.State(ex)
		switch {
		case err != nil:
			ws.logger.LogWarn(err.Error())
			status = "Missing"
		case state.Done():
			status = "Done"
			bar.Increment()
		}

		if pendingOnly && status == "Done" {
			continue
		}
		p.Printf("%-28s %-8s %s\n", ex.Name, ex.Mode, status)
	}

	p.Println()
	p.Println(bar.Render())
	return nil
}
