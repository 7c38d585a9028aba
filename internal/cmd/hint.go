package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHintCommand creates the hint command
func NewHintCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "hint <name>",
		Aliases: []string{"h"},
		Short:   "Returns a hint for the given exercise",
		Args:    cobra.ExactArgs(1),
		RunE:    runHint,
	}
}

func runHint(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	ex, err := ws.curriculum.Find(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ex.Hint)
	return nil
}
