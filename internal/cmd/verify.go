package cmd

import (
	"github.com/spf13/cobra"
)

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "verify",
		Aliases: []string{"v"},
		Short:   "Verifies all exercises according to the recommended order",
		Long: `Verify compiles and checks every exercise in curriculum order.

Verification stops at the first exercise that fails, or that passes but
still contains its "I AM NOT DONE" comment. Later exercises are not checked.`,
		Args: cobra.NoArgs,
		RunE: runVerify,
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	return ws.verifier().Verify(cmd.Context(), ws.curriculum.Exercises(), ws.nocapture)
}
