package executor

import (
	"github.com/harrison/algo/internal/models"
)

// promptForCompletion consults the completion gate after a successful check.
// A Done exercise advances silently. A Pending one prints the success banner,
// the program output when given, and the lines around the marker, then
// reports false so the caller pauses instead of advancing.
func (v *Verifier) promptForCompletion(ex models.Exercise, output *models.Outcome) (bool, error) {
	state, err := v.gate.State(ex)
	if err != nil {
		return false, err
	}
	if state.Done() {
		return true, nil
	}

	p := v.printer
	p.Println()
	p.Printf("🎉 🎉  %s 🎉 🎉\n", successMessage(ex.Mode))
	p.Println()

	if output != nil {
		p.Println("Output:")
		p.Separator()
		p.Output(output.Stdout)
		p.Separator()
		p.Println()
	}

	p.Println("You can keep working on this algorithm,")
	p.Printf("or jump into the next one by removing the %s comment:\n", p.Bold("`I AM NOT DONE`"))
	p.Println()
	p.ContextWindow(state.Context)

	return false, nil
}

func successMessage(mode models.Mode) string {
	switch mode {
	case models.ModeCompile:
		return "The code is compiling!"
	case models.ModeLint:
		return "The code is compiling, and lint is happy!"
	default:
		return "The code is compiling, and the tests pass!"
	}
}
