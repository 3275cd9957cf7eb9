package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/sddkit/sddkit/pkg/types"
)

// InteractivePrompter asks overwrite questions on the terminal. Only
// use it when stdin is a TTY; the apply engine's nil-prompter default
// covers everything else.
type InteractivePrompter struct{}

// ConfirmOverwrite asks whether an existing file should be replaced.
// Declining is the default answer.
func (InteractivePrompter) ConfirmOverwrite(op types.FileOperation) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(fmt.Sprintf("%s exists, overwrite?", op.RelPath))
}

// AssumeYesPrompter answers every overwrite question with yes. It backs
// the --yes flag for scripted runs.
type AssumeYesPrompter struct{}

// ConfirmOverwrite always accepts.
func (AssumeYesPrompter) ConfirmOverwrite(types.FileOperation) (bool, error) {
	return true, nil
}
