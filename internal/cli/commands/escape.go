package commands

import (
	"github.com/spf13/cobra"

	"jestpath/internal/resolver"
	"jestpath/internal/ui"
)

// EscapeCommand handles the escape command
type EscapeCommand struct {
	formatter *ui.Formatter
}

// NewEscapeCommand creates a new EscapeCommand
func NewEscapeCommand(formatter *ui.Formatter) *EscapeCommand {
	return &EscapeCommand{formatter: formatter}
}

// Execute runs the command
func (ec *EscapeCommand) Execute(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		ec.formatter.PrintValue(resolver.EscapeRegExp(arg))
	}
	return nil
}
