package commands

import (
	"github.com/spf13/cobra"

	"jestpath/internal/config"
	"jestpath/internal/storage"
	"jestpath/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := sc.storage.Load()
	if err != nil {
		return err
	}

	return sc.formatter.PrintReport(report)
}
