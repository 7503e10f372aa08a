package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jestpath/internal/config"
	"jestpath/internal/domain"
	"jestpath/internal/storage"
	"jestpath/internal/ui"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	config    *config.Config
	resolver  *resolverHolder
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(
	cfg *config.Config,
	resolver *resolverHolder,
	st storage.Storage,
	formatter *ui.Formatter,
) *ResolveCommand {
	return &ResolveCommand{
		config:    cfg,
		resolver:  resolver,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResolveCommand) Execute(cmd *cobra.Command, args []string) error {
	r, err := rc.resolver.get()
	if err != nil {
		return err
	}

	res := r.Resolve(rc.config.Settings)

	if rc.config.OutputFile != "" {
		if err := rc.storage.Save([]domain.Resolution{res}); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return rc.formatter.PrintResolution(res)
}
