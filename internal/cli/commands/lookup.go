package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"jestpath/internal/config"
	"jestpath/internal/ui"
)

var errMetadataNotFound = errors.New("no installed jest package.json found")

// LookupCommand answers one question per invocation, for callers that
// read a single line from stdout
type LookupCommand struct {
	config    *config.Config
	resolver  *resolverHolder
	formatter *ui.Formatter
}

// NewLookupCommand creates a new LookupCommand
func NewLookupCommand(cfg *config.Config, resolver *resolverHolder, formatter *ui.Formatter) *LookupCommand {
	return &LookupCommand{
		config:    cfg,
		resolver:  resolver,
		formatter: formatter,
	}
}

// RunnerCommand prints the command that launches Jest
func (lc *LookupCommand) RunnerCommand(cmd *cobra.Command, args []string) error {
	r, err := lc.resolver.get()
	if err != nil {
		return err
	}
	lc.formatter.PrintValue(r.RunnerCommand(lc.config.Settings))
	return nil
}

// ConfigPath prints the normalized config path, an empty line when unset
func (lc *LookupCommand) ConfigPath(cmd *cobra.Command, args []string) error {
	r, err := lc.resolver.get()
	if err != nil {
		return err
	}
	lc.formatter.PrintValue(r.ConfigPath(lc.config.Settings))
	return nil
}

// PackageMetadataPath prints the Jest package.json path, failing when none is installed
func (lc *LookupCommand) PackageMetadataPath(cmd *cobra.Command, args []string) error {
	r, err := lc.resolver.get()
	if err != nil {
		return err
	}
	path, ok := r.PackageMetadataPath(lc.config.Settings)
	if !ok {
		return errMetadataNotFound
	}
	lc.formatter.PrintValue(path)
	return nil
}
