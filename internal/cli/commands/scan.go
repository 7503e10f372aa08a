package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jestpath/internal/config"
	"jestpath/internal/discovery"
	"jestpath/internal/domain"
	"jestpath/internal/storage"
	"jestpath/internal/ui"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	config    *config.Config
	resolver  *resolverHolder
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(
	cfg *config.Config,
	resolver *resolverHolder,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *ScanCommand {
	return &ScanCommand{
		config:    cfg,
		resolver:  resolver,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ScanCommand) Execute(cmd *cobra.Command, args []string) error {
	r, err := sc.resolver.get()
	if err != nil {
		return err
	}

	workspace := sc.config.Settings.RootPath
	if len(args) == 1 {
		if workspace, err = filepath.Abs(args[0]); err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
	}

	projects, err := sc.scanner.Scan(workspace)
	if err != nil {
		return err
	}
	projects = sc.filter.FilterByName(projects, sc.config.Flags.NameFilter)

	if len(projects) == 0 {
		color.Yellow("No projects found")
		return nil
	}

	var progress *ui.ProgressBar
	if !sc.config.JSON {
		progress = ui.NewProgressBar(len(projects))
	}

	resolutions := make([]domain.Resolution, 0, len(projects))
	found, missing := 0, 0
	for _, project := range projects {
		res := r.Resolve(sc.config.Settings.ForRoot(project))
		resolutions = append(resolutions, res)

		if res.HasMetadata() {
			found++
		} else {
			missing++
		}
		if progress != nil {
			progress.Update(found, missing)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if sc.config.OutputFile != "" {
		if err := sc.storage.Save(resolutions); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return sc.formatter.PrintResolutions(workspace, resolutions)
}
