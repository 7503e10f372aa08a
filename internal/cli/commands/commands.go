package commands

import (
	"github.com/spf13/cobra"

	"jestpath/internal/cli"
	"jestpath/internal/config"
	"jestpath/internal/discovery"
	"jestpath/internal/logging"
	"jestpath/internal/platform"
	"jestpath/internal/probe"
	"jestpath/internal/resolver"
	"jestpath/internal/storage"
	"jestpath/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Resolve  *ResolveCommand
	Lookup   *LookupCommand
	Escape   *EscapeCommand
	Scan     *ScanCommand
	Show     *ShowCommand
	resolver *resolverHolder
}

// resolverHolder defers building the resolver until flags have picked the platform
type resolverHolder struct {
	cfg *config.Config
}

func (h *resolverHolder) get() (*resolver.Resolver, error) {
	target, err := platform.Parse(h.cfg.Platform)
	if err != nil {
		return nil, err
	}
	return resolver.New(target, probe.ForPlatform(target)), nil
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	holder := &resolverHolder{cfg: cfg}
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)

	return &Commands{
		Resolve:  NewResolveCommand(cfg, holder, jsonStorage, formatter),
		Lookup:   NewLookupCommand(cfg, holder, formatter),
		Escape:   NewEscapeCommand(formatter),
		Scan:     NewScanCommand(cfg, holder, scanner, filter, jsonStorage, formatter),
		Show:     NewShowCommand(cfg, jsonStorage, formatter),
		resolver: holder,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.SettingsFile, "settings", "s", "", "YAML or JSON file with rootPath, pathToJest and pathToConfig")
	pf.StringVarP(&flags.RootPath, "root", "r", "", "Project root (default: current directory)")
	pf.StringVar(&flags.PathToJest, "path-to-jest", "", "Command or path used to launch Jest (default: node_modules/.bin/jest)")
	pf.StringVar(&flags.PathToConfig, "path-to-config", "", "Path to the Jest config file")
	pf.StringVar(&flags.Platform, "platform", "", "Resolve for another platform: posix or windows (default: host)")
	pf.BoolVar(&flags.JSON, "json", false, "Print JSON instead of tables")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every probe at debug level")
	pf.BoolVar(&flags.LogJSON, "log-json", false, "Write logs as JSON")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded

		logging.SetVerbose(flags.Verbose)
		if flags.LogJSON {
			logging.SetJSON()
		}
		_, err = c.resolver.get()
		return err
	}

	// Resolve command
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve runner command, config path and Jest package for a project",
		Args:  cobra.NoArgs,
		RunE:  c.Resolve.Execute,
	}
	resolveCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Also write the result to this JSON report file")
	rootCmd.AddCommand(resolveCmd)

	// Single-value lookups, one line of output each
	rootCmd.AddCommand(&cobra.Command{
		Use:   "command",
		Short: "Print the shell command that launches Jest",
		Args:  cobra.NoArgs,
		RunE:  c.Lookup.RunnerCommand,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the normalized Jest config path (empty when unset)",
		Args:  cobra.NoArgs,
		RunE:  c.Lookup.ConfigPath,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "metadata",
		Short: "Print the path of the installed Jest package.json",
		Args:  cobra.NoArgs,
		RunE:  c.Lookup.PackageMetadataPath,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "escape STRING...",
		Short: "Escape regular expression metacharacters, one result per line",
		Long:  "Escape regular expression metacharacters so a test name or file path can be passed to --testNamePattern or --testPathPattern literally.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Escape.Execute,
	})

	// Scan command
	scanCmd := &cobra.Command{
		Use:   "scan [DIR]",
		Short: "Resolve every npm project in a workspace",
		Long:  "Find every directory holding a package.json under DIR (default: the root) and resolve each one with the same settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Scan.Execute,
	}
	scanCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter projects by directory name (supports wildcards, e.g. 'web-*' or '*admin*')")
	scanCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Also write the results to this JSON report file")
	rootCmd.AddCommand(scanCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print a stored report",
		Args:  cobra.NoArgs,
		RunE:  c.Show.Execute,
	}
	showCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Report file to read (default: "+config.DefaultOutputFile+" in the root)")
	rootCmd.AddCommand(showCmd)
}
