package main

import (
	"fmt"
	"os"

	"jestpath/internal/cli"
	"jestpath/internal/cli/commands"
	"jestpath/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "jestpath",
		Short:         "Locate the Jest runner, its config and its package for a project",
		Long:          `Resolves the command an editor should run to launch Jest, the Jest config path and the installed Jest package.json, accounting for Windows .cmd shims and create-react-app style projects.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
