// Package commands implements the CLI commands for the loadout importer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/app"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/build"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/engine/resolver"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for loadout.
type CLI struct {
	app       Application
	verbosity app.Verbosity
	rootCmd   *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Import(ctx context.Context, ref string, opts app.ImportOptions) (resolver.Report, error)
	IngestRecords(ctx context.Context, paths []string) (int, error)
	ShowRecord(ctx context.Context, ref string) error
}

// New creates a new CLI instance with the given app. verbosity may be nil.
func New(a Application, verbosity app.Verbosity) *CLI {
	rootCmd := &cobra.Command{
		Use:           "loadout",
		Short:         "Assemble entity loadouts into scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:       a,
		verbosity: verbosity,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.verbosity == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json")
		c.verbosity.SetVerbose(verbose)
		c.verbosity.SetJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newRecordsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
