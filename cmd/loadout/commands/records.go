package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage the content record store",
	}
	cmd.AddCommand(c.newRecordsIngestCmd())
	cmd.AddCommand(c.newRecordsShowCmd())
	return cmd
}

func (c *CLI) newRecordsIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <dump.json>...",
		Short: "Load record dumps into the record store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.IngestRecords(cmd.Context(), args)
			return err
		},
	}
}

func (c *CLI) newRecordsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <identifier|name>",
		Short: "Print a record with its geometry, helpers and default loadout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ShowRecord(cmd.Context(), args[0])
		},
	}
}
