package commands

import (
	"github.com/scorg-tools/Blender-Tools-sub000/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <identifier|name>",
		Short: "Import an entity and resolve its default loadout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			include, _ := cmd.Flags().GetStringSlice("include")
			scenePath, _ := cmd.Flags().GetString("scene")
			outPath, _ := cmd.Flags().GetString("out")
			quiet, _ := cmd.Flags().GetBool("quiet")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// --ci wins over --output-mode
			if ci {
				outputMode = "ci"
			}

			_, err := c.app.Import(cmd.Context(), args[0], app.ImportOptions{
				Include:    include,
				ScenePath:  scenePath,
				OutPath:    outPath,
				Quiet:      quiet,
				OutputMode: outputMode,
			})
			return err
		},
	}
	cmd.Flags().StringSliceP("include", "i", nil, "Only resolve these top-level ports (repeatable)")
	cmd.Flags().StringP("scene", "s", "", "Populate an existing scene manifest")
	cmd.Flags().StringP("out", "o", "", "Write the scene manifest to this path")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the per-entry summary")
	cmd.Flags().String("output-mode", "auto", "Progress output mode: auto, linear, or ci")
	cmd.Flags().Bool("ci", false, "Print progress milestones only (shorthand for --output-mode=ci)")
	return cmd
}
