package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/engine"
	"github.com/danieljhkim/envup/internal/project"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the bootstrap state of the current project",
	Long:  `Display the environment, manifest, and last recorded sync for the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, cfg, err := projectContext()
		if err != nil {
			return err
		}

		result, err := eng.Status(context.Background(), &engine.StatusRequest{
			ProjectDir: cwd,
			Config:     cfg,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintLabelValue("Project", result.ProjectDir)
		PrintLabelValue("Environment", result.EnvDir)
		PrintLabelValue("Environment exists", fmt.Sprintf("%v", result.EnvExists))
		if result.Flavor == project.FlavorUnknown {
			PrintEmptyState("no dependency manifest detected")
		} else {
			PrintLabelValue("Flavor", string(result.Flavor))
			PrintLabelValue("Manifest", result.Manifest)
		}
		PrintLabelValue("Entry point", result.Entrypoint)

		if !result.Synced {
			PrintEmptyState("never synchronized")
			return nil
		}

		PrintLabelValue("Last sync", result.LastSync.Format("2006-01-02 15:04:05 MST"))
		if result.ManifestChanged {
			PrintWarning("Manifest changed since last sync; run 'envup sync'")
		}
		return nil
	},
}
