package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/engine"
)

var (
	syncDryRun        bool
	syncSkipUnchanged bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Create the environment and install dependencies without launching",
	Long: `Ensure the virtual environment exists and its dependencies match the
manifest, then stop. Useful in CI or before handing the environment to
another tool.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, cfg, err := projectContext()
		if err != nil {
			return err
		}

		result, err := eng.Sync(context.Background(), &engine.SyncRequest{
			ProjectDir:    cwd,
			Config:        cfg,
			DryRun:        syncDryRun,
			SkipUnchanged: syncSkipUnchanged,
		})
		if err != nil {
			return err
		}

		if syncDryRun {
			if jsonOutput {
				return outputJSON(result.Plan)
			}
			printPlan(result.Plan)
			return nil
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Created {
			PrintSuccess(fmt.Sprintf("Created environment %s", filepath.Base(result.EnvDir)))
		}
		if result.Installed {
			PrintSuccess(fmt.Sprintf("Synchronized dependencies from %s", filepath.Base(result.Manifest)))
		} else {
			PrintInfo("Dependencies unchanged since last sync")
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be done without doing it")
	syncCmd.Flags().BoolVar(&syncSkipUnchanged, "skip-unchanged", false, "Skip dependency installation when the manifest is unchanged")
}
