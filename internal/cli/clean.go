package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/engine"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the environment and recorded sync state",
	Long: `Delete the project's virtual environment directory and forget the recorded
sync. The next run starts from scratch.`,
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

		result, err := eng.Clean(context.Background(), &engine.CleanRequest{
			ProjectDir: cwd,
			Config:     cfg,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.RemovedEnv {
			PrintSuccess(fmt.Sprintf("Removed %s", result.EnvDir))
		} else {
			PrintEmptyState("no environment to remove")
		}
		if result.RemovedState {
			PrintSuccess("Cleared recorded sync state")
		}
		return nil
	},
}
