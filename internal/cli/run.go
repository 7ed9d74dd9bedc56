package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/engine"
)

var (
	runDryRun        bool
	runSkipUnchanged bool
)

var runCmd = &cobra.Command{
	Use:   "run [-- args...]",
	Short: "Bootstrap the environment and launch the application",
	Long: `Run the full bootstrap sequence in the current directory:

  1. Create the virtual environment if it does not exist
  2. Install dependencies from the manifest
  3. Launch the application entry point

Arguments after -- are passed through to the entry point. The command
blocks on the application; its exit status becomes envup's exit status.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		cwd, cfg, err := projectContext()
		if err != nil {
			return err
		}

		result, err := eng.Run(context.Background(), &engine.RunRequest{
			ProjectDir:    cwd,
			Config:        cfg,
			DryRun:        runDryRun,
			SkipUnchanged: runSkipUnchanged,
			ExtraArgs:     args,
		})
		if err != nil {
			return err
		}

		if runDryRun {
			if jsonOutput {
				return outputJSON(result.Sync.Plan)
			}
			printPlan(result.Sync.Plan)
			return nil
		}

		return nil
	},
}

// printPlan renders the planned step sequence.
func printPlan(plan *engine.Plan) {
	PrintSection("Dry Run")
	for _, step := range plan.Steps {
		if step.Skipped {
			PrintEmptyState(fmt.Sprintf("skip %s: %s (%s)", step.Type, step.Detail, step.Reason))
		} else {
			PrintInfo(fmt.Sprintf("  %s: %s", step.Type, step.Detail))
		}
	}
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Show what would be done without doing it")
	runCmd.Flags().BoolVar(&runSkipUnchanged, "skip-unchanged", false, "Skip dependency installation when the manifest is unchanged")
}
