package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/engine"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the toolchain the bootstrap depends on",
	Long: `Verify the configured interpreter is available, its version satisfies the
configured constraint, and a dependency manifest is present.`,
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

		result, err := eng.Doctor(context.Background(), &engine.DoctorRequest{
			ProjectDir: cwd,
			Config:     cfg,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(result); err != nil {
				return err
			}
		} else {
			PrintSection("Toolchain")
			for _, check := range result.Checks {
				PrintCheck(check.OK, check.Name, check.Detail)
			}
			fmt.Println()
		}

		if !result.Healthy {
			return fmt.Errorf("toolchain checks failed")
		}
		if !jsonOutput {
			PrintSuccess("All checks passed")
		}
		return nil
	},
}
