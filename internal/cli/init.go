package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/envup/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default envup.toml into the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		path := filepath.Join(cwd, config.ProjectFile)
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.ProjectFile)
		}

		if err := os.WriteFile(path, []byte(config.DefaultTOML), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.ProjectFile, err)
		}

		PrintSuccess(fmt.Sprintf("Wrote %s", config.ProjectFile))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing envup.toml")
}
