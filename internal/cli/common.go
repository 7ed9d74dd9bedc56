package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/envup/internal/clock"
	"github.com/danieljhkim/envup/internal/config"
	"github.com/danieljhkim/envup/internal/engine"
	"github.com/danieljhkim/envup/internal/fsops"
	"github.com/danieljhkim/envup/internal/hash"
	"github.com/danieljhkim/envup/internal/state"
	"github.com/danieljhkim/envup/internal/toolchain"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	// Get default paths
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	// Ensure directories exist
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Create real implementations
	fs := fsops.NewRealFS()
	runner := toolchain.NewRealRunner()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}
	states := state.NewFileStateStore(fs, paths.Projects)

	// Create engine
	return engine.New(
		toolchain.NewVenvManager(runner),
		toolchain.NewToolInstaller(runner),
		toolchain.NewProcessLauncher(runner),
		runner,
		fs,
		hasher,
		clk,
		states,
	), nil
}

// projectContext loads the effective configuration for the current directory.
func projectContext() (cwd string, cfg *config.Project, err error) {
	cwd, err = os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err = config.LoadProject(cwd)
	if err != nil {
		return "", nil, err
	}
	return cwd, cfg, nil
}

// ExitCode maps an error returned by Execute to the process exit status.
// Tool failures carry the failing tool's own exit status.
func ExitCode(err error) int {
	return toolchain.ExitCode(err)
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
