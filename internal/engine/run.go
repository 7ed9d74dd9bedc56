package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/danieljhkim/envup/internal/toolchain"
)

// Run performs the full bootstrap sequence: ensure the environment exists,
// synchronize dependencies, then launch the application entry point.
//
// The launch blocks until the application exits. A non-nil error from the
// launch carries the application's exit status; the caller's process exit
// status should mirror it.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	syncRes, err := e.Sync(ctx, &SyncRequest{
		ProjectDir:    req.ProjectDir,
		Config:        req.Config,
		DryRun:        req.DryRun,
		SkipUnchanged: req.SkipUnchanged,
	})
	if err != nil {
		return &RunResult{Sync: syncRes}, err
	}

	command := toolchain.ResolveEntrypoint(syncRes.EnvDir, req.Config.Entrypoint.Command)
	args := append([]string{}, req.Config.Entrypoint.Args...)
	args = append(args, req.ExtraArgs...)

	result := &RunResult{
		Sync:    syncRes,
		Command: command,
		Args:    args,
	}

	syncRes.Plan.add(StepLaunch, command)
	if req.DryRun {
		return result, nil
	}

	projectDir, err := filepath.Abs(req.ProjectDir)
	if err != nil {
		return result, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	envVars, err := e.launchEnv(projectDir, syncRes.EnvDir, req)
	if err != nil {
		return result, err
	}

	// Tail invocation: the launch error, if any, is the application's own
	// failure and is returned unwrapped so its exit status propagates.
	return result, e.launcher.Launch(ctx, toolchain.LaunchSpec{
		Command: command,
		Args:    args,
		Dir:     projectDir,
		Env:     envVars,
	})
}

// launchEnv assembles the entry point environment: activation variables for
// the environment, dotenv files, then config overrides.
func (e *Engine) launchEnv(projectDir, envDir string, req *RunRequest) (map[string]string, error) {
	vars := map[string]string{
		"VIRTUAL_ENV": envDir,
		"PATH":        toolchain.BinDir(envDir) + string(os.PathListSeparator) + os.Getenv("PATH"),
	}

	files := req.Config.Dotenv
	optional := false
	if len(files) == 0 {
		// An unlisted .env is picked up when present, never required.
		files = []string{".env"}
		optional = true
	}

	for _, f := range files {
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			if optional && os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read dotenv file %s: %w", f, err)
		}

		envMap, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dotenv file %s: %w", f, err)
		}
		for k, v := range envMap {
			vars[k] = v
		}
	}

	for k, v := range req.Config.Env {
		vars[k] = v
	}

	return vars, nil
}
