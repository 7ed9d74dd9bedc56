package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/envup/internal/project"
)

// Status reports the bootstrap state of a project without touching anything.
// A project with no recognizable manifest still gets a status; the flavor is
// reported as unknown.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	abs, envDir, id, err := e.resolvePaths(req.ProjectDir, req.Config)
	if err != nil {
		return nil, err
	}

	envExists, err := e.fs.IsDir(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check environment directory: %w", err)
	}

	result := &StatusResult{
		ProjectDir: abs,
		EnvDir:     envDir,
		EnvExists:  envExists,
		Flavor:     project.FlavorUnknown,
		Entrypoint: req.Config.Entrypoint.Command,
	}

	res, err := e.resolve(req.ProjectDir, req.Config)
	switch {
	case err == nil:
		result.Flavor = res.info.Flavor
		result.Manifest = res.manifest
	case errors.Is(err, ErrNoManifest):
		// Status degrades gracefully when nothing is detectable
	default:
		return nil, err
	}

	st, err := e.loadState(id)
	if err != nil {
		return nil, err
	}
	if st != nil {
		result.Synced = true
		result.LastSync = st.LastSync

		if result.Manifest != "" {
			currentHash, err := e.hasher.HashFile(result.Manifest)
			if err != nil {
				return nil, fmt.Errorf("failed to hash manifest: %w", err)
			}
			result.ManifestChanged = currentHash != st.ManifestHash
		}
	}

	return result, nil
}

// Clean removes the environment directory and the recorded sync state.
func (e *Engine) Clean(ctx context.Context, req *CleanRequest) (*CleanResult, error) {
	_, envDir, id, err := e.resolvePaths(req.ProjectDir, req.Config)
	if err != nil {
		return nil, err
	}

	result := &CleanResult{EnvDir: envDir}

	envExists, err := e.fs.IsDir(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check environment directory: %w", err)
	}
	if envExists {
		if err := e.fs.RemoveAll(envDir); err != nil {
			return result, fmt.Errorf("failed to remove environment %s: %w", filepath.Base(envDir), err)
		}
		result.RemovedEnv = true
	}

	st, err := e.loadState(id)
	if err != nil {
		return result, err
	}
	if st != nil {
		if err := e.states.Delete(id); err != nil {
			return result, err
		}
		result.RemovedState = true
	}

	return result, nil
}
