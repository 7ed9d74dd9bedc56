// Package engine provides the core business logic for envup operations.
//
// The engine acts as the orchestration layer between CLI commands and the
// external tools. It coordinates project resolution, the bootstrap sequence
// (environment creation, dependency sync, application launch), and recorded
// sync state.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Run/Sync: The bootstrap sequence and its install-only variant
//   - Status/Doctor/Clean: Inspection and maintenance operations
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/envup/internal/clock"
	"github.com/danieljhkim/envup/internal/config"
	"github.com/danieljhkim/envup/internal/fsops"
	"github.com/danieljhkim/envup/internal/hash"
	"github.com/danieljhkim/envup/internal/project"
	"github.com/danieljhkim/envup/internal/state"
	"github.com/danieljhkim/envup/internal/toolchain"
)

// Engine orchestrates all envup operations.
// It is the main API surface called by the CLI.
type Engine struct {
	envMgr    toolchain.EnvManager
	installer toolchain.Installer
	launcher  toolchain.Launcher
	runner    toolchain.Runner
	fs        fsops.FS
	hasher    hash.Hasher
	clock     clock.Clock
	states    state.StateStore
}

// New creates a new Engine with the given dependencies.
func New(
	envMgr toolchain.EnvManager,
	installer toolchain.Installer,
	launcher toolchain.Launcher,
	runner toolchain.Runner,
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	states state.StateStore,
) *Engine {
	return &Engine{
		envMgr:    envMgr,
		installer: installer,
		launcher:  launcher,
		runner:    runner,
		fs:        fs,
		hasher:    hasher,
		clock:     clk,
		states:    states,
	}
}

// resolved holds the fully resolved paths and detection results for a
// project, shared by all operations.
type resolved struct {
	// projectDir is the absolute project root.
	projectDir string

	// cfg is the effective configuration.
	cfg *config.Project

	// envDir is the absolute environment directory.
	envDir string

	// info is the detected flavor and manifest (relative to projectDir).
	info *project.Info

	// manifest is the absolute manifest path.
	manifest string

	// id is the state identifier for this project.
	id string
}

// resolvePaths computes the absolute project root, environment directory,
// and state identifier. Used directly by operations that work without a
// manifest (status, clean).
func (e *Engine) resolvePaths(projectDir string, cfg *config.Project) (abs, envDir, id string, err error) {
	abs, err = filepath.Abs(projectDir)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to resolve project directory: %w", err)
	}

	envDir = cfg.EnvDir
	if !filepath.IsAbs(envDir) {
		if err := e.fs.ValidateRelPath(envDir); err != nil {
			return "", "", "", fmt.Errorf("invalid env_dir: %w", err)
		}
		envDir = filepath.Join(abs, envDir)
	}

	id, err = state.ProjectID(abs)
	if err != nil {
		return "", "", "", err
	}
	return abs, envDir, id, nil
}

// resolve computes the absolute paths and project flavor for an operation.
func (e *Engine) resolve(projectDir string, cfg *config.Project) (*resolved, error) {
	abs, envDir, id, err := e.resolvePaths(projectDir, cfg)
	if err != nil {
		return nil, err
	}

	var info *project.Info
	if cfg.Manifest != "" {
		info = project.DetectWithManifest(abs, cfg.Manifest)
	} else {
		info, err = project.Detect(abs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoManifest, err)
		}
	}

	manifest := info.Manifest
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(abs, manifest)
	}

	exists, err := e.fs.Exists(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to check manifest: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoManifest, manifest)
	}

	return &resolved{
		projectDir: abs,
		cfg:        cfg,
		envDir:     envDir,
		info:       info,
		manifest:   manifest,
		id:         id,
	}, nil
}

// loadState loads the recorded sync state, returning nil when none exists.
func (e *Engine) loadState(id string) (*state.SyncState, error) {
	st, err := e.states.Load(id)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load sync state: %w", err)
	}
	return st, nil
}
