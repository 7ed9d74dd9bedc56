// Package config manages envup configuration and filesystem paths.
//
// Configuration has two layers: the per-user state root (default ~/.envup)
// holding recorded sync state, and the per-project envup.toml describing the
// environment directory, manifest, interpreter, and entry point. Project
// settings can be overridden with ENVUP_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by envup.
type Paths struct {
	// Root is the base directory for all envup data (default: ~/.envup)
	Root string

	// Projects is the directory containing per-project sync state files
	Projects string
}

// DefaultPaths returns the default paths for envup.
// Paths can be overridden with environment variables:
// - ENVUP_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ENVUP_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".envup")
	}

	return &Paths{
		Root:     root,
		Projects: filepath.Join(root, "projects"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Projects,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
