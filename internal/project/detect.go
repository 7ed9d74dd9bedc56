// Package project identifies the dependency tooling of a Python project.
//
// The flavor determines which installer command envup delegates to and which
// manifest file it watches for changes. Detection probes lock files first,
// then falls back to requirements.txt and pyproject.toml.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Flavor identifies the dependency tooling of a project.
type Flavor string

const (
	FlavorPip     Flavor = "pip"
	FlavorUV      Flavor = "uv"
	FlavorPoetry  Flavor = "poetry"
	FlavorUnknown Flavor = "unknown"
)

// ErrUnknownProject indicates no recognizable manifest was found.
var ErrUnknownProject = errors.New("project type could not be identified; expected requirements.txt, pyproject.toml, or a lock file")

// Info describes a detected project.
type Info struct {
	// Flavor is the dependency tooling.
	Flavor Flavor

	// Manifest is the manifest path relative to the project directory.
	Manifest string
}

// pyprojectTool mirrors the [tool] tables of pyproject.toml that matter for
// flavor detection.
type pyprojectTool struct {
	Tool struct {
		Poetry map[string]interface{} `toml:"poetry"`
		UV     map[string]interface{} `toml:"uv"`
	} `toml:"tool"`
}

func fileExists(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}

// Detect determines the project flavor and manifest by probing dir.
//
// Priority order: lock files are the most reliable indicators, then
// requirements.txt, then pyproject.toml tool tables.
func Detect(dir string) (*Info, error) {
	if fileExists(dir, "uv.lock") {
		return &Info{Flavor: FlavorUV, Manifest: "uv.lock"}, nil
	}
	if fileExists(dir, "poetry.lock") {
		return &Info{Flavor: FlavorPoetry, Manifest: "poetry.lock"}, nil
	}
	if fileExists(dir, "requirements.txt") {
		return &Info{Flavor: FlavorPip, Manifest: "requirements.txt"}, nil
	}

	if fileExists(dir, "pyproject.toml") {
		flavor, err := detectPyproject(filepath.Join(dir, "pyproject.toml"))
		if err != nil {
			return nil, err
		}
		return &Info{Flavor: flavor, Manifest: "pyproject.toml"}, nil
	}

	return nil, ErrUnknownProject
}

// detectPyproject inspects the [tool] tables to disambiguate the flavor.
func detectPyproject(path string) (Flavor, error) {
	var py pyprojectTool
	if _, err := toml.DecodeFile(path, &py); err != nil {
		return FlavorUnknown, fmt.Errorf("failed to parse pyproject.toml: %w", err)
	}
	switch {
	case len(py.Tool.Poetry) > 0:
		return FlavorPoetry, nil
	case len(py.Tool.UV) > 0:
		return FlavorUV, nil
	default:
		// A bare pyproject.toml is installable with pip
		return FlavorPip, nil
	}
}

// DetectWithManifest resolves the flavor when the manifest path is already
// configured. The manifest's own name decides the flavor; an unrecognized
// name is treated as a pip requirements file.
func DetectWithManifest(dir, manifest string) *Info {
	switch filepath.Base(manifest) {
	case "uv.lock":
		return &Info{Flavor: FlavorUV, Manifest: manifest}
	case "poetry.lock":
		return &Info{Flavor: FlavorPoetry, Manifest: manifest}
	case "pyproject.toml":
		if flavor, err := detectPyproject(filepath.Join(dir, manifest)); err == nil {
			return &Info{Flavor: flavor, Manifest: manifest}
		}
		return &Info{Flavor: FlavorPip, Manifest: manifest}
	default:
		return &Info{Flavor: FlavorPip, Manifest: manifest}
	}
}
