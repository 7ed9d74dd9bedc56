package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	env "github.com/caarlos0/env/v11"
)

// ProjectFile is the name of the per-project configuration file.
const ProjectFile = "envup.toml"

// Entrypoint describes the application entry point launched after bootstrap.
type Entrypoint struct {
	// Command is the program to launch. "python" and "python3" resolve to
	// the environment's own interpreter.
	Command string `toml:"command"`

	// Args are the arguments passed to the command.
	Args []string `toml:"args"`
}

// Project is the per-project configuration.
//
// Values are resolved in order: built-in defaults, then envup.toml, then
// ENVUP_* environment variables.
type Project struct {
	// EnvDir is the environment directory, relative to the project root.
	EnvDir string `toml:"env_dir" env:"ENVUP_ENV_DIR"`

	// Python is the interpreter used to create the environment.
	Python string `toml:"python" env:"ENVUP_PYTHON"`

	// Manifest is the dependency manifest path, relative to the project
	// root. Empty means auto-detect.
	Manifest string `toml:"manifest" env:"ENVUP_MANIFEST"`

	// MinPython is an optional semver constraint the interpreter must
	// satisfy, checked by `envup doctor` (e.g. ">= 3.9").
	MinPython string `toml:"min_python"`

	// Dotenv lists .env files loaded before launching the entry point.
	// Files listed here must exist; a missing default .env is ignored.
	Dotenv []string `toml:"dotenv"`

	// Env holds extra environment variables set for the entry point.
	Env map[string]string `toml:"env"`

	// Entrypoint is the application entry point.
	Entrypoint Entrypoint `toml:"entrypoint"`
}

// Defaults returns a Project with the built-in defaults, matching the
// conventional layout: .venv next to the project, python3, wsgi.py entry point.
func Defaults() *Project {
	return &Project{
		EnvDir: ".venv",
		Python: "python3",
		Entrypoint: Entrypoint{
			Command: "python",
			Args:    []string{"wsgi.py"},
		},
	}
}

// LoadProject loads the project configuration for the given project directory.
// A missing envup.toml is not an error; defaults and environment overrides
// still apply.
func LoadProject(dir string) (*Project, error) {
	cfg := Defaults()

	path := filepath.Join(dir, ProjectFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", ProjectFile, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values that can never work.
func (p *Project) Validate() error {
	if p.EnvDir == "" {
		return fmt.Errorf("invalid config: env_dir must not be empty")
	}
	if p.Python == "" {
		return fmt.Errorf("invalid config: python must not be empty")
	}
	if p.Entrypoint.Command == "" {
		return fmt.Errorf("invalid config: entrypoint.command must not be empty")
	}
	if p.MinPython != "" {
		if _, err := semver.NewConstraint(p.MinPython); err != nil {
			return fmt.Errorf("invalid config: min_python %q is not a valid constraint: %w", p.MinPython, err)
		}
	}
	return nil
}

// DefaultTOML is the envup.toml written by `envup init`.
const DefaultTOML = `# envup project configuration

# Directory holding the isolated environment.
env_dir = ".venv"

# Interpreter used to create the environment.
python = "python3"

# Dependency manifest. Leave empty to auto-detect
# (requirements.txt, uv.lock, poetry.lock, pyproject.toml).
manifest = ""

# Optional interpreter version constraint checked by 'envup doctor'.
# min_python = ">= 3.9"

# .env files loaded before launching the entry point.
# dotenv = [".env"]

[entrypoint]
command = "python"
args = ["wsgi.py"]
`
