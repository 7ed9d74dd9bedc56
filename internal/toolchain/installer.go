package toolchain

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/envup/internal/project"
)

// InstallSpec describes a dependency synchronization request.
type InstallSpec struct {
	// Flavor selects the installer tool.
	Flavor project.Flavor

	// ProjectDir is the project root, used as the working directory.
	ProjectDir string

	// EnvDir is the absolute path of the environment to install into.
	EnvDir string

	// Manifest is the absolute path of the dependency manifest.
	Manifest string
}

// Installer synchronizes dependencies into an environment. Implementations
// delegate idempotence to the underlying tool: re-running with an unchanged
// manifest is a fast verification pass.
type Installer interface {
	Install(ctx context.Context, spec InstallSpec) error
}

// ToolInstaller implements Installer by delegating to the flavor's tool.
type ToolInstaller struct {
	runner Runner
}

// NewToolInstaller creates a new ToolInstaller.
func NewToolInstaller(runner Runner) *ToolInstaller {
	return &ToolInstaller{runner: runner}
}

// Install synchronizes dependencies into the environment.
func (i *ToolInstaller) Install(ctx context.Context, spec InstallSpec) error {
	switch spec.Flavor {
	case project.FlavorPip:
		return i.runner.Run(ctx, pipSpec(spec))
	case project.FlavorUV:
		return i.runner.Run(ctx, CommandSpec{
			Name: "uv",
			Args: []string{"sync", "--frozen"},
			Dir:  spec.ProjectDir,
			Env: map[string]string{
				"UV_PROJECT_ENVIRONMENT": spec.EnvDir,
			},
		})
	case project.FlavorPoetry:
		return i.runner.Run(ctx, CommandSpec{
			Name: "poetry",
			Args: []string{"install", "--no-interaction"},
			Dir:  spec.ProjectDir,
			Env: map[string]string{
				"VIRTUAL_ENV":               spec.EnvDir,
				"POETRY_VIRTUALENVS_CREATE": "false",
			},
		})
	default:
		return fmt.Errorf("no installer for project flavor %q", spec.Flavor)
	}
}

// pipSpec builds the pip invocation. A requirements file installs with -r;
// a pyproject.toml installs the project itself.
func pipSpec(spec InstallSpec) CommandSpec {
	pip := BinPath(spec.EnvDir, "pip")
	if filepath.Base(spec.Manifest) == "pyproject.toml" {
		return CommandSpec{
			Name: pip,
			Args: []string{"install", "."},
			Dir:  spec.ProjectDir,
		}
	}
	return CommandSpec{
		Name: pip,
		Args: []string{"install", "-r", spec.Manifest},
		Dir:  spec.ProjectDir,
	}
}
