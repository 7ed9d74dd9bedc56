package toolchain

import (
	"context"
	"path/filepath"
	"runtime"
)

// EnvManager creates isolated execution environments.
type EnvManager interface {
	// Create creates a new environment at dir using the given interpreter.
	Create(ctx context.Context, python, dir string) error
}

// VenvManager implements EnvManager by delegating to `python -m venv`.
type VenvManager struct {
	runner Runner
}

// NewVenvManager creates a new VenvManager.
func NewVenvManager(runner Runner) *VenvManager {
	return &VenvManager{runner: runner}
}

// Create creates a virtual environment at dir.
func (m *VenvManager) Create(ctx context.Context, python, dir string) error {
	return m.runner.Run(ctx, CommandSpec{
		Name: python,
		Args: []string{"-m", "venv", dir},
	})
}

// BinDir returns the executables directory inside an environment.
func BinDir(envDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts")
	}
	return filepath.Join(envDir, "bin")
}

// BinPath returns the path of a tool inside an environment.
func BinPath(envDir, tool string) string {
	if runtime.GOOS == "windows" {
		tool += ".exe"
	}
	return filepath.Join(BinDir(envDir), tool)
}
