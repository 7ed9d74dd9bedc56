package toolchain

import (
	"context"
	"os"
)

// LaunchSpec describes the application entry point invocation.
type LaunchSpec struct {
	// Command is the resolved program to launch.
	Command string

	// Args are the program arguments.
	Args []string

	// Dir is the working directory (the project root).
	Dir string

	// Env holds extra environment variables for the application.
	Env map[string]string
}

// Launcher starts the application entry point. The launch is a tail
// invocation: it blocks until the application exits and the application's
// exit status is surfaced as an *ExitError.
type Launcher interface {
	Launch(ctx context.Context, spec LaunchSpec) error
}

// ProcessLauncher implements Launcher by running the entry point as a child
// process with inherited stdio.
type ProcessLauncher struct {
	runner Runner
}

// NewProcessLauncher creates a new ProcessLauncher.
func NewProcessLauncher(runner Runner) *ProcessLauncher {
	return &ProcessLauncher{runner: runner}
}

// Launch runs the entry point, blocking until it exits.
func (l *ProcessLauncher) Launch(ctx context.Context, spec LaunchSpec) error {
	return l.runner.Run(ctx, CommandSpec{
		Name: spec.Command,
		Args: spec.Args,
		Dir:  spec.Dir,
		Env:  spec.Env,
	})
}

// ResolveEntrypoint maps a configured entry point command to the concrete
// program inside the environment. "python" and "python3" always resolve to
// the environment's interpreter; other names resolve to the environment's
// bin directory when a matching executable exists there, and are otherwise
// left for PATH lookup.
func ResolveEntrypoint(envDir, command string) string {
	switch command {
	case "python", "python3":
		return BinPath(envDir, "python")
	}

	candidate := BinPath(envDir, command)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return command
}
