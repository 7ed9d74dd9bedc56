// Package toolchain wraps the external tools envup delegates to: the
// environment manager (python -m venv), the package installer (pip, uv,
// poetry), and the application entry point.
//
// Every tool invocation goes through the Runner interface so the bootstrap
// sequence can be tested without executing anything. Tool output is passed
// through to the user's streams unmodified; envup adds no wrapping of its
// own around a failing tool's diagnostics.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// CommandSpec describes a single external tool invocation.
type CommandSpec struct {
	// Name is the program to run, resolved via PATH unless absolute.
	Name string

	// Args are the program arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds extra environment variables appended to the inherited
	// environment.
	Env map[string]string
}

// Runner executes external tools.
type Runner interface {
	// Run executes the command with inherited stdio, blocking until it
	// exits. A non-zero exit status is returned as an *ExitError.
	Run(ctx context.Context, spec CommandSpec) error

	// Output executes the command and captures its combined output.
	Output(ctx context.Context, spec CommandSpec) ([]byte, error)

	// LookPath searches PATH for the named program.
	LookPath(name string) (string, error)
}

// ExitError carries the exit status of a failed tool so the bootstrapper's
// own exit status can mirror it.
type ExitError struct {
	// Name is the program that failed.
	Name string

	// Code is the program's exit status.
	Code int

	// Err is the underlying execution error.
	Err error
}

// Error returns the error message.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit status carried by err. A nil error is 0; an
// error without an embedded status is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command with inherited stdio, blocking until it exits.
func (r *RealRunner) Run(ctx context.Context, spec CommandSpec) error {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = mergeEnv(spec.Env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return wrapExecError(spec.Name, err)
	}
	return nil
}

// Output executes the command and captures its combined output.
func (r *RealRunner) Output(ctx context.Context, spec CommandSpec) ([]byte, error) {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = mergeEnv(spec.Env)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, wrapExecError(spec.Name, err)
	}
	return out, nil
}

// LookPath searches PATH for the named program.
func (r *RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// wrapExecError converts exec errors into *ExitError where an exit status is
// available.
func wrapExecError(name string, err error) error {
	var execErr *exec.ExitError
	if errors.As(err, &execErr) {
		return &ExitError{Name: name, Code: execErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("failed to run %s: %w", name, err)
}

// mergeEnv appends extra variables to the inherited environment in a stable
// order.
func mergeEnv(extra map[string]string) []string {
	env := os.Environ()
	if len(extra) == 0 {
		return env
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}
