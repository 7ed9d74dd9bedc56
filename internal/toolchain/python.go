package toolchain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// InterpreterVersion runs `<python> --version` and parses the reported
// version.
func InterpreterVersion(ctx context.Context, runner Runner, python string) (*semver.Version, error) {
	out, err := runner.Output(ctx, CommandSpec{
		Name: python,
		Args: []string{"--version"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s version: %w", python, err)
	}
	return ParseInterpreterVersion(string(out))
}

// ParseInterpreterVersion extracts a semantic version from interpreter
// output such as "Python 3.11.4" or "Python 3.13.0rc1".
func ParseInterpreterVersion(out string) (*semver.Version, error) {
	match := versionRe.FindString(strings.TrimSpace(out))
	if match == "" {
		return nil, fmt.Errorf("no version found in interpreter output %q", strings.TrimSpace(out))
	}

	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("failed to parse interpreter version %q: %w", match, err)
	}
	return v, nil
}

// CheckConstraint reports whether the version satisfies the semver
// constraint (e.g. ">= 3.9").
func CheckConstraint(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
