package engine

import "errors"

var (
	// ErrNoManifest indicates no dependency manifest could be found.
	ErrNoManifest = errors.New("no dependency manifest found")

	// ErrNoInterpreter indicates the configured interpreter is not on PATH.
	ErrNoInterpreter = errors.New("interpreter not found")

	// ErrVersionConstraint indicates the interpreter fails the configured
	// minimum version constraint.
	ErrVersionConstraint = errors.New("interpreter version constraint not satisfied")
)
