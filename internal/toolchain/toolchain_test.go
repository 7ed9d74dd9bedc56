package toolchain

import (
	"context"
	"fmt"
)

// fakeRunner records invocations and returns scripted results.
type fakeRunner struct {
	runs    []CommandSpec
	runErr  map[string]error  // keyed by command name
	outputs map[string][]byte // keyed by command name
	paths   map[string]string // keyed by program name
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		runErr:  make(map[string]error),
		outputs: make(map[string][]byte),
		paths:   make(map[string]string),
	}
}

func (r *fakeRunner) Run(ctx context.Context, spec CommandSpec) error {
	r.runs = append(r.runs, spec)
	return r.runErr[spec.Name]
}

func (r *fakeRunner) Output(ctx context.Context, spec CommandSpec) ([]byte, error) {
	r.runs = append(r.runs, spec)
	if err := r.runErr[spec.Name]; err != nil {
		return nil, err
	}
	return r.outputs[spec.Name], nil
}

func (r *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := r.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}
