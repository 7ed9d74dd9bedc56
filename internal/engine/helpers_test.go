package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/envup/internal/clock"
	"github.com/danieljhkim/envup/internal/config"
	"github.com/danieljhkim/envup/internal/fsops"
	"github.com/danieljhkim/envup/internal/hash"
	"github.com/danieljhkim/envup/internal/state"
	"github.com/danieljhkim/envup/internal/toolchain"
)

// fakeEnvManager records Create calls. When err is nil it creates the
// directory so later existence checks see it, like the real tool would.
type fakeEnvManager struct {
	calls []string // created dirs
	err   error
}

func (m *fakeEnvManager) Create(ctx context.Context, python, dir string) error {
	if m.err != nil {
		return m.err
	}
	m.calls = append(m.calls, dir)
	return os.MkdirAll(dir, 0755)
}

// fakeInstaller records Install calls and returns a scripted error.
type fakeInstaller struct {
	calls []toolchain.InstallSpec
	err   error
}

func (i *fakeInstaller) Install(ctx context.Context, spec toolchain.InstallSpec) error {
	if i.err != nil {
		return i.err
	}
	i.calls = append(i.calls, spec)
	return nil
}

// fakeLauncher records Launch calls and returns a scripted error.
type fakeLauncher struct {
	calls []toolchain.LaunchSpec
	err   error
}

func (l *fakeLauncher) Launch(ctx context.Context, spec toolchain.LaunchSpec) error {
	l.calls = append(l.calls, spec)
	return l.err
}

// fakeRunner serves doctor's interpreter lookups.
type fakeRunner struct {
	runs    []toolchain.CommandSpec
	paths   map[string]string
	outputs map[string][]byte
	errs    map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		paths:   make(map[string]string),
		outputs: make(map[string][]byte),
		errs:    make(map[string]error),
	}
}

func (r *fakeRunner) Run(ctx context.Context, spec toolchain.CommandSpec) error {
	r.runs = append(r.runs, spec)
	return r.errs[spec.Name]
}

func (r *fakeRunner) Output(ctx context.Context, spec toolchain.CommandSpec) ([]byte, error) {
	r.runs = append(r.runs, spec)
	if err := r.errs[spec.Name]; err != nil {
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

// testEnv bundles an engine wired with fakes and a scratch project.
type testEnv struct {
	engine     *Engine
	envMgr     *fakeEnvManager
	installer  *fakeInstaller
	launcher   *fakeLauncher
	runner     *fakeRunner
	clock      *clock.FakeClock
	projectDir string
	cfg        *config.Project
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	projectDir := t.TempDir()
	stateDir := t.TempDir()

	envMgr := &fakeEnvManager{}
	installer := &fakeInstaller{}
	launcher := &fakeLauncher{}
	runner := newFakeRunner()
	clk := clock.NewFakeClock(time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC))
	fs := fsops.NewRealFS()

	eng := New(
		envMgr,
		installer,
		launcher,
		runner,
		fs,
		hash.NewSHA256Hasher(),
		clk,
		state.NewFileStateStore(fs, stateDir),
	)

	return &testEnv{
		engine:     eng,
		envMgr:     envMgr,
		installer:  installer,
		launcher:   launcher,
		runner:     runner,
		clock:      clk,
		projectDir: projectDir,
		cfg:        config.Defaults(),
	}
}

// writeManifest writes a requirements.txt into the project.
func (te *testEnv) writeManifest(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(te.projectDir, "requirements.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// createEnvDir pre-creates the environment directory.
func (te *testEnv) createEnvDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(te.projectDir, te.cfg.EnvDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}
