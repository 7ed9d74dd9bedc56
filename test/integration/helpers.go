package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/danieljhkim/envup/internal/clock"
	"github.com/danieljhkim/envup/internal/config"
	"github.com/danieljhkim/envup/internal/engine"
	"github.com/danieljhkim/envup/internal/fsops"
	"github.com/danieljhkim/envup/internal/hash"
	"github.com/danieljhkim/envup/internal/state"
	"github.com/danieljhkim/envup/internal/toolchain"
)

// fixture is a scratch project wired to an engine that runs real processes,
// with the external tools replaced by shell script stubs that record their
// invocations to a log file.
type fixture struct {
	engine     *engine.Engine
	projectDir string
	cfg        *config.Project
	logPath    string
}

const createStub = `#!/bin/sh
echo "create $@" >> "$ENVUP_TEST_LOG"
mkdir -p "$3/bin"
cp "$ENVUP_TEST_PIP" "$3/bin/pip"
cp "$ENVUP_TEST_APP" "$3/bin/python"
`

const failingCreateStub = `#!/bin/sh
echo "create-failed" >&2
exit 1
`

const pipStub = `#!/bin/sh
echo "install $@" >> "$ENVUP_TEST_LOG"
exit ${ENVUP_TEST_PIP_EXIT:-0}
`

const appStub = `#!/bin/sh
echo "launch $@" >> "$ENVUP_TEST_LOG"
exit ${ENVUP_TEST_APP_EXIT:-0}
`

// newFixture builds a project with a requirements.txt and stub tools.
func newFixture(t *testing.T, pythonStub string) *fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration stubs require a POSIX shell")
	}

	projectDir := t.TempDir()
	toolDir := t.TempDir()
	stateDir := t.TempDir()
	logPath := filepath.Join(toolDir, "invocations.log")

	writeStub := func(name, script string) string {
		path := filepath.Join(toolDir, name)
		if err := os.WriteFile(path, []byte(script), 0755); err != nil {
			t.Fatal(err)
		}
		return path
	}

	python := writeStub("python", pythonStub)
	pip := writeStub("pip", pipStub)
	app := writeStub("app", appStub)

	t.Setenv("ENVUP_TEST_LOG", logPath)
	t.Setenv("ENVUP_TEST_PIP", pip)
	t.Setenv("ENVUP_TEST_APP", app)

	if err := os.WriteFile(filepath.Join(projectDir, "requirements.txt"), []byte("flask==3.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Defaults()
	cfg.Python = python

	fs := fsops.NewRealFS()
	runner := toolchain.NewRealRunner()

	eng := engine.New(
		toolchain.NewVenvManager(runner),
		toolchain.NewToolInstaller(runner),
		toolchain.NewProcessLauncher(runner),
		runner,
		fs,
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
		state.NewFileStateStore(fs, stateDir),
	)

	return &fixture{
		engine:     eng,
		projectDir: projectDir,
		cfg:        cfg,
		logPath:    logPath,
	}
}

// log returns the recorded tool invocations, one per line.
func (f *fixture) log(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(f.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}
