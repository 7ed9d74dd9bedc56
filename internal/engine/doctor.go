package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/envup/internal/toolchain"
)

// Doctor verifies the toolchain a bootstrap would depend on: the interpreter
// is on PATH, its version parses and satisfies the configured constraint,
// and a manifest is present. Checks that fail do not abort the remaining
// checks; the result reports them all.
func (e *Engine) Doctor(ctx context.Context, req *DoctorRequest) (*DoctorResult, error) {
	result := &DoctorResult{Healthy: true}
	fail := func(name, detail string) {
		result.Checks = append(result.Checks, Check{Name: name, OK: false, Detail: detail})
		result.Healthy = false
	}
	pass := func(name, detail string) {
		result.Checks = append(result.Checks, Check{Name: name, OK: true, Detail: detail})
	}

	python := req.Config.Python
	pythonPath, err := e.runner.LookPath(python)
	if err != nil {
		fail("interpreter", fmt.Sprintf("%s not found on PATH", python))
	} else {
		pass("interpreter", pythonPath)
	}

	if err == nil {
		version, verr := toolchain.InterpreterVersion(ctx, e.runner, python)
		if verr != nil {
			fail("interpreter version", verr.Error())
		} else {
			pass("interpreter version", version.String())

			if req.Config.MinPython != "" {
				ok, cerr := toolchain.CheckConstraint(version, req.Config.MinPython)
				switch {
				case cerr != nil:
					fail("version constraint", cerr.Error())
				case ok:
					pass("version constraint", fmt.Sprintf("%s satisfies %q", version, req.Config.MinPython))
				default:
					fail("version constraint", fmt.Sprintf("%s does not satisfy %q", version, req.Config.MinPython))
				}
			}
		}
	}

	res, rerr := e.resolve(req.ProjectDir, req.Config)
	switch {
	case rerr == nil:
		pass("manifest", fmt.Sprintf("%s (%s)", res.manifest, res.info.Flavor))
	case errors.Is(rerr, ErrNoManifest):
		fail("manifest", rerr.Error())
	default:
		return nil, rerr
	}

	if res != nil {
		envExists, eerr := e.fs.IsDir(res.envDir)
		if eerr != nil {
			return nil, fmt.Errorf("failed to check environment directory: %w", eerr)
		}
		if envExists {
			pass("environment", res.envDir)
		} else {
			pass("environment", fmt.Sprintf("%s (will be created on next run)", res.envDir))
		}
	}

	return result, nil
}
