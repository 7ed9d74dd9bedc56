package engine

import (
	"context"
	"testing"
)

func checkByName(t *testing.T, result *DoctorResult, name string) Check {
	t.Helper()
	for _, c := range result.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %+v", name, result.Checks)
	return Check{}
}

func TestDoctor_Healthy(t *testing.T) {
	te := newTestEnv(t)
	te.writeManifest(t, "flask==3.0.0\n")
	te.runner.paths["python3"] = "/usr/bin/python3"
	te.runner.outputs["python3"] = []byte("Python 3.11.4\n")
	te.cfg.MinPython = ">= 3.9"

	result, err := te.engine.Doctor(context.Background(), &DoctorRequest{
		ProjectDir: te.projectDir,
		Config:     te.cfg,
	})
	if err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	if !result.Healthy {
		t.Errorf("Healthy = false, checks: %+v", result.Checks)
	}
	if c := checkByName(t, result, "interpreter"); c.Detail != "/usr/bin/python3" {
		t.Errorf("interpreter detail = %q, want path", c.Detail)
	}
	if c := checkByName(t, result, "interpreter version"); c.Detail != "3.11.4" {
		t.Errorf("version detail = %q, want 3.11.4", c.Detail)
	}
	if c := checkByName(t, result, "version constraint"); !c.OK {
		t.Errorf("constraint check failed: %+v", c)
	}
}

func TestDoctor_MissingInterpreter(t *testing.T) {
	te := newTestEnv(t)
	te.writeManifest(t, "flask==3.0.0\n")
	// no python3 on the fake runner's PATH

	result, err := te.engine.Doctor(context.Background(), &DoctorRequest{
		ProjectDir: te.projectDir,
		Config:     te.cfg,
	})
	if err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	if result.Healthy {
		t.Error("Healthy = true with missing interpreter, want false")
	}
	if c := checkByName(t, result, "interpreter"); c.OK {
		t.Error("interpreter check passed with missing interpreter")
	}
}

func TestDoctor_ConstraintNotSatisfied(t *testing.T) {
	te := newTestEnv(t)
	te.writeManifest(t, "flask==3.0.0\n")
	te.runner.paths["python3"] = "/usr/bin/python3"
	te.runner.outputs["python3"] = []byte("Python 3.8.10\n")
	te.cfg.MinPython = ">= 3.9"

	result, err := te.engine.Doctor(context.Background(), &DoctorRequest{
		ProjectDir: te.projectDir,
		Config:     te.cfg,
	})
	if err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	if result.Healthy {
		t.Error("Healthy = true with unsatisfied constraint, want false")
	}
	if c := checkByName(t, result, "version constraint"); c.OK {
		t.Error("constraint check passed for 3.8.10 against >= 3.9")
	}
}

func TestDoctor_NoManifest(t *testing.T) {
	te := newTestEnv(t)
	te.runner.paths["python3"] = "/usr/bin/python3"
	te.runner.outputs["python3"] = []byte("Python 3.11.4\n")

	result, err := te.engine.Doctor(context.Background(), &DoctorRequest{
		ProjectDir: te.projectDir,
		Config:     te.cfg,
	})
	if err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	if result.Healthy {
		t.Error("Healthy = true without a manifest, want false")
	}
	if c := checkByName(t, result, "manifest"); c.OK {
		t.Error("manifest check passed without a manifest")
	}
}
