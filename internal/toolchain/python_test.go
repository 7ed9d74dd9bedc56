package toolchain

import (
	"context"
	"testing"
)

func TestParseInterpreterVersion(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{"standard output", "Python 3.11.4\n", "3.11.4", false},
		{"two-component version", "Python 3.9\n", "3.9.0", false},
		{"release candidate", "Python 3.13.0rc1\n", "3.13.0", false},
		{"no version", "command not found\n", "", true},
		{"empty output", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseInterpreterVersion(tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInterpreterVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if v.String() != tt.want {
				t.Errorf("version = %q, want %q", v.String(), tt.want)
			}
		})
	}
}

func TestInterpreterVersion(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["python3"] = []byte("Python 3.12.1\n")

	v, err := InterpreterVersion(context.Background(), runner, "python3")
	if err != nil {
		t.Fatalf("InterpreterVersion() error = %v", err)
	}
	if v.String() != "3.12.1" {
		t.Errorf("version = %q, want 3.12.1", v.String())
	}

	if len(runner.runs) != 1 || runner.runs[0].Args[0] != "--version" {
		t.Errorf("expected a single --version invocation, got %v", runner.runs)
	}
}

func TestCheckConstraint(t *testing.T) {
	v, err := ParseInterpreterVersion("Python 3.11.4")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"satisfied minimum", ">= 3.9", true, false},
		{"unsatisfied minimum", ">= 3.12", false, false},
		{"range", ">= 3.9, < 4", true, false},
		{"invalid constraint", "not-a-constraint!", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckConstraint(v, tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckConstraint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CheckConstraint() = %v, want %v", got, tt.want)
			}
		})
	}
}
