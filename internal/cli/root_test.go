package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		// rootCmd is shared between tests; clear the sticky help flag so
		// later Execute calls don't print help again.
		if f := rootCmd.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	})

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("expected help output, got empty string")
	}
	if !strings.Contains(output, "envup") {
		t.Error("expected help to contain 'envup'")
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	// Cobra uses --version flag, not a version subcommand
	rootCmd.SetArgs([]string{"--version"})
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "1.2.3") && !strings.Contains(output, "dev") {
		t.Errorf("expected version output to contain version, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"invalid-command"})
	var buf bytes.Buffer
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"normal version", "1.2.3"},
		{"empty version", ""}, // Should not change if empty
		{"dev version", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if tt.version != "" && rootCmd.Version != tt.version {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, rootCmd.Version, tt.version)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{
		"run", "sync", "status", "init", "doctor", "clean", "version", "completion",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range subcommands {
		if !registered[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
