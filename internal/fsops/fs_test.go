package fsops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	fs := NewRealFS()

	t.Run("writes file with content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := fs.AtomicWrite(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("content = %q, want %q", string(data), "hello")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "deep", "state.json")

		if err := fs.AtomicWrite(path, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("written file not found: %v", err)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := fs.AtomicWrite(path, []byte("old"), 0644); err != nil {
			t.Fatalf("first AtomicWrite() error = %v", err)
		}
		if err := fs.AtomicWrite(path, []byte("new"), 0644); err != nil {
			t.Fatalf("second AtomicWrite() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want %q", string(data), "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")

		if err := fs.AtomicWrite(path, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWrite() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".envup-tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestExists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "present")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := fs.Exists(path)
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if !got {
			t.Error("Exists() = false, want true")
		}
	})

	t.Run("missing path", func(t *testing.T) {
		got, err := fs.Exists(filepath.Join(dir, "absent"))
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if got {
			t.Error("Exists() = true, want false")
		}
	})
}

func TestIsDir(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	t.Run("directory", func(t *testing.T) {
		got, err := fs.IsDir(dir)
		if err != nil {
			t.Fatalf("IsDir() error = %v", err)
		}
		if !got {
			t.Error("IsDir() = false for a directory, want true")
		}
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(dir, "file")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := fs.IsDir(path)
		if err != nil {
			t.Fatalf("IsDir() error = %v", err)
		}
		if got {
			t.Error("IsDir() = true for a regular file, want false")
		}
	})

	t.Run("missing path is not an error", func(t *testing.T) {
		got, err := fs.IsDir(filepath.Join(dir, "absent"))
		if err != nil {
			t.Fatalf("IsDir() error = %v", err)
		}
		if got {
			t.Error("IsDir() = true for a missing path, want false")
		}
	})
}

func TestValidateRelPath(t *testing.T) {
	fs := NewRealFS()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple relative path", ".venv", false},
		{"nested relative path", "build/venv", false},
		{"empty path", "", true},
		{"current directory", ".", true},
		{"absolute path", "/usr/local/venv", true},
		{"parent traversal", "../outside", true},
		{"embedded traversal", "a/../../outside", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateRelPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	fs := NewRealFS()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"hex identifier", "a1b2c3", false},
		{"empty", "", true},
		{"contains slash", "a/b", true},
		{"contains backslash", `a\b`, true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
