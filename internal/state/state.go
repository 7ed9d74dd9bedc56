// Package state manages recorded sync state persistence.
//
// After each successful dependency sync, envup records what it synchronized:
// the environment directory, the manifest and its hash, and the interpreter.
// The record is what `envup status` reports against and what the opt-in
// skip-unchanged fast path consults. State is persisted as JSON files under
// the envup state root, keyed by a fingerprint of the project path.
package state

import "time"

// SyncState is the record of the last successful dependency sync for a
// project.
type SyncState struct {
	// ProjectDir is the absolute path of the project root.
	ProjectDir string `json:"projectDir"`

	// EnvDir is the absolute path of the environment directory.
	EnvDir string `json:"envDir"`

	// Manifest is the absolute path of the dependency manifest.
	Manifest string `json:"manifest"`

	// ManifestHash is the SHA-256 hash of the manifest at sync time.
	ManifestHash string `json:"manifestHash"`

	// Flavor is the detected project flavor ("pip", "uv", "poetry").
	Flavor string `json:"flavor"`

	// Python is the interpreter the environment was created with.
	Python string `json:"python"`

	// LastSync is when the sync completed.
	LastSync time.Time `json:"lastSync"`
}

// NewSyncState creates a new SyncState for a project.
func NewSyncState(projectDir, envDir string) *SyncState {
	return &SyncState{
		ProjectDir: projectDir,
		EnvDir:     envDir,
	}
}
