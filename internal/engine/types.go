package engine

import (
	"time"

	"github.com/danieljhkim/envup/internal/config"
	"github.com/danieljhkim/envup/internal/project"
)

// SyncRequest represents a request to ensure the environment exists and its
// dependencies are synchronized (bootstrap steps 1-3).
type SyncRequest struct {
	// ProjectDir is the project root directory.
	ProjectDir string

	// Config is the effective project configuration.
	Config *config.Project

	// DryRun performs planning only without making changes.
	DryRun bool

	// SkipUnchanged skips the install step when the manifest hash matches
	// the recorded sync state. Off by default: the installer runs every
	// time and idempotence is delegated to it.
	SkipUnchanged bool
}

// SyncResult represents the result of a sync.
type SyncResult struct {
	// Plan is the planned step sequence.
	Plan *Plan

	// EnvDir is the absolute environment directory.
	EnvDir string

	// Manifest is the absolute manifest path.
	Manifest string

	// Flavor is the detected project flavor.
	Flavor project.Flavor

	// Created indicates the environment was created by this sync.
	Created bool

	// Installed indicates the install step ran.
	Installed bool

	// ManifestHash is the manifest hash recorded after the sync.
	ManifestHash string
}

// RunRequest represents a request to run the full bootstrap sequence:
// ensure environment, synchronize dependencies, launch the entry point.
type RunRequest struct {
	// ProjectDir is the project root directory.
	ProjectDir string

	// Config is the effective project configuration.
	Config *config.Project

	// DryRun performs planning only without making changes.
	DryRun bool

	// SkipUnchanged skips the install step when the manifest is unchanged.
	SkipUnchanged bool

	// ExtraArgs are appended to the entry point arguments.
	ExtraArgs []string
}

// RunResult represents the result of a run. When the launch happens, the
// launch error (if any) carries the application's exit status.
type RunResult struct {
	// Sync is the result of the bootstrap steps.
	Sync *SyncResult

	// Command is the resolved entry point command.
	Command string

	// Args are the entry point arguments.
	Args []string
}

// StatusRequest represents a request for project bootstrap status.
type StatusRequest struct {
	// ProjectDir is the project root directory.
	ProjectDir string

	// Config is the effective project configuration.
	Config *config.Project
}

// StatusResult represents the current bootstrap status of a project.
type StatusResult struct {
	// ProjectDir is the absolute project root.
	ProjectDir string `json:"projectDir"`

	// EnvDir is the absolute environment directory.
	EnvDir string `json:"envDir"`

	// EnvExists indicates the environment directory is present.
	EnvExists bool `json:"envExists"`

	// Flavor is the detected project flavor.
	Flavor project.Flavor `json:"flavor"`

	// Manifest is the absolute manifest path (empty when none found).
	Manifest string `json:"manifest,omitempty"`

	// Synced indicates a recorded sync exists for this project.
	Synced bool `json:"synced"`

	// ManifestChanged indicates the manifest differs from the last sync.
	ManifestChanged bool `json:"manifestChanged"`

	// LastSync is when the last sync completed.
	LastSync time.Time `json:"lastSync,omitempty"`

	// Entrypoint is the configured entry point command.
	Entrypoint string `json:"entrypoint"`
}

// DoctorRequest represents a request to check the toolchain.
type DoctorRequest struct {
	// ProjectDir is the project root directory.
	ProjectDir string

	// Config is the effective project configuration.
	Config *config.Project
}

// Check is a single doctor verification.
type Check struct {
	// Name identifies the check.
	Name string `json:"name"`

	// OK indicates the check passed.
	OK bool `json:"ok"`

	// Detail describes the outcome.
	Detail string `json:"detail"`
}

// DoctorResult represents the outcome of all doctor checks.
type DoctorResult struct {
	// Checks are the individual verifications, in execution order.
	Checks []Check `json:"checks"`

	// Healthy indicates every check passed.
	Healthy bool `json:"healthy"`
}

// CleanRequest represents a request to remove the environment and recorded
// state.
type CleanRequest struct {
	// ProjectDir is the project root directory.
	ProjectDir string

	// Config is the effective project configuration.
	Config *config.Project
}

// CleanResult represents the result of a clean.
type CleanResult struct {
	// EnvDir is the environment directory that was targeted.
	EnvDir string `json:"envDir"`

	// RemovedEnv indicates the environment directory was removed.
	RemovedEnv bool `json:"removedEnv"`

	// RemovedState indicates recorded sync state was removed.
	RemovedState bool `json:"removedState"`
}
