package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/envup/internal/state"
	"github.com/danieljhkim/envup/internal/toolchain"
)

// Sync ensures the environment exists and its dependencies are synchronized.
//
// Algorithm steps:
//  1. Resolve project paths, flavor, and manifest
//  2. Existence check on the environment directory (existence alone gates
//     creation; an existing directory is assumed valid)
//  3. Create the environment if absent
//  4. Install dependencies from the manifest (always, unless SkipUnchanged
//     matched the recorded manifest hash)
//  5. Record the sync state
//
// The first failing step aborts the sequence; the failing tool's exit
// status is carried on the returned error.
func (e *Engine) Sync(ctx context.Context, req *SyncRequest) (*SyncResult, error) {
	res, err := e.resolve(req.ProjectDir, req.Config)
	if err != nil {
		return nil, err
	}

	envExists, err := e.fs.IsDir(res.envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to check environment directory: %w", err)
	}

	manifestHash, err := e.hasher.HashFile(res.manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to hash manifest: %w", err)
	}

	skipInstall := false
	if req.SkipUnchanged && envExists {
		st, err := e.loadState(res.id)
		if err != nil {
			return nil, err
		}
		skipInstall = st != nil && st.ManifestHash == manifestHash
	}

	plan := &Plan{}
	if envExists {
		plan.skip(StepCreateEnv, res.envDir, "environment already exists")
	} else {
		plan.add(StepCreateEnv, res.envDir)
	}
	if skipInstall {
		plan.skip(StepInstall, res.manifest, "manifest unchanged since last sync")
	} else {
		plan.add(StepInstall, res.manifest)
	}

	result := &SyncResult{
		Plan:         plan,
		EnvDir:       res.envDir,
		Manifest:     res.manifest,
		Flavor:       res.info.Flavor,
		ManifestHash: manifestHash,
	}

	if req.DryRun {
		return result, nil
	}

	if !envExists {
		if err := e.envMgr.Create(ctx, res.cfg.Python, res.envDir); err != nil {
			return result, fmt.Errorf("failed to create environment: %w", err)
		}
		result.Created = true
	}

	if !skipInstall {
		if err := e.installer.Install(ctx, toolchain.InstallSpec{
			Flavor:     res.info.Flavor,
			ProjectDir: res.projectDir,
			EnvDir:     res.envDir,
			Manifest:   res.manifest,
		}); err != nil {
			return result, fmt.Errorf("failed to install dependencies: %w", err)
		}
		result.Installed = true
	}

	st := state.NewSyncState(res.projectDir, res.envDir)
	st.Manifest = res.manifest
	st.ManifestHash = manifestHash
	st.Flavor = string(res.info.Flavor)
	st.Python = res.cfg.Python
	st.LastSync = e.clock.Now()

	if err := e.states.Save(res.id, st); err != nil {
		return result, fmt.Errorf("failed to record sync state: %w", err)
	}

	return result, nil
}
