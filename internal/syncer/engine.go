package syncer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/store"
	"github.com/tooldock-labs/tooldock/internal/target"
)

// Result is the outcome of syncing one target. A sync call returns one
// Result per requested target, in input order.
type Result struct {
	Target  string `json:"target"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Engine reconciles registry artifacts onto target configs.
type Engine struct {
	store   store.Store
	targets *target.Registry
}

// New creates a sync engine over the given store and adapter registry.
func New(s store.Store, targets *target.Registry) *Engine {
	return &Engine{store: s, targets: targets}
}

// Sync writes the named artifacts into the named targets' configs. Unknown
// targets produce a failed result; unknown artifact names are reported in
// each target's message but do not fail the target. A store failure while
// resolving names aborts the whole call before any target is touched.
// Upserts are idempotent, so repeating a call leaves target files unchanged
// and succeeds again.
func (e *Engine) Sync(artifactNames, targetNames []string, sc artifact.Scope, project string) ([]Result, error) {
	if len(artifactNames) == 0 {
		return nil, fmt.Errorf("%w: no artifacts named", artifact.ErrValidation)
	}
	if len(targetNames) == 0 {
		return nil, fmt.Errorf("%w: no targets named", artifact.ErrValidation)
	}

	artifacts, missing, err := e.resolveArtifacts(artifactNames, sc, project)
	if err != nil {
		return nil, err
	}
	projectPath := adapterProject(sc, project)

	results := make([]Result, 0, len(targetNames))
	for _, targetName := range targetNames {
		results = append(results, e.syncOne(targetName, artifacts, missing, projectPath))
	}
	return results, nil
}

// syncOne applies every resolved artifact to a single target under its write
// lock and folds the outcome into one result.
func (e *Engine) syncOne(targetName string, artifacts []artifact.Artifact, missing []string, projectPath string) Result {
	adapter, err := e.targets.Get(targetName)
	if err != nil {
		return Result{Target: targetName, Success: false, Message: fmt.Sprintf("target %q not found", targetName)}
	}

	lock := e.targets.Lock(targetName)
	lock.Lock()
	defer lock.Unlock()

	var synced, failed []string
	for i := range artifacts {
		a := &artifacts[i]
		if err := adapter.UpsertEntry(a, projectPath); err != nil {
			failed = append(failed, fmt.Sprintf("%s (%v)", a.Name, err))
			continue
		}
		synced = append(synced, a.Name)
	}

	return foldResult(targetName, synced, failed, missing, "synced")
}

// RemoveFromTarget detaches one artifact from the named targets without
// touching the registry record. Same per-target isolation as Sync.
func (e *Engine) RemoveFromTarget(artifactName string, targetNames []string, sc artifact.Scope, project string) ([]Result, error) {
	if artifactName == "" {
		return nil, fmt.Errorf("%w: no artifact named", artifact.ErrValidation)
	}
	if len(targetNames) == 0 {
		return nil, fmt.Errorf("%w: no targets named", artifact.ErrValidation)
	}

	projectPath := adapterProject(sc, project)

	results := make([]Result, 0, len(targetNames))
	for _, targetName := range targetNames {
		adapter, err := e.targets.Get(targetName)
		if err != nil {
			results = append(results, Result{Target: targetName, Success: false, Message: fmt.Sprintf("target %q not found", targetName)})
			continue
		}

		lock := e.targets.Lock(targetName)
		lock.Lock()
		err = adapter.RemoveEntry(artifactName, projectPath)
		lock.Unlock()

		if err != nil {
			results = append(results, Result{Target: targetName, Success: false, Message: fmt.Sprintf("removing %s: %v", artifactName, err)})
			continue
		}
		results = append(results, Result{Target: targetName, Success: true, Message: fmt.Sprintf("removed %s", artifactName)})
	}
	return results, nil
}

// RefreshSources recomputes the derived Sources view for each artifact by
// asking every adapter what its config currently contains. Target state is
// authoritative; an adapter that fails to list simply contributes nothing.
func (e *Engine) RefreshSources(artifacts []artifact.Artifact, sc artifact.Scope, project string) []artifact.Artifact {
	projectPath := adapterProject(sc, project)

	membership := make(map[string][]string)
	for _, adapter := range e.targets.All() {
		entries, err := adapter.ListEntries(projectPath)
		if err != nil {
			continue
		}
		for _, name := range entries {
			membership[name] = append(membership[name], adapter.Name())
		}
	}

	result := make([]artifact.Artifact, len(artifacts))
	for i, a := range artifacts {
		a.Sources = membership[a.Name]
		result[i] = a
	}
	return result
}

// resolveArtifacts looks up each requested name across all artifact types in
// the scope. Names that resolve to nothing are returned separately; only
// artifact.ErrNotFound counts as missing. Any other store error (unreadable
// or corrupt registry) aborts resolution.
func (e *Engine) resolveArtifacts(names []string, sc artifact.Scope, project string) ([]artifact.Artifact, []string, error) {
	var found []artifact.Artifact
	var missing []string

	for _, name := range names {
		matched := false
		for _, t := range artifact.AllTypes() {
			key := artifact.Key{Scope: sc, Project: projectKey(sc, project), Type: t}
			a, err := e.store.Get(key, name)
			if err != nil {
				if errors.Is(err, artifact.ErrNotFound) {
					continue
				}
				return nil, nil, fmt.Errorf("resolving %q: %w", name, err)
			}
			found = append(found, *a)
			matched = true
		}
		if !matched {
			missing = append(missing, name)
		}
	}
	return found, missing, nil
}

// adapterProject maps the scope onto the project path handed to adapters:
// global scope always addresses the default config locations.
func adapterProject(sc artifact.Scope, project string) string {
	if sc == artifact.ScopeProject {
		return project
	}
	return ""
}

// projectKey mirrors adapterProject for store keys.
func projectKey(sc artifact.Scope, project string) string {
	if sc == artifact.ScopeProject {
		return project
	}
	return ""
}

// foldResult aggregates per-artifact outcomes into the single per-target result.
func foldResult(targetName string, ok, failed, missing []string, verb string) Result {
	var parts []string
	if len(ok) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", verb, strings.Join(ok, ", ")))
	}
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("skipped (not in registry): %s", strings.Join(missing, ", ")))
	}
	if len(failed) > 0 {
		parts = append(parts, fmt.Sprintf("failed: %s", strings.Join(failed, ", ")))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to do")
	}

	return Result{
		Target:  targetName,
		Success: len(failed) == 0,
		Message: strings.Join(parts, "; "),
	}
}
