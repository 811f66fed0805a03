package scope

import (
	"fmt"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/store"
	"github.com/tooldock-labs/tooldock/internal/target"
)

// View is the effective state for one scope: the registry records in it and
// the live target descriptors for it.
type View struct {
	Artifacts []artifact.Artifact `json:"artifacts"`
	Targets   []target.Descriptor `json:"targets"`
}

// Resolver produces scope views from the store and the adapter registry.
type Resolver struct {
	store   store.Store
	targets *target.Registry
}

// NewResolver creates a resolver over the given store and adapter registry.
func NewResolver(s store.Store, targets *target.Registry) *Resolver {
	return &Resolver{store: s, targets: targets}
}

// Resolve returns the artifact and target view for the scope. Project scope
// with an empty project is the valid "nothing selected yet" state and yields
// an empty view, not an error. Target descriptors are computed live from the
// adapters, so configExists and entryCount reflect the files on disk.
func (r *Resolver) Resolve(s artifact.Scope, project string) (*View, error) {
	if _, ok := artifact.ParseScope(string(s)); !ok {
		return nil, fmt.Errorf("%w: unknown scope %q", artifact.ErrValidation, s)
	}

	if s == artifact.ScopeProject && project == "" {
		return &View{}, nil
	}

	projectPath := ""
	if s == artifact.ScopeProject {
		projectPath = project
	}

	artifacts, err := r.store.Artifacts("", s, project)
	if err != nil {
		return nil, fmt.Errorf("listing %s artifacts: %w", s, err)
	}

	return &View{
		Artifacts: artifacts,
		Targets:   r.targets.Describe(projectPath),
	}, nil
}

// Eligible returns the sync-eligible targets of a view: those whose config
// file exists. Ineligible targets stay visible in the view for discovery.
func (v *View) Eligible() []target.Descriptor {
	var result []target.Descriptor
	for _, d := range v.Targets {
		if d.ConfigExists {
			result = append(result, d)
		}
	}
	return result
}
