package registry

import (
	"fmt"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/store"
	"github.com/tooldock-labs/tooldock/internal/syncer"
)

// Service bundles the store with the sync engine needed to attach live
// source information to listings.
type Service struct {
	store  store.Store
	engine *syncer.Engine
}

// NewService creates the artifact service.
func NewService(s store.Store, engine *syncer.Engine) *Service {
	return &Service{store: s, engine: engine}
}

// Add validates and inserts a new artifact, minting an ID when absent.
// A name collision within the artifact's key fails with artifact.ErrConflict.
func (s *Service) Add(a *artifact.Artifact) error {
	if a.ID == "" {
		a.ID = artifact.NewID()
	}
	if err := a.Validate(); err != nil {
		return err
	}
	return s.store.Put(a)
}

// Get returns one artifact by name within a key.
func (s *Service) Get(key artifact.Key, name string) (*artifact.Artifact, error) {
	return s.store.Get(key, name)
}

// Remove deletes the named artifact from the registry. Copies of it already
// written into target configs are left alone; detaching them is a separate
// sync operation.
func (s *Service) Remove(key artifact.Key, name string) error {
	a, err := s.store.Get(key, name)
	if err != nil {
		return err
	}
	return s.store.Delete(a.ID)
}

// Rename changes an artifact's name in place. The record keeps its ID, so
// this is a rename, never a delete plus create.
func (s *Service) Rename(key artifact.Key, name, newName string) error {
	a, err := s.store.Get(key, name)
	if err != nil {
		return err
	}
	return s.store.Rename(a.ID, newName)
}

// List returns artifacts in the scope with their Sources recomputed from the
// target adapters. An empty type matches all types.
func (s *Service) List(t artifact.Type, sc artifact.Scope, project string) ([]artifact.Artifact, error) {
	artifacts, err := s.store.Artifacts(t, sc, project)
	if err != nil {
		return nil, err
	}
	return s.engine.RefreshSources(artifacts, sc, project), nil
}

// keyProject normalizes the project component of a key: global keys never
// carry a project.
func keyProject(sc artifact.Scope, project string) string {
	if sc == artifact.ScopeProject {
		return project
	}
	return ""
}

// typeOf reports the type of the named artifact in the scope, searching all
// types. Used when the caller knows only the name.
func (s *Service) typeOf(name string, sc artifact.Scope, project string) (artifact.Type, error) {
	for _, t := range artifact.AllTypes() {
		key := artifact.Key{Scope: sc, Project: keyProject(sc, project), Type: t}
		if _, err := s.store.Get(key, name); err == nil {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: artifact %q in %s scope", artifact.ErrNotFound, name, sc)
}

// Find resolves a name across all artifact types within a scope.
func (s *Service) Find(name string, sc artifact.Scope, project string) (*artifact.Artifact, error) {
	t, err := s.typeOf(name, sc, project)
	if err != nil {
		return nil, err
	}
	key := artifact.Key{Scope: sc, Project: keyProject(sc, project), Type: t}
	return s.store.Get(key, name)
}
