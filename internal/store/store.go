package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/branding"
	"go.yaml.in/yaml/v3"
)

// RegistryFile is the registry file name under the home dot-directory.
const RegistryFile = "registry.yaml"

// Store is the persistence contract the engines depend on.
type Store interface {
	// Artifacts returns records matching the type within the scope. An empty
	// type matches all types.
	Artifacts(t artifact.Type, scope artifact.Scope, project string) ([]artifact.Artifact, error)

	// Get returns the record with the given name within the key, or
	// artifact.ErrNotFound.
	Get(key artifact.Key, name string) (*artifact.Artifact, error)

	// Put inserts a new record or updates the record with the same ID.
	// Inserting a name that exists within the key fails with
	// artifact.ErrConflict.
	Put(a *artifact.Artifact) error

	// Delete removes the record with the given ID.
	Delete(id string) error

	// Rename changes the name of the record with the given ID in place.
	Rename(id, newName string) error
}

// DefaultPath returns the registry file path, honoring the
// TOOLDOCK_REGISTRY environment override.
func DefaultPath() (string, error) {
	if v := os.Getenv(branding.EnvVar("REGISTRY")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), RegistryFile), nil
}

// registryDoc is the top-level structure of the YAML registry file.
type registryDoc struct {
	Artifacts []artifact.Artifact `yaml:"artifacts"`
}

// load reads the registry document, treating a missing file as empty.
func load(path string) (*registryDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &registryDoc{}, nil
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: reading registry %s", artifact.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var doc registryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	return &doc, nil
}

// save writes the registry document back to disk, creating the parent
// directory on first use.
func save(path string, doc *registryDoc) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling registry: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: writing registry %s", artifact.ErrPermissionDenied, path)
		}
		return fmt.Errorf("writing registry %s: %w", path, err)
	}
	return nil
}
