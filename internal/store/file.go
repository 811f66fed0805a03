package store

import (
	"fmt"
	"sync"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// FileStore persists the registry as a single YAML document. A mutex guards
// the whole read-modify-write cycle; the uniqueness constraint is enforced at
// write time, under the lock.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the YAML file at path. The file is
// created lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Artifacts returns records matching the type within the scope. An empty type
// matches all types. Project-scoped queries match the project exactly.
func (s *FileStore) Artifacts(t artifact.Type, scope artifact.Scope, project string) ([]artifact.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load(s.path)
	if err != nil {
		return nil, err
	}

	var result []artifact.Artifact
	for _, a := range doc.Artifacts {
		if a.Scope != scope {
			continue
		}
		if scope == artifact.ScopeProject && a.Project != project {
			continue
		}
		if t != "" && a.Type != t {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

// Get returns the record with the given name within the key.
func (s *FileStore) Get(key artifact.Key, name string) (*artifact.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load(s.path)
	if err != nil {
		return nil, err
	}

	for i := range doc.Artifacts {
		a := &doc.Artifacts[i]
		if a.Key() == key && a.Name == name {
			rec := *a
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", artifact.ErrNotFound, key.Type, name)
}

// Put inserts a new record or updates the record with the same ID. An insert
// whose name collides within the key fails with artifact.ErrConflict; the
// same name under a different type, scope, or project is allowed.
func (s *FileStore) Put(a *artifact.Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		return fmt.Errorf("%w: artifact %q has no id", artifact.ErrValidation, a.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load(s.path)
	if err != nil {
		return err
	}

	existing := -1
	for i := range doc.Artifacts {
		other := &doc.Artifacts[i]
		if other.ID == a.ID {
			existing = i
			continue
		}
		if other.Key() == a.Key() && other.Name == a.Name {
			return fmt.Errorf("%w: %s %q in %s scope", artifact.ErrConflict, a.Type, a.Name, a.Scope)
		}
	}

	if existing >= 0 {
		doc.Artifacts[existing] = *a
	} else {
		doc.Artifacts = append(doc.Artifacts, *a)
	}
	return save(s.path, doc)
}

// Delete removes the record with the given ID.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load(s.path)
	if err != nil {
		return err
	}

	for i := range doc.Artifacts {
		if doc.Artifacts[i].ID == id {
			doc.Artifacts = append(doc.Artifacts[:i], doc.Artifacts[i+1:]...)
			return save(s.path, doc)
		}
	}
	return fmt.Errorf("%w: artifact id %q", artifact.ErrNotFound, id)
}

// Rename changes the record's name in place. Identity is the ID; no new
// record is created. Fails with artifact.ErrConflict if the new name is
// taken within the record's key.
func (s *FileStore) Rename(id, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: new name is empty", artifact.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := load(s.path)
	if err != nil {
		return err
	}

	target := -1
	for i := range doc.Artifacts {
		if doc.Artifacts[i].ID == id {
			target = i
			break
		}
	}
	if target < 0 {
		return fmt.Errorf("%w: artifact id %q", artifact.ErrNotFound, id)
	}

	key := doc.Artifacts[target].Key()
	for i := range doc.Artifacts {
		if i == target {
			continue
		}
		if doc.Artifacts[i].Key() == key && doc.Artifacts[i].Name == newName {
			return fmt.Errorf("%w: %s %q in %s scope", artifact.ErrConflict, key.Type, newName, key.Scope)
		}
	}

	doc.Artifacts[target].Name = newName
	return save(s.path, doc)
}
