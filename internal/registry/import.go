package registry

import (
	"fmt"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// ImportOutcome is the per-name result of a bulk import.
type ImportOutcome struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ImportFromGlobal copies a global artifact's payload into project scope
// under the same name with a fresh ID. Fails with artifact.ErrConflict when
// the destination project already has an artifact of that name, leaving the
// destination unchanged.
func (s *Service) ImportFromGlobal(name, project string) error {
	if project == "" {
		return fmt.Errorf("%w: destination project is required", artifact.ErrValidation)
	}

	src, err := s.Find(name, artifact.ScopeGlobal, "")
	if err != nil {
		return err
	}

	destKey := artifact.Key{Scope: artifact.ScopeProject, Project: project, Type: src.Type}
	if _, err := s.store.Get(destKey, name); err == nil {
		return fmt.Errorf("%w: %s %q already exists in project", artifact.ErrConflict, src.Type, name)
	}

	dest := *src
	dest.ID = artifact.NewID()
	dest.Scope = artifact.ScopeProject
	dest.Project = project
	dest.Sources = nil
	return s.store.Put(&dest)
}

// BulkImportFromGlobal imports each name independently; one failure never
// blocks the rest.
func (s *Service) BulkImportFromGlobal(names []string, project string) []ImportOutcome {
	results := make([]ImportOutcome, 0, len(names))
	for _, name := range names {
		if err := s.ImportFromGlobal(name, project); err != nil {
			results = append(results, ImportOutcome{Name: name, Success: false, Message: err.Error()})
			continue
		}
		results = append(results, ImportOutcome{Name: name, Success: true})
	}
	return results
}
