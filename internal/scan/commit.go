package scan

import (
	"fmt"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/store"
)

// ImportError records one candidate that could not be committed.
type ImportError struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report summarizes a commit: how many candidates landed and which failed.
type Report struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// Importable filters out candidates whose name already exists in the
// destination collection. The filtering happens before candidates are shown
// as selectable, so an import can never silently clobber an existing record.
func Importable(candidates []Candidate, existing []artifact.Artifact) []Candidate {
	taken := make(map[string]bool, len(existing))
	for _, a := range existing {
		taken[a.Name] = true
	}

	result := []Candidate{}
	for _, c := range candidates {
		if taken[c.Name] {
			continue
		}
		result = append(result, c)
	}
	return result
}

// Commit adds each selected candidate to the registry under the destination
// scope. One candidate failing (invalid payload, late name conflict) is
// recorded and does not block the rest.
func Commit(s store.Store, selected []Candidate, sc artifact.Scope, project string) Report {
	var report Report
	for _, c := range selected {
		a := c.Artifact(sc, project)
		if err := a.Validate(); err != nil {
			report.Errors = append(report.Errors, ImportError{Name: c.Name, Reason: err.Error()})
			continue
		}
		if err := s.Put(a); err != nil {
			report.Errors = append(report.Errors, ImportError{Name: c.Name, Reason: err.Error()})
			continue
		}
		report.Imported++
	}
	return report
}

// CommitError renders the report's failures as a single error, or nil when
// every candidate imported.
func (r Report) CommitError() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d candidates failed to import", len(r.Errors), r.Imported+len(r.Errors))
}
