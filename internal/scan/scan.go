package scan

import (
	"fmt"
	"os"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// Candidate is one foreign artifact found by a detector, not yet a registry
// record. The payload fields mirror the artifact payloads; which are set
// depends on Type.
type Candidate struct {
	SourceLabel string        `json:"sourceLabel"`
	Type        artifact.Type `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`

	Content string                  `json:"content,omitempty"`
	Steps   []string                `json:"steps,omitempty"`
	Server  *artifact.ServerPayload `json:"server,omitempty"`
}

// Artifact converts the candidate into a registry record for the destination
// scope, minting a fresh ID.
func (c *Candidate) Artifact(sc artifact.Scope, project string) *artifact.Artifact {
	a := &artifact.Artifact{
		ID:    artifact.NewID(),
		Name:  c.Name,
		Type:  c.Type,
		Scope: sc,
	}
	if sc == artifact.ScopeProject {
		a.Project = project
	}

	switch c.Type {
	case artifact.TypeServer:
		a.Server = c.Server
	case artifact.TypeSkill:
		a.Skill = &artifact.SkillPayload{Description: c.Description, Content: c.Content}
	case artifact.TypeWorkflow:
		a.Workflow = &artifact.WorkflowPayload{Description: c.Description, Steps: c.Steps}
	}
	return a
}

// Detector extracts candidates for one known foreign tool format.
type Detector interface {
	// Name labels the detector's tool in candidate SourceLabel fields.
	Name() string

	// Detect returns the candidates found under dir. Returning an error is
	// allowed; the scanner treats it as zero candidates.
	Detect(dir string) ([]Candidate, error)
}

// Scanner runs a fixed detector set over a directory.
type Scanner struct {
	detectors []Detector
}

// NewScanner creates a scanner with the given detectors, in order.
func NewScanner(detectors ...Detector) *Scanner {
	return &Scanner{detectors: detectors}
}

// DefaultScanner returns the scanner with all shipped detectors.
func DefaultScanner() *Scanner {
	return NewScanner(
		&ClaudeDetector{},
		&CursorDetector{},
		&VSCodeDetector{},
		&CodexDetector{},
	)
}

// Scan walks the directory with every detector. A missing path fails with
// artifact.ErrNotFound and an unreadable one with artifact.ErrPermissionDenied;
// past that, scanning is best-effort discovery: detector failures (including
// panics) are swallowed and a directory with nothing recognizable yields an
// empty list. Duplicate names across detectors keep the first hit.
func (s *Scanner) Scan(dir string) ([]Candidate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory %s", artifact.ErrNotFound, dir)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: directory %s", artifact.ErrPermissionDenied, dir)
		}
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", artifact.ErrNotFound, dir)
	}
	if _, err := os.ReadDir(dir); err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: directory %s", artifact.ErrPermissionDenied, dir)
		}
	}

	seen := make(map[string]bool)
	result := []Candidate{}
	for _, d := range s.detectors {
		for _, c := range detect(d, dir) {
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			result = append(result, c)
		}
	}
	return result, nil
}

// detect runs one detector, converting errors and panics into zero candidates.
func detect(d Detector, dir string) (candidates []Candidate) {
	defer func() {
		if r := recover(); r != nil {
			candidates = nil
		}
	}()

	candidates, err := d.Detect(dir)
	if err != nil {
		return nil
	}
	return candidates
}
