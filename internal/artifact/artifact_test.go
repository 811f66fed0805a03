package artifact

import (
	"errors"
	"testing"
)

func validServer() *Artifact {
	return &Artifact{
		ID:    NewID(),
		Name:  "github",
		Type:  TypeServer,
		Scope: ScopeGlobal,
		Server: &ServerPayload{
			Transport: "stdio",
			Command:   "npx",
			Args:      []string{"-y", "@modelcontextprotocol/server-github"},
		},
	}
}

func TestValidateServer(t *testing.T) {
	a := validServer()
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsMissingName(t *testing.T) {
	a := validServer()
	a.Name = "  "
	err := a.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestValidateRejectsPayloadTypeMismatch(t *testing.T) {
	a := validServer()
	a.Type = TypeSkill
	err := a.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestValidateRejectsMultiplePayloads(t *testing.T) {
	a := validServer()
	a.Skill = &SkillPayload{Content: "stray"}
	err := a.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestValidateScopeProjectConsistency(t *testing.T) {
	a := validServer()
	a.Scope = ScopeProject
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("project scope without project: err = %v, want ErrValidation", err)
	}

	a = validServer()
	a.Project = "demo"
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("global scope with project: err = %v, want ErrValidation", err)
	}
}

func TestValidateServerPayloadVersions(t *testing.T) {
	a := validServer()
	a.Server.Version = "1.2.3"
	a.Server.MinClientVersion = "v0.4.0"
	if err := a.Validate(); err != nil {
		t.Fatalf("Validate with versions: %v", err)
	}

	a.Server.Version = "not-a-version"
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad version: err = %v, want ErrValidation", err)
	}
}

func TestValidateServerNeedsCommandOrURL(t *testing.T) {
	a := validServer()
	a.Server.Command = ""
	a.Server.URL = ""
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	a.Server.URL = "https://example.com/mcp"
	if err := a.Validate(); err != nil {
		t.Fatalf("url-only server: %v", err)
	}
}

func TestValidateWorkflowSteps(t *testing.T) {
	a := &Artifact{
		ID:       NewID(),
		Name:     "release",
		Type:     TypeWorkflow,
		Scope:    ScopeGlobal,
		Workflow: &WorkflowPayload{Steps: []string{"run tests", ""}},
	}
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty step: err = %v, want ErrValidation", err)
	}

	a.Workflow.Steps = nil
	if err := a.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("no steps: err = %v, want ErrValidation", err)
	}
}

func TestKeyGroupsByScopeProjectType(t *testing.T) {
	a := validServer()
	b := validServer()
	if a.Key() != b.Key() {
		t.Fatalf("keys differ for same scope/project/type: %v vs %v", a.Key(), b.Key())
	}

	b.Scope = ScopeProject
	b.Project = "demo"
	if a.Key() == b.Key() {
		t.Fatal("keys equal across scopes")
	}
}

func TestParseTypeAndScope(t *testing.T) {
	if _, ok := ParseType("server"); !ok {
		t.Error("ParseType(server) = false, want true")
	}
	if _, ok := ParseType("plugin"); ok {
		t.Error("ParseType(plugin) = true, want false")
	}
	if _, ok := ParseScope("project"); !ok {
		t.Error("ParseScope(project) = false, want true")
	}
	if _, ok := ParseScope("workspace"); ok {
		t.Error("ParseScope(workspace) = true, want false")
	}
}
