package artifact

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Type classifies an artifact record.
type Type string

const (
	TypeServer   Type = "server"
	TypeSkill    Type = "skill"
	TypeWorkflow Type = "workflow"
	TypeProvider Type = "llm_provider"
)

// AllTypes returns every artifact type in display order.
func AllTypes() []Type {
	return []Type{TypeServer, TypeSkill, TypeWorkflow, TypeProvider}
}

// ParseType converts a string to a Type, returning false if invalid.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeServer, TypeSkill, TypeWorkflow, TypeProvider:
		return Type(s), true
	default:
		return "", false
	}
}

// Scope determines whether an artifact is shared across projects or bound to one.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeProject Scope = "project"
)

// ParseScope converts a string to a Scope, returning false if invalid.
func ParseScope(s string) (Scope, bool) {
	switch Scope(s) {
	case ScopeGlobal, ScopeProject:
		return Scope(s), true
	default:
		return "", false
	}
}

// Key is the composite partition key under which artifact names are unique.
type Key struct {
	Scope   Scope
	Project string
	Type    Type
}

// Artifact is a single registry record. Exactly one payload pointer is set,
// matching Type. Sources is a derived view of which targets currently carry
// the artifact; it is recomputed from target adapters and never persisted.
type Artifact struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Type    Type   `yaml:"type" json:"type"`
	Scope   Scope  `yaml:"scope" json:"scope"`
	Project string `yaml:"project,omitempty" json:"project,omitempty"`

	Server   *ServerPayload   `yaml:"server,omitempty" json:"server,omitempty"`
	Skill    *SkillPayload    `yaml:"skill,omitempty" json:"skill,omitempty"`
	Workflow *WorkflowPayload `yaml:"workflow,omitempty" json:"workflow,omitempty"`
	Provider *ProviderPayload `yaml:"llm_provider,omitempty" json:"llm_provider,omitempty"`

	Sources []string `yaml:"-" json:"sources,omitempty"`
}

// ServerPayload describes an MCP server definition (stdio or HTTP transport).
type ServerPayload struct {
	Transport        string            `yaml:"transport,omitempty" json:"transport,omitempty"`
	Command          string            `yaml:"command,omitempty" json:"command,omitempty"`
	Args             []string          `yaml:"args,omitempty" json:"args,omitempty"`
	Env              map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	URL              string            `yaml:"url,omitempty" json:"url,omitempty"`
	Headers          map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Version          string            `yaml:"version,omitempty" json:"version,omitempty"`
	MinClientVersion string            `yaml:"min_client_version,omitempty" json:"min_client_version,omitempty"`
}

// SkillPayload describes a reusable prompt/behavior snippet.
type SkillPayload struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Content     string `yaml:"content" json:"content"`
}

// WorkflowPayload describes an ordered multi-step instruction set.
type WorkflowPayload struct {
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []string `yaml:"steps" json:"steps"`
}

// ProviderPayload describes an LLM provider configuration.
type ProviderPayload struct {
	Provider  string `yaml:"provider" json:"provider"`
	Model     string `yaml:"model,omitempty" json:"model,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty" json:"api_key_env,omitempty"`
}

// Key returns the partition key the artifact's name is unique within.
func (a *Artifact) Key() Key {
	return Key{Scope: a.Scope, Project: a.Project, Type: a.Type}
}

// Validate checks structural invariants: name and type are set, the scope is
// consistent with the project field, and exactly the payload matching Type is
// present and itself valid.
func (a *Artifact) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: artifact name is required", ErrValidation)
	}
	if _, ok := ParseType(string(a.Type)); !ok {
		return fmt.Errorf("%w: unknown artifact type %q", ErrValidation, a.Type)
	}
	if _, ok := ParseScope(string(a.Scope)); !ok {
		return fmt.Errorf("%w: unknown scope %q", ErrValidation, a.Scope)
	}
	if a.Scope == ScopeProject && a.Project == "" {
		return fmt.Errorf("%w: project-scoped artifact %q has no project", ErrValidation, a.Name)
	}
	if a.Scope == ScopeGlobal && a.Project != "" {
		return fmt.Errorf("%w: global artifact %q carries a project %q", ErrValidation, a.Name, a.Project)
	}

	set := 0
	if a.Server != nil {
		set++
	}
	if a.Skill != nil {
		set++
	}
	if a.Workflow != nil {
		set++
	}
	if a.Provider != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: artifact %q must carry exactly one payload, has %d", ErrValidation, a.Name, set)
	}

	switch a.Type {
	case TypeServer:
		if a.Server == nil {
			return fmt.Errorf("%w: artifact %q has type server but no server payload", ErrValidation, a.Name)
		}
		return a.Server.Validate()
	case TypeSkill:
		if a.Skill == nil {
			return fmt.Errorf("%w: artifact %q has type skill but no skill payload", ErrValidation, a.Name)
		}
		return a.Skill.Validate()
	case TypeWorkflow:
		if a.Workflow == nil {
			return fmt.Errorf("%w: artifact %q has type workflow but no workflow payload", ErrValidation, a.Name)
		}
		return a.Workflow.Validate()
	case TypeProvider:
		if a.Provider == nil {
			return fmt.Errorf("%w: artifact %q has type llm_provider but no llm_provider payload", ErrValidation, a.Name)
		}
		return a.Provider.Validate()
	}
	return nil
}

// Validate checks that the server payload names a runnable transport and that
// any version fields parse as semver.
func (p *ServerPayload) Validate() error {
	if p.Command == "" && p.URL == "" {
		return fmt.Errorf("%w: server payload needs a command or a url", ErrValidation)
	}
	for _, v := range []string{p.Version, p.MinClientVersion} {
		if v == "" {
			continue
		}
		if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err != nil {
			return fmt.Errorf("%w: invalid version %q: %v", ErrValidation, v, err)
		}
	}
	return nil
}

// Validate checks that the skill carries content.
func (p *SkillPayload) Validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("%w: skill payload needs content", ErrValidation)
	}
	return nil
}

// Validate checks that the workflow has at least one non-empty step.
func (p *WorkflowPayload) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: workflow payload needs at least one step", ErrValidation)
	}
	for i, s := range p.Steps {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: workflow step %d is empty", ErrValidation, i+1)
		}
	}
	return nil
}

// Validate checks that the provider is named.
func (p *ProviderPayload) Validate() error {
	if p.Provider == "" {
		return fmt.Errorf("%w: llm_provider payload needs a provider", ErrValidation)
	}
	return nil
}
