package target

import (
	"os"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/branding"
)

// Category classifies a target tool.
type Category string

const (
	CategoryEditor  Category = "editor"
	CategoryDesktop Category = "desktop"
	CategoryCLI     Category = "cli"
	CategoryPlugin  Category = "plugin"
)

// Descriptor is the computed view of one target for a given scope. Targets
// whose config file does not exist are not sync-eligible but stay visible.
type Descriptor struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"displayName"`
	Category     Category `json:"category"`
	ConfigPath   string   `json:"configPath"`
	ConfigExists bool     `json:"configExists"`
	EntryCount   int      `json:"entryCount"`
}

// Adapter is the contract a tool integration must satisfy. An empty
// projectPath addresses the tool's global config; a non-empty one addresses
// the project-local config. UpsertEntry is an idempotent upsert: writing an
// entry that is already present succeeds and leaves the file unchanged.
type Adapter interface {
	Name() string
	DisplayName() string
	Category() Category

	// ConfigPath resolves the config file this adapter writes for the scope.
	ConfigPath(projectPath string) (string, error)

	// ListEntries returns the artifact names currently present in the config.
	// A missing config file yields an empty list, not an error.
	ListEntries(projectPath string) ([]string, error)

	// UpsertEntry writes the artifact into the config. Adapters may reject
	// artifact types their tool has no home for.
	UpsertEntry(a *artifact.Artifact, projectPath string) error

	// RemoveEntry deletes the named entry. Removing an absent entry is a no-op.
	RemoveEntry(name, projectPath string) error
}

// Describe computes the live descriptor for an adapter at a scope.
func Describe(a Adapter, projectPath string) Descriptor {
	d := Descriptor{
		Name:        a.Name(),
		DisplayName: a.DisplayName(),
		Category:    a.Category(),
	}

	path, err := a.ConfigPath(projectPath)
	if err != nil {
		return d
	}
	d.ConfigPath = path

	if _, err := os.Stat(path); err == nil {
		d.ConfigExists = true
	}

	entries, err := a.ListEntries(projectPath)
	if err == nil {
		d.EntryCount = len(entries)
	}
	return d
}

// userHome resolves the home directory, honoring the TOOLDOCK_HOME override
// so tests and sandboxed installs can redirect adapter config paths.
func userHome() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	return os.UserHomeDir()
}
