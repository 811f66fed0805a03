package target

import (
	"fmt"
	"path/filepath"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// VSCodeAdapter manages VS Code's mcp.json, which uses a "servers" map
// (~/.vscode/mcp.json globally, .vscode/mcp.json in a project).
type VSCodeAdapter struct{}

func (v *VSCodeAdapter) Name() string        { return "vscode" }
func (v *VSCodeAdapter) DisplayName() string { return "VS Code" }
func (v *VSCodeAdapter) Category() Category  { return CategoryEditor }

func (v *VSCodeAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".vscode", "mcp.json"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".vscode", "mcp.json"), nil
}

func (v *VSCodeAdapter) ListEntries(projectPath string) ([]string, error) {
	path, err := v.ConfigPath(projectPath)
	if err != nil {
		return nil, err
	}
	config, err := readJSONConfig(path)
	if err != nil {
		return nil, err
	}
	return sectionNames(config, "servers"), nil
}

func (v *VSCodeAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	path, err := v.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return upsertServer(path, "servers", a)
}

func (v *VSCodeAdapter) RemoveEntry(name, projectPath string) error {
	path, err := v.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return removeEntry(path, "servers", name)
}
