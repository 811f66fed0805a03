package target

import (
	"fmt"
	"path/filepath"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// ZedAdapter manages Zed's settings.json, which keeps MCP entries under the
// "context_servers" key (~/.config/zed/settings.json globally,
// .zed/settings.json in a project).
type ZedAdapter struct{}

func (z *ZedAdapter) Name() string        { return "zed" }
func (z *ZedAdapter) DisplayName() string { return "Zed" }
func (z *ZedAdapter) Category() Category  { return CategoryEditor }

func (z *ZedAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".zed", "settings.json"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "zed", "settings.json"), nil
}

func (z *ZedAdapter) ListEntries(projectPath string) ([]string, error) {
	path, err := z.ConfigPath(projectPath)
	if err != nil {
		return nil, err
	}
	config, err := readJSONConfig(path)
	if err != nil {
		return nil, err
	}
	return sectionNames(config, "context_servers"), nil
}

func (z *ZedAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	path, err := z.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return upsertServer(path, "context_servers", a)
}

func (z *ZedAdapter) RemoveEntry(name, projectPath string) error {
	path, err := z.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return removeEntry(path, "context_servers", name)
}
