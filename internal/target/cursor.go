package target

import (
	"fmt"
	"path/filepath"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// CursorAdapter manages Cursor's mcp.json (~/.cursor/mcp.json globally,
// .cursor/mcp.json in a project).
type CursorAdapter struct{}

func (c *CursorAdapter) Name() string        { return "cursor" }
func (c *CursorAdapter) DisplayName() string { return "Cursor" }
func (c *CursorAdapter) Category() Category  { return CategoryEditor }

func (c *CursorAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".cursor", "mcp.json"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".cursor", "mcp.json"), nil
}

func (c *CursorAdapter) ListEntries(projectPath string) ([]string, error) {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return nil, err
	}
	config, err := readJSONConfig(path)
	if err != nil {
		return nil, err
	}
	return sectionNames(config, "mcpServers"), nil
}

func (c *CursorAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return upsertServer(path, "mcpServers", a)
}

func (c *CursorAdapter) RemoveEntry(name, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return removeEntry(path, "mcpServers", name)
}
