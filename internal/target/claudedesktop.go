package target

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// ClaudeDesktopAdapter manages the Claude Desktop app's mcpServers map.
// The desktop app has a single per-user config and no project-level file, so
// project scope is unsupported and the target is never project-sync-eligible.
type ClaudeDesktopAdapter struct{}

func (c *ClaudeDesktopAdapter) Name() string        { return "claude-desktop" }
func (c *ClaudeDesktopAdapter) DisplayName() string { return "Claude Desktop" }
func (c *ClaudeDesktopAdapter) Category() Category  { return CategoryDesktop }

// ConfigPath resolves claude_desktop_config.json in the platform config dir.
func (c *ClaudeDesktopAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return "", fmt.Errorf("%w: Claude Desktop has no project-scoped config", artifact.ErrNotFound)
	}

	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
	default:
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"), nil
	}
}

func (c *ClaudeDesktopAdapter) ListEntries(projectPath string) ([]string, error) {
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

func (c *ClaudeDesktopAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return upsertServer(path, "mcpServers", a)
}

func (c *ClaudeDesktopAdapter) RemoveEntry(name, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	return removeEntry(path, "mcpServers", name)
}
