package target

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// CodexAdapter manages Codex's config.toml, which keeps MCP entries as
// [mcp_servers.<name>] tables (~/.codex/config.toml globally,
// .codex/config.toml in a project).
type CodexAdapter struct{}

func (c *CodexAdapter) Name() string        { return "codex" }
func (c *CodexAdapter) DisplayName() string { return "Codex" }
func (c *CodexAdapter) Category() Category  { return CategoryCLI }

func (c *CodexAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".codex", "config.toml"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".codex", "config.toml"), nil
}

func (c *CodexAdapter) ListEntries(projectPath string) ([]string, error) {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return nil, err
	}
	config, err := readTOMLConfig(path)
	if err != nil {
		return nil, err
	}

	servers, ok := config["mcp_servers"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *CodexAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	if a.Type != artifact.TypeServer || a.Server == nil {
		return fmt.Errorf("%w: %s entries are not supported by Codex", artifact.ErrAdapterFailure, a.Type)
	}
	if a.Server.Command == "" {
		return fmt.Errorf("%w: Codex only supports stdio servers", artifact.ErrAdapterFailure)
	}

	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	config, err := readTOMLConfig(path)
	if err != nil {
		return err
	}

	servers, ok := config["mcp_servers"].(map[string]interface{})
	if !ok {
		servers = map[string]interface{}{}
		config["mcp_servers"] = servers
	}

	entry := map[string]interface{}{"command": a.Server.Command}
	if len(a.Server.Args) > 0 {
		entry["args"] = a.Server.Args
	}
	if len(a.Server.Env) > 0 {
		entry["env"] = a.Server.Env
	}
	servers[a.Name] = entry

	return writeTOMLConfig(path, config)
}

func (c *CodexAdapter) RemoveEntry(name, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	config, err := readTOMLConfig(path)
	if err != nil {
		return err
	}
	servers, ok := config["mcp_servers"].(map[string]interface{})
	if !ok {
		return nil
	}
	if _, ok := servers[name]; !ok {
		return nil
	}
	delete(servers, name)
	return writeTOMLConfig(path, config)
}

// readTOMLConfig loads a TOML config file into a generic map. A missing file
// yields an empty map.
func readTOMLConfig(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: reading %s", artifact.ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", artifact.ErrAdapterFailure, path, err)
	}

	config := map[string]interface{}{}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", artifact.ErrAdapterFailure, path, err)
	}
	return config, nil
}

// writeTOMLConfig writes the config back, creating the parent directory on
// first use.
func writeTOMLConfig(path string, config map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", artifact.ErrAdapterFailure, filepath.Dir(path), err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", artifact.ErrAdapterFailure, path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: writing %s", artifact.ErrPermissionDenied, path)
		}
		return fmt.Errorf("%w: writing %s: %v", artifact.ErrAdapterFailure, path, err)
	}
	return nil
}
