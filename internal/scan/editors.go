package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// CursorDetector finds MCP servers in a project's .cursor/mcp.json.
type CursorDetector struct{}

func (d *CursorDetector) Name() string { return "Cursor" }

func (d *CursorDetector) Detect(dir string) ([]Candidate, error) {
	return serversFromJSON(filepath.Join(dir, ".cursor", "mcp.json"), "mcpServers", d.Name())
}

// VSCodeDetector finds MCP servers in a project's .vscode/mcp.json.
type VSCodeDetector struct{}

func (d *VSCodeDetector) Name() string { return "VS Code" }

func (d *VSCodeDetector) Detect(dir string) ([]Candidate, error) {
	return serversFromJSON(filepath.Join(dir, ".vscode", "mcp.json"), "servers", d.Name())
}

// CodexDetector finds MCP servers in a project's .codex/config.toml.
type CodexDetector struct{}

func (d *CodexDetector) Name() string { return "Codex" }

func (d *CodexDetector) Detect(dir string) ([]Candidate, error) {
	path := filepath.Join(dir, ".codex", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config map[string]interface{}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
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

	var result []Candidate
	for _, name := range names {
		entry, ok := servers[name].(map[string]interface{})
		if !ok {
			continue
		}
		payload := serverPayloadFromEntry(entry)
		if payload == nil {
			continue
		}
		result = append(result, Candidate{
			SourceLabel: d.Name(),
			Type:        artifact.TypeServer,
			Name:        name,
			Server:      payload,
		})
	}
	return result, nil
}
