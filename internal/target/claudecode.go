package target

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

// ClaudeCodeAdapter manages Claude Code configuration. Servers live in the
// mcpServers map (~/.claude/settings.json globally, .mcp.json in a project);
// skills and workflows are materialized as markdown files under the .claude
// directory, which is where Claude Code discovers them.
type ClaudeCodeAdapter struct{}

func (c *ClaudeCodeAdapter) Name() string        { return "claude-code" }
func (c *ClaudeCodeAdapter) DisplayName() string { return "Claude Code" }
func (c *ClaudeCodeAdapter) Category() Category  { return CategoryCLI }

// ConfigPath resolves the server config file for the scope.
func (c *ClaudeCodeAdapter) ConfigPath(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".mcp.json"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// claudeDir resolves the .claude directory holding skills and commands.
func (c *ClaudeCodeAdapter) claudeDir(projectPath string) (string, error) {
	if projectPath != "" {
		return filepath.Join(projectPath, ".claude"), nil
	}
	home, err := userHome()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude"), nil
}

// ListEntries returns server names from the config plus skill and workflow
// names found under the .claude directory.
func (c *ClaudeCodeAdapter) ListEntries(projectPath string) ([]string, error) {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return nil, err
	}
	config, err := readJSONConfig(path)
	if err != nil {
		return nil, err
	}
	names := sectionNames(config, "mcpServers")

	dir, err := c.claudeDir(projectPath)
	if err != nil {
		return nil, err
	}

	if entries, err := os.ReadDir(filepath.Join(dir, "skills")); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	if entries, err := os.ReadDir(filepath.Join(dir, "commands")); err == nil {
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
				names = append(names, strings.TrimSuffix(e.Name(), ".md"))
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// UpsertEntry writes servers into mcpServers, skills as SKILL.md files, and
// workflows as command files. Provider artifacts have no home in Claude Code.
func (c *ClaudeCodeAdapter) UpsertEntry(a *artifact.Artifact, projectPath string) error {
	switch a.Type {
	case artifact.TypeServer:
		path, err := c.ConfigPath(projectPath)
		if err != nil {
			return err
		}
		return upsertServer(path, "mcpServers", a)
	case artifact.TypeSkill:
		return c.writeSkill(a, projectPath)
	case artifact.TypeWorkflow:
		return c.writeWorkflow(a, projectPath)
	default:
		return fmt.Errorf("%w: %s entries are not supported by Claude Code", artifact.ErrAdapterFailure, a.Type)
	}
}

// RemoveEntry deletes the entry wherever it lives: the mcpServers map, the
// skills directory, or the commands directory.
func (c *ClaudeCodeAdapter) RemoveEntry(name, projectPath string) error {
	path, err := c.ConfigPath(projectPath)
	if err != nil {
		return err
	}
	if err := removeEntry(path, "mcpServers", name); err != nil {
		return err
	}

	dir, err := c.claudeDir(projectPath)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(dir, "skills", name)); err != nil {
		return fmt.Errorf("%w: removing skill %s: %v", artifact.ErrAdapterFailure, name, err)
	}
	cmdFile := filepath.Join(dir, "commands", name+".md")
	if err := os.Remove(cmdFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing command %s: %v", artifact.ErrAdapterFailure, name, err)
	}
	return nil
}

func (c *ClaudeCodeAdapter) writeSkill(a *artifact.Artifact, projectPath string) error {
	if a.Skill == nil {
		return fmt.Errorf("%w: skill %q has no payload", artifact.ErrAdapterFailure, a.Name)
	}
	dir, err := c.claudeDir(projectPath)
	if err != nil {
		return err
	}

	skillDir := filepath.Join(dir, "skills", a.Name)
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", artifact.ErrAdapterFailure, skillDir, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("name: " + a.Name + "\n")
	if a.Skill.Description != "" {
		b.WriteString("description: " + a.Skill.Description + "\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimRight(a.Skill.Content, "\n") + "\n")

	file := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(file, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", artifact.ErrAdapterFailure, file, err)
	}
	return nil
}

func (c *ClaudeCodeAdapter) writeWorkflow(a *artifact.Artifact, projectPath string) error {
	if a.Workflow == nil {
		return fmt.Errorf("%w: workflow %q has no payload", artifact.ErrAdapterFailure, a.Name)
	}
	dir, err := c.claudeDir(projectPath)
	if err != nil {
		return err
	}

	cmdDir := filepath.Join(dir, "commands")
	if err := os.MkdirAll(cmdDir, 0755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", artifact.ErrAdapterFailure, cmdDir, err)
	}

	var b strings.Builder
	if a.Workflow.Description != "" {
		b.WriteString(a.Workflow.Description + "\n\n")
	}
	for i, step := range a.Workflow.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	file := filepath.Join(cmdDir, a.Name+".md")
	if err := os.WriteFile(file, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", artifact.ErrAdapterFailure, file, err)
	}
	return nil
}
