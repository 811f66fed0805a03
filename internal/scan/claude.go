package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"go.yaml.in/yaml/v3"
)

// ClaudeDetector finds Claude Code artifacts in a project: servers in
// .mcp.json, skills under .claude/skills/, and slash commands under
// .claude/commands/ (imported as workflows).
type ClaudeDetector struct{}

func (d *ClaudeDetector) Name() string { return "Claude Code" }

func (d *ClaudeDetector) Detect(dir string) ([]Candidate, error) {
	candidates, err := serversFromJSON(filepath.Join(dir, ".mcp.json"), "mcpServers", d.Name())
	if err != nil {
		return nil, err
	}

	candidates = append(candidates, d.detectSkills(dir)...)
	candidates = append(candidates, d.detectCommands(dir)...)
	return candidates, nil
}

// detectSkills reads .claude/skills/<name>/SKILL.md files. Unparseable
// skills are skipped; discovery is best-effort.
func (d *ClaudeDetector) detectSkills(dir string) []Candidate {
	skillsDir := filepath.Join(dir, ".claude", "skills")
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		return nil
	}

	var result []Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(skillsDir, entry.Name(), "SKILL.md"))
		if err != nil {
			continue
		}

		description, content := parseSkillMarkdown(string(data))
		if strings.TrimSpace(content) == "" {
			continue
		}
		result = append(result, Candidate{
			SourceLabel: d.Name(),
			Type:        artifact.TypeSkill,
			Name:        entry.Name(),
			Description: description,
			Content:     content,
		})
	}
	return result
}

// detectCommands reads .claude/commands/*.md files as workflows, turning
// numbered lines into steps.
func (d *ClaudeDetector) detectCommands(dir string) []Candidate {
	cmdDir := filepath.Join(dir, ".claude", "commands")
	entries, err := os.ReadDir(cmdDir)
	if err != nil {
		return nil
	}

	var result []Candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(cmdDir, entry.Name()))
		if err != nil {
			continue
		}

		description, steps := parseWorkflowMarkdown(string(data))
		if len(steps) == 0 {
			continue
		}
		result = append(result, Candidate{
			SourceLabel: d.Name(),
			Type:        artifact.TypeWorkflow,
			Name:        strings.TrimSuffix(entry.Name(), ".md"),
			Description: description,
			Steps:       steps,
		})
	}
	return result
}

// skillFrontmatter is the YAML block at the top of a SKILL.md file.
type skillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseSkillMarkdown splits an optional --- frontmatter block from the body.
func parseSkillMarkdown(text string) (description, content string) {
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return "", strings.TrimSpace(text)
	}
	front, body, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", strings.TrimSpace(text)
	}

	var fm skillFrontmatter
	if err := yaml.Unmarshal([]byte(front), &fm); err == nil {
		description = fm.Description
	}
	return description, strings.TrimSpace(body)
}

var stepLine = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)

// parseWorkflowMarkdown extracts numbered list lines as steps; everything
// above the first step becomes the description.
func parseWorkflowMarkdown(text string) (description string, steps []string) {
	var preamble []string
	for _, line := range strings.Split(text, "\n") {
		if m := stepLine.FindStringSubmatch(line); m != nil {
			steps = append(steps, strings.TrimSpace(m[1]))
			continue
		}
		if len(steps) == 0 && strings.TrimSpace(line) != "" {
			preamble = append(preamble, strings.TrimSpace(line))
		}
	}
	return strings.Join(preamble, " "), steps
}
