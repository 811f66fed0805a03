package target

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

func TestClaudeCodeServerGoesToSettings(t *testing.T) {
	home := setHome(t)
	c := &ClaudeCodeAdapter{}

	if err := c.UpsertEntry(githubServer(), ""); err != nil {
		t.Fatal(err)
	}

	config := readJSON(t, filepath.Join(home, ".claude", "settings.json"))
	if _, ok := config["mcpServers"].(map[string]interface{})["github"]; !ok {
		t.Error("server entry missing from settings.json")
	}
}

func TestClaudeCodeProjectServerGoesToMCPJSON(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	c := &ClaudeCodeAdapter{}

	if err := c.UpsertEntry(githubServer(), project); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(project, ".mcp.json")); err != nil {
		t.Errorf(".mcp.json not written: %v", err)
	}
}

func TestClaudeCodeSkillMaterialization(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	c := &ClaudeCodeAdapter{}

	skill := &artifact.Artifact{
		ID:      artifact.NewID(),
		Name:    "reviewer",
		Type:    artifact.TypeSkill,
		Scope:   artifact.ScopeProject,
		Project: project,
		Skill: &artifact.SkillPayload{
			Description: "Code review helper",
			Content:     "Review the diff for correctness.",
		},
	}
	if err := c.UpsertEntry(skill, project); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(project, ".claude", "skills", "reviewer", "SKILL.md"))
	if err != nil {
		t.Fatalf("SKILL.md not written: %v", err)
	}
	if !strings.Contains(string(data), "Review the diff") {
		t.Error("SKILL.md missing content")
	}
	if !strings.Contains(string(data), "description: Code review helper") {
		t.Error("SKILL.md missing description frontmatter")
	}
}

func TestClaudeCodeWorkflowMaterialization(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	c := &ClaudeCodeAdapter{}

	wf := &artifact.Artifact{
		ID:      artifact.NewID(),
		Name:    "release",
		Type:    artifact.TypeWorkflow,
		Scope:   artifact.ScopeProject,
		Project: project,
		Workflow: &artifact.WorkflowPayload{
			Description: "Cut a release",
			Steps:       []string{"run tests", "tag the commit"},
		},
	}
	if err := c.UpsertEntry(wf, project); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(project, ".claude", "commands", "release.md"))
	if err != nil {
		t.Fatalf("command file not written: %v", err)
	}
	if !strings.Contains(string(data), "1. run tests") {
		t.Error("command file missing numbered steps")
	}
}

func TestClaudeCodeListMergesAllEntryKinds(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	c := &ClaudeCodeAdapter{}

	if err := c.UpsertEntry(githubServer(), project); err != nil {
		t.Fatal(err)
	}
	skill := &artifact.Artifact{
		ID: artifact.NewID(), Name: "reviewer", Type: artifact.TypeSkill,
		Scope: artifact.ScopeProject, Project: project,
		Skill: &artifact.SkillPayload{Content: "review"},
	}
	if err := c.UpsertEntry(skill, project); err != nil {
		t.Fatal(err)
	}
	wf := &artifact.Artifact{
		ID: artifact.NewID(), Name: "release", Type: artifact.TypeWorkflow,
		Scope: artifact.ScopeProject, Project: project,
		Workflow: &artifact.WorkflowPayload{Steps: []string{"tag"}},
	}
	if err := c.UpsertEntry(wf, project); err != nil {
		t.Fatal(err)
	}

	names, err := c.ListEntries(project)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"github": true, "reviewer": true, "release": true}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want 3 entries", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected entry %q", n)
		}
	}
}

func TestClaudeCodeRemoveCleansEveryHome(t *testing.T) {
	setHome(t)
	project := t.TempDir()
	c := &ClaudeCodeAdapter{}

	skill := &artifact.Artifact{
		ID: artifact.NewID(), Name: "reviewer", Type: artifact.TypeSkill,
		Scope: artifact.ScopeProject, Project: project,
		Skill: &artifact.SkillPayload{Content: "review"},
	}
	if err := c.UpsertEntry(skill, project); err != nil {
		t.Fatal(err)
	}

	if err := c.RemoveEntry("reviewer", project); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if _, err := os.Stat(filepath.Join(project, ".claude", "skills", "reviewer")); !os.IsNotExist(err) {
		t.Error("skill directory still present after remove")
	}
}

func TestCodexUpsertAndRoundTrip(t *testing.T) {
	home := setHome(t)
	c := &CodexAdapter{}

	if err := c.UpsertEntry(githubServer(), ""); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	names, err := c.ListEntries("")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(names) != 1 || names[0] != "github" {
		t.Errorf("names = %v, want [github]", names)
	}

	data, err := os.ReadFile(filepath.Join(home, ".codex", "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "mcp_servers") {
		t.Error("config.toml missing mcp_servers table")
	}

	if err := c.RemoveEntry("github", ""); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	names, err = c.ListEntries("")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v after remove, want empty", names)
	}
}
