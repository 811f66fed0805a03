package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func seedProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, ".mcp.json"), `{
  "mcpServers": {
    "github": {"command": "npx", "args": ["-y", "@modelcontextprotocol/server-github"]},
    "remote": {"type": "sse", "url": "https://example.com/sse"}
  }
}`)
	writeFile(t, filepath.Join(dir, ".claude", "skills", "reviewer", "SKILL.md"), `---
name: reviewer
description: Code review helper
---

Review the diff for correctness.
`)
	writeFile(t, filepath.Join(dir, ".claude", "commands", "release.md"), `Cut a release.

1. run tests
2. tag the commit
`)
	writeFile(t, filepath.Join(dir, ".cursor", "mcp.json"), `{
  "mcpServers": {
    "postgres": {"command": "docker", "args": ["run", "mcp/postgres"]}
  }
}`)
	writeFile(t, filepath.Join(dir, ".codex", "config.toml"), `[mcp_servers.sqlite]
command = "uvx"
args = ["mcp-server-sqlite"]
`)
	return dir
}

func byName(candidates []Candidate) map[string]Candidate {
	m := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		m[c.Name] = c
	}
	return m
}

func TestScanFindsAllFormats(t *testing.T) {
	dir := seedProject(t)

	candidates, err := DefaultScanner().Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	got := byName(candidates)
	for _, want := range []string{"github", "remote", "reviewer", "release", "postgres", "sqlite"} {
		if _, ok := got[want]; !ok {
			t.Errorf("candidate %q not found, got %v", want, got)
		}
	}

	if got["reviewer"].Type != artifact.TypeSkill {
		t.Errorf("reviewer type = %s, want skill", got["reviewer"].Type)
	}
	if got["reviewer"].Description != "Code review helper" {
		t.Errorf("reviewer description = %q", got["reviewer"].Description)
	}
	if got["release"].Type != artifact.TypeWorkflow {
		t.Errorf("release type = %s, want workflow", got["release"].Type)
	}
	if len(got["release"].Steps) != 2 || got["release"].Steps[0] != "run tests" {
		t.Errorf("release steps = %v", got["release"].Steps)
	}
	if got["sqlite"].SourceLabel != "Codex" {
		t.Errorf("sqlite source = %q, want Codex", got["sqlite"].SourceLabel)
	}
	if got["remote"].Server == nil || got["remote"].Server.URL == "" {
		t.Error("remote server payload missing url")
	}
}

func TestScanEmptyDirectoryReturnsEmptyList(t *testing.T) {
	candidates, err := DefaultScanner().Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("candidates = %v, want empty", candidates)
	}
}

func TestScanMissingDirectoryIsNotFound(t *testing.T) {
	_, err := DefaultScanner().Scan(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, artifact.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

type panickyDetector struct{}

func (d *panickyDetector) Name() string { return "panicky" }
func (d *panickyDetector) Detect(string) ([]Candidate, error) {
	panic("detector bug")
}

type failingDetector struct{}

func (d *failingDetector) Name() string { return "failing" }
func (d *failingDetector) Detect(string) ([]Candidate, error) {
	return nil, errors.New("unreadable format")
}

func TestScanSurvivesBrokenDetectors(t *testing.T) {
	dir := seedProject(t)
	s := NewScanner(&panickyDetector{}, &failingDetector{}, &CursorDetector{})

	candidates, err := s.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Name != "postgres" {
		t.Errorf("candidates = %v, want only postgres", candidates)
	}
}

func TestScanDeduplicatesAcrossDetectors(t *testing.T) {
	dir := t.TempDir()
	// The same server name in two foreign configs; first detector wins.
	writeFile(t, filepath.Join(dir, ".mcp.json"), `{"mcpServers": {"github": {"command": "npx"}}}`)
	writeFile(t, filepath.Join(dir, ".cursor", "mcp.json"), `{"mcpServers": {"github": {"command": "docker"}}}`)

	candidates, err := DefaultScanner().Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 1 {
		t.Fatalf("candidates = %v, want one github", candidates)
	}
	if candidates[0].SourceLabel != "Claude Code" {
		t.Errorf("SourceLabel = %q, want first detector to win", candidates[0].SourceLabel)
	}
}

func TestScanSkipsMalformedConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".mcp.json"), `{not json`)
	writeFile(t, filepath.Join(dir, ".cursor", "mcp.json"), `{"mcpServers": {"ok": {"command": "npx"}}}`)

	candidates, err := DefaultScanner().Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Name != "ok" {
		t.Errorf("candidates = %v, want only ok", candidates)
	}
}
