//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // TOOLDOCK_HOME — fake user home for global target configs
	ProjectDir string // A mock project directory
	Registry   string // Path to the registry YAML file
}

// setupTestEnv creates isolated temp directories and points the environment
// at them so every operation is sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.Registry = filepath.Join(env.HomeDir, ".tooldock", "registry.yaml")

	t.Setenv("TOOLDOCK_HOME", env.HomeDir)
	t.Setenv("TOOLDOCK_REGISTRY", env.Registry)

	return env
}

// seedProjectConfigs writes foreign tool configs into the project dir so the
// scan detectors have something to find.
func seedProjectConfigs(t *testing.T, projectDir string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, ".mcp.json"), `{
  "mcpServers": {
    "github": {"command": "npx", "args": ["-y", "@modelcontextprotocol/server-github"]}
  }
}`)

	writeFile(t, filepath.Join(projectDir, ".cursor", "mcp.json"), `{
  "mcpServers": {
    "postgres": {"command": "docker", "args": ["run", "mcp/postgres"]}
  }
}`)

	writeFile(t, filepath.Join(projectDir, ".claude", "skills", "reviewer", "SKILL.md"), `---
name: reviewer
description: Careful code review
---

Review diffs for correctness first, style second.`)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
}
