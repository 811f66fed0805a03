//go:build integration

package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tooldock-labs/tooldock/internal/artifact"
	"github.com/tooldock-labs/tooldock/internal/registry"
	"github.com/tooldock-labs/tooldock/internal/scan"
	"github.com/tooldock-labs/tooldock/internal/store"
	"github.com/tooldock-labs/tooldock/internal/syncer"
	"github.com/tooldock-labs/tooldock/internal/target"
)

// TestFullFlowScanImportSync covers the whole pipeline: scan a project's
// foreign configs -> import the candidates -> sync them onto targets ->
// verify the target files and the derived Sources view.
func TestFullFlowScanImportSync(t *testing.T) {
	env := setupTestEnv(t)
	seedProjectConfigs(t, env.ProjectDir)

	s := store.NewFileStore(env.Registry)
	targets := target.DefaultRegistry()
	engine := syncer.New(s, targets)
	service := registry.NewService(s, engine)

	// Step 1: Scan the project for importable artifacts.
	candidates, err := scan.DefaultScanner().Scan(env.ProjectDir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	names := make(map[string]bool)
	for _, c := range candidates {
		names[c.Name] = true
	}
	for _, want := range []string{"github", "postgres", "reviewer"} {
		if !names[want] {
			t.Fatalf("scan missed %q, found %v", want, candidates)
		}
	}

	// Step 2: Commit everything into global scope.
	report := scan.Commit(s, candidates, artifact.ScopeGlobal, "")
	if err := report.CommitError(); err != nil {
		t.Fatalf("Commit: %v (%+v)", err, report.Errors)
	}

	// Step 3: Sync the server onto two editor targets.
	results, err := engine.Sync([]string{"github"}, []string{"cursor", "zed"}, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("sync to %s failed: %s", r.Target, r.Message)
		}
	}
	assertFileExists(t, filepath.Join(env.HomeDir, ".cursor", "mcp.json"))
	assertFileExists(t, filepath.Join(env.HomeDir, ".config", "zed", "settings.json"))

	// Step 4: The written entry round-trips through the target config.
	data, err := os.ReadFile(filepath.Join(env.HomeDir, ".cursor", "mcp.json"))
	if err != nil {
		t.Fatal(err)
	}
	var cfg map[string]map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("cursor config is not valid JSON: %v", err)
	}
	if _, ok := cfg["mcpServers"]["github"]; !ok {
		t.Fatalf("cursor config missing github entry: %s", data)
	}

	// Step 5: List shows the live Sources projection.
	listed, err := service.List(artifact.TypeServer, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var github *artifact.Artifact
	for i := range listed {
		if listed[i].Name == "github" {
			github = &listed[i]
		}
	}
	if github == nil {
		t.Fatal("github not listed")
	}
	if len(github.Sources) != 2 {
		t.Fatalf("Sources = %v, want cursor and zed", github.Sources)
	}

	// Step 6: Detach from one target; the other keeps its entry.
	removeResults, err := engine.RemoveFromTarget("github", []string{"cursor"}, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatalf("RemoveFromTarget: %v", err)
	}
	if !removeResults[0].Success {
		t.Fatalf("RemoveFromTarget: %s", removeResults[0].Message)
	}
	listed, err = service.List(artifact.TypeServer, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	for i := range listed {
		if listed[i].Name == "github" {
			if len(listed[i].Sources) != 1 || listed[i].Sources[0] != "zed" {
				t.Fatalf("Sources after detach = %v, want [zed]", listed[i].Sources)
			}
		}
	}
}

// TestFullFlowPullIntoProject covers the global -> project copy path and
// syncing into a project-local config.
func TestFullFlowPullIntoProject(t *testing.T) {
	env := setupTestEnv(t)

	s := store.NewFileStore(env.Registry)
	targets := target.DefaultRegistry()
	engine := syncer.New(s, targets)
	service := registry.NewService(s, engine)

	global := &artifact.Artifact{
		Name:  "github",
		Type:  artifact.TypeServer,
		Scope: artifact.ScopeGlobal,
		Server: &artifact.ServerPayload{
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		},
	}
	if err := service.Add(global); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Pull into the project; the copy is independent of the original.
	if err := service.ImportFromGlobal("github", env.ProjectDir); err != nil {
		t.Fatalf("ImportFromGlobal: %v", err)
	}

	key := artifact.Key{Scope: artifact.ScopeProject, Project: env.ProjectDir, Type: artifact.TypeServer}
	copied, err := service.Get(key, "github")
	if err != nil {
		t.Fatalf("Get pulled copy: %v", err)
	}
	if copied.ID == global.ID {
		t.Fatal("pulled copy shares the global ID")
	}

	// Sync the project copy into the project-local Cursor config.
	results, err := engine.Sync([]string{"github"}, []string{"cursor"}, artifact.ScopeProject, env.ProjectDir)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !results[0].Success {
		t.Fatalf("project sync failed: %s", results[0].Message)
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, ".cursor", "mcp.json"))

	// The global config location stays untouched.
	if _, err := os.Stat(filepath.Join(env.HomeDir, ".cursor", "mcp.json")); err == nil {
		t.Fatal("project sync wrote the global cursor config")
	}
}
