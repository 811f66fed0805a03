package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tooldock-labs/tooldock/internal/artifact"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "registry.yaml"))
}

func serverArtifact(name string) *artifact.Artifact {
	return &artifact.Artifact{
		ID:     artifact.NewID(),
		Name:   name,
		Type:   artifact.TypeServer,
		Scope:  artifact.ScopeGlobal,
		Server: &artifact.ServerPayload{Command: "npx", Args: []string{"-y", name}},
	}
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)
	a := serverArtifact("github")

	if err := s.Put(a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(a.Key(), "github")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("ID = %q, want %q", got.ID, a.ID)
	}
	if got.Server == nil || got.Server.Command != "npx" {
		t.Error("server payload did not round-trip")
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	key := artifact.Key{Scope: artifact.ScopeGlobal, Type: artifact.TypeServer}
	_, err := s.Get(key, "nope")
	if !errors.Is(err, artifact.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPutDuplicateNameSameKeyConflicts(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put(serverArtifact("github")); err != nil {
		t.Fatalf("first Put: %v", err)
	}

	err := s.Put(serverArtifact("github"))
	if !errors.Is(err, artifact.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestPutSameNameDifferentKeySucceeds(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put(serverArtifact("reviewer")); err != nil {
		t.Fatalf("server Put: %v", err)
	}

	// Same name, different type.
	skill := &artifact.Artifact{
		ID:    artifact.NewID(),
		Name:  "reviewer",
		Type:  artifact.TypeSkill,
		Scope: artifact.ScopeGlobal,
		Skill: &artifact.SkillPayload{Content: "review the diff"},
	}
	if err := s.Put(skill); err != nil {
		t.Fatalf("skill Put: %v", err)
	}

	// Same name and type, different scope.
	projServer := serverArtifact("reviewer")
	projServer.Scope = artifact.ScopeProject
	projServer.Project = "demo"
	if err := s.Put(projServer); err != nil {
		t.Fatalf("project Put: %v", err)
	}
}

func TestPutSameIDUpdatesInPlace(t *testing.T) {
	s := newTestStore(t)
	a := serverArtifact("github")
	if err := s.Put(a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	a.Server.Command = "docker"
	if err := s.Put(a); err != nil {
		t.Fatalf("update Put: %v", err)
	}

	all, err := s.Artifacts(artifact.TypeServer, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatalf("Artifacts: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].Server.Command != "docker" {
		t.Errorf("Command = %q, want %q", all[0].Server.Command, "docker")
	}
}

func TestArtifactsFiltersByScopeAndProject(t *testing.T) {
	s := newTestStore(t)
	if err := s.Put(serverArtifact("global-one")); err != nil {
		t.Fatal(err)
	}

	proj := serverArtifact("proj-one")
	proj.Scope = artifact.ScopeProject
	proj.Project = "/home/dev/demo"
	if err := s.Put(proj); err != nil {
		t.Fatal(err)
	}

	other := serverArtifact("other-proj")
	other.Scope = artifact.ScopeProject
	other.Project = "/home/dev/other"
	if err := s.Put(other); err != nil {
		t.Fatal(err)
	}

	got, err := s.Artifacts(artifact.TypeServer, artifact.ScopeProject, "/home/dev/demo")
	if err != nil {
		t.Fatalf("Artifacts: %v", err)
	}
	if len(got) != 1 || got[0].Name != "proj-one" {
		t.Fatalf("got %d records, want only proj-one", len(got))
	}

	global, err := s.Artifacts("", artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatalf("Artifacts global: %v", err)
	}
	if len(global) != 1 || global[0].Name != "global-one" {
		t.Fatalf("got %d global records, want only global-one", len(global))
	}
}

func TestRenameKeepsIDAndRecordCount(t *testing.T) {
	s := newTestStore(t)
	a := serverArtifact("github")
	if err := s.Put(a); err != nil {
		t.Fatal(err)
	}

	if err := s.Rename(a.ID, "github-mcp"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	all, err := s.Artifacts(artifact.TypeServer, artifact.ScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1 (rename must not duplicate)", len(all))
	}
	if all[0].Name != "github-mcp" || all[0].ID != a.ID {
		t.Errorf("record = %q/%q, want github-mcp/%q", all[0].Name, all[0].ID, a.ID)
	}
}

func TestRenameConflicts(t *testing.T) {
	s := newTestStore(t)
	a := serverArtifact("github")
	b := serverArtifact("gitlab")
	if err := s.Put(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(b); err != nil {
		t.Fatal(err)
	}

	err := s.Rename(b.ID, "github")
	if !errors.Is(err, artifact.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.Delete("no-such-id")
	if !errors.Is(err, artifact.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := newTestStore(t)
	a := serverArtifact("github")
	if err := s.Put(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := s.Get(a.Key(), "github")
	if !errors.Is(err, artifact.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
}
