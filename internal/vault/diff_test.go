package vault

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDiffNoBackup(t *testing.T) {
	s := newTestStore(t)

	diff, err := s.Diff()
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if diff != "" {
		t.Errorf("Diff without a previous generation should be empty, got %q", diff)
	}
}

func TestDiffShowsChanges(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "vault.dat"))
	if err := s.Init([]byte("test-passphrase")); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// First Add backs up the empty snapshot, so the previous
	// generation differs from the current one.
	if _, err := s.Add(Draft{Website: "example.com", Username: "alice", Password: "secret-value"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	diff, err := s.Diff()
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if diff == "" {
		t.Fatal("Diff should report the added entry")
	}
	if !strings.Contains(diff, "example.com") {
		t.Errorf("diff should mention the website, got:\n%s", diff)
	}
	if strings.Contains(diff, "secret-value") {
		t.Error("diff must never contain passwords")
	}
}

func TestDiffNoChanges(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(Draft{Website: "example.com"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Save again without mutating: the backup now equals the snapshot
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	diff, err := s.Diff()
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	if diff != "" {
		t.Errorf("Diff with identical generations should be empty, got %q", diff)
	}
}

func TestDiffRequiresUnlocked(t *testing.T) {
	s := newTestStore(t)
	s.Lock()
	if _, err := s.Diff(); err == nil {
		t.Error("Diff while locked should fail")
	}
}
