package vault

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s := New(filepath.Join(dir, "vault.dat"))
	if err := s.Init([]byte("test-passphrase")); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "vault.dat"))

	if err := s.Init([]byte("short")); !errors.Is(err, ErrPassphraseTooShort) {
		t.Errorf("Init with 5-char passphrase: got %v, want ErrPassphraseTooShort", err)
	}

	if err := s.Init([]byte("test-passphrase")); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if s.Locked() {
		t.Error("store should be unlocked after Init")
	}

	// Re-initialization is forbidden
	other := New(filepath.Join(dir, "vault.dat"))
	if err := other.Init([]byte("another-passphrase")); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("second Init: got %v, want ErrAlreadyExists", err)
	}
}

func TestUnlock(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(Draft{Website: "example.com", Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	s.Lock()

	if !s.Locked() {
		t.Fatal("store should be locked after Lock")
	}

	if err := s.Unlock([]byte("wrong-passphrase")); !errors.Is(err, ErrWrongPassphrase) {
		t.Errorf("Unlock with wrong passphrase: got %v, want ErrWrongPassphrase", err)
	}
	if !s.Locked() {
		t.Error("failed unlock must leave the store locked")
	}

	if err := s.Unlock([]byte("test-passphrase")); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if s.Locked() {
		t.Error("store should be unlocked")
	}

	entries, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Website != "example.com" {
		t.Errorf("unlock should reload entries, got %v", entries)
	}
}

func TestUnlockNotInitialized(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "vault.dat"))
	if err := s.Unlock([]byte("whatever")); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Unlock on missing vault: got %v, want ErrNotInitialized", err)
	}
}

func TestLockedOperationsFail(t *testing.T) {
	s := newTestStore(t)
	s.Lock()

	if _, err := s.Add(Draft{Website: "x"}); !errors.Is(err, ErrLocked) {
		t.Errorf("Add: got %v, want ErrLocked", err)
	}
	if err := s.Update("id", Draft{}); !errors.Is(err, ErrLocked) {
		t.Errorf("Update: got %v, want ErrLocked", err)
	}
	if err := s.Delete("id"); !errors.Is(err, ErrLocked) {
		t.Errorf("Delete: got %v, want ErrLocked", err)
	}
	if _, err := s.Get("id"); !errors.Is(err, ErrLocked) {
		t.Errorf("Get: got %v, want ErrLocked", err)
	}
	if _, err := s.All(); !errors.Is(err, ErrLocked) {
		t.Errorf("All: got %v, want ErrLocked", err)
	}
	if _, err := s.Search(""); !errors.Is(err, ErrLocked) {
		t.Errorf("Search: got %v, want ErrLocked", err)
	}
	if _, err := s.HealthReport(); !errors.Is(err, ErrLocked) {
		t.Errorf("HealthReport: got %v, want ErrLocked", err)
	}
	if err := s.Save(); !errors.Is(err, ErrLocked) {
		t.Errorf("Save: got %v, want ErrLocked", err)
	}
	if err := s.Load(); !errors.Is(err, ErrLocked) {
		t.Errorf("Load: got %v, want ErrLocked", err)
	}
}

func TestAdd(t *testing.T) {
	s := newTestStore(t)

	e1, err := s.Add(Draft{Website: "example.com", Username: "alice", Password: "pw1", Category: "Work", Notes: "note"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	e2, err := s.Add(Draft{Website: "other.org", Username: "bob", Password: "pw2"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if e1.ID == "" || e2.ID == "" {
		t.Error("entries should get non-empty IDs")
	}
	if e1.ID == e2.ID {
		t.Error("two entries must never share an ID")
	}
	if e1.Website != "example.com" || e1.Username != "alice" || e1.Password != "pw1" ||
		e1.Category != "Work" || e1.Notes != "note" {
		t.Errorf("draft fields not preserved: %+v", e1)
	}
	if !e1.CreatedAt.Equal(e1.LastModified) {
		t.Error("CreatedAt and LastModified should match at creation")
	}

	entries, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestGet(t *testing.T) {
	s := newTestStore(t)
	added, err := s.Add(Draft{Website: "example.com", Username: "alice"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Website != "example.com" {
		t.Errorf("Get returned %+v", got)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing: got %v, want ErrNotFound", err)
	}

	// Mutating the returned copy must not touch the stored entry
	got.Website = "tampered"
	again, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Website != "example.com" {
		t.Error("Get must return a copy, not an alias into the store")
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	added, err := s.Add(Draft{Website: "example.com", Username: "alice", Password: "old"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Update("missing", Draft{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing: got %v, want ErrNotFound", err)
	}

	err = s.Update(added.ID, Draft{Website: "new.example.com", Username: "bob", Password: "new", Category: "Social", Notes: "n"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Website != "new.example.com" || got.Username != "bob" || got.Password != "new" ||
		got.Category != "Social" || got.Notes != "n" {
		t.Errorf("fields not overwritten: %+v", got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Error("CreatedAt must never change on update")
	}
	if got.LastModified.Before(got.CreatedAt) {
		t.Error("LastModified must be >= CreatedAt")
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	added, err := s.Add(Draft{Website: "example.com"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing: got %v, want ErrNotFound", err)
	}
	entries, _ := s.All()
	if len(entries) != 1 {
		t.Errorf("failed delete must not alter the entry count, got %d", len(entries))
	}

	if err := s.Delete(added.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	entries, _ = s.All()
	if len(entries) != 0 {
		t.Errorf("expected empty vault, got %d entries", len(entries))
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	drafts := []Draft{
		{Website: "GitHub.com", Username: "alice", Category: "Work"},
		{Website: "bank.example", Username: "Alice-Personal", Category: "Banking"},
		{Website: "forum.example", Username: "bob", Category: "Social"},
	}
	for _, d := range drafts {
		if _, err := s.Add(d); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Empty query matches everything, in storage order
	all, err := s.Search("")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty query: got %d entries, want 3", len(all))
	}
	if all[0].Website != "GitHub.com" || all[2].Website != "forum.example" {
		t.Error("search results must preserve storage order")
	}

	// Case-insensitive website match
	got, _ := s.Search("github")
	if len(got) != 1 || got[0].Website != "GitHub.com" {
		t.Errorf("Search(github) = %v", got)
	}

	// Case-insensitive username match
	got, _ = s.Search("ALICE")
	if len(got) != 2 {
		t.Errorf("Search(ALICE): got %d entries, want 2", len(got))
	}

	// Case-insensitive category match
	got, _ = s.Search("banking")
	if len(got) != 1 || got[0].Category != "Banking" {
		t.Errorf("Search(banking) = %v", got)
	}

	got, _ = s.Search("no-such-thing")
	if len(got) != 0 {
		t.Errorf("Search(no-such-thing) = %v", got)
	}
}

func TestAutoLock(t *testing.T) {
	s := newTestStore(t)
	s.SetAutoLock(50 * time.Millisecond)

	if _, err := s.Add(Draft{Website: "example.com"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	time.Sleep(120 * time.Millisecond)

	// The idle threshold has elapsed: the next gated operation must
	// observe Locked and perform no side effect.
	if _, err := s.Add(Draft{Website: "late.example"}); !errors.Is(err, ErrLocked) {
		t.Fatalf("Add after idle: got %v, want ErrLocked", err)
	}
	if !s.Locked() {
		t.Error("store should have auto-locked")
	}

	if err := s.Unlock([]byte("test-passphrase")); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	entries, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("rejected Add must not have persisted, got %d entries", len(entries))
	}
}

func TestAutoLockDisabled(t *testing.T) {
	s := newTestStore(t)
	s.SetAutoLock(0)

	if _, err := s.Add(Draft{Website: "example.com"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	time.Sleep(60 * time.Millisecond)

	if _, err := s.All(); err != nil {
		t.Errorf("operations should succeed with auto-lock disabled: %v", err)
	}
}

func TestActivityExtendsSession(t *testing.T) {
	s := newTestStore(t)
	s.SetAutoLock(80 * time.Millisecond)

	// Reads refresh the activity timestamp, so steady activity keeps
	// the session alive past the threshold.
	for i := 0; i < 4; i++ {
		time.Sleep(40 * time.Millisecond)
		if _, err := s.All(); err != nil {
			t.Fatalf("All during active session failed: %v", err)
		}
	}
}
