package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/storage"
)

// snapshotFields is the fixed per-record field count:
// id, website, username, password, category, notes, createdAt, lastModified.
const snapshotFields = 8

// Save rewrites the entire snapshot from the in-memory entry set.
// Every call serializes every entry from scratch; there is no append
// or diff path.
func (s *Store) Save() error {
	if err := s.gate(); err != nil {
		return err
	}
	return s.persist()
}

// Load clears the in-memory set and reconstructs it from the snapshot.
// A malformed line fails the whole load and leaves the in-memory set
// untouched. A missing snapshot file is an empty vault.
func (s *Store) Load() error {
	if err := s.gate(); err != nil {
		return err
	}

	entries, err := s.parseSnapshotFile(s.path, s.enc)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// persist writes a full snapshot atomically: encode every entry, write
// to a temp file next to the target, then rename over it. The previous
// generation is kept as the .bak backup for Diff.
func (s *Store) persist() error {
	var b strings.Builder
	for _, e := range s.entries {
		line, err := encodeRecord(e, s.enc)
		if err != nil {
			return fmt.Errorf("failed to encode entry %s: %w", e.ID, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.path+BackupSuffix, prev, FilePermSecure); err != nil {
			return fmt.Errorf("failed to write snapshot backup: %w", err)
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(FilePermSecure); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	if meta, err := storage.Open(s.metaPath); err == nil {
		if err := meta.UpdateModified(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to update modification time: %v\n", err)
		}
		meta.Close()
	}

	return nil
}

// encodeRecord renders one entry as a snapshot line without the
// trailing newline.
func encodeRecord(e Entry, enc *crypto.Encryptor) (string, error) {
	fields := [6]string{e.ID, e.Website, e.Username, e.Password, e.Category, e.Notes}
	encoded := make([]string, 0, snapshotFields)
	for _, f := range fields {
		sealed, err := enc.EncodeField(f)
		if err != nil {
			return "", err
		}
		encoded = append(encoded, sealed)
	}
	encoded = append(encoded,
		strconv.FormatInt(e.CreatedAt.Unix(), 10),
		strconv.FormatInt(e.LastModified.Unix(), 10),
	)
	return strings.Join(encoded, "|"), nil
}

// decodeRecord parses one snapshot line.
func decodeRecord(line string, enc *crypto.Encryptor) (Entry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != snapshotFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", snapshotFields, len(parts))
	}

	var fields [6]string
	for i := 0; i < 6; i++ {
		plain, err := enc.DecodeField(parts[i])
		if err != nil {
			return Entry{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		fields[i] = plain
	}

	createdAt, err := strconv.ParseInt(parts[6], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid createdAt timestamp %q", parts[6])
	}
	lastModified, err := strconv.ParseInt(parts[7], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid lastModified timestamp %q", parts[7])
	}

	return Entry{
		ID:           fields[0],
		Website:      fields[1],
		Username:     fields[2],
		Password:     fields[3],
		Category:     fields[4],
		Notes:        fields[5],
		CreatedAt:    time.Unix(createdAt, 0),
		LastModified: time.Unix(lastModified, 0),
	}, nil
}

// parseSnapshotFile reads and decrypts a snapshot file into a fresh
// entry slice. The caller decides what to do with the current set.
func (s *Store) parseSnapshotFile(path string, enc *crypto.Encryptor) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var entries []Entry
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		entry, err := decodeRecord(line, enc)
		if err != nil {
			return nil, fmt.Errorf("malformed snapshot line %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
