package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares the previous snapshot generation (the .bak kept by
// Save) with the current one and returns a unified diff of redacted
// listings. Passwords and notes never appear in the output. Returns
// the empty string when there is no previous generation or no change.
func (s *Store) Diff() (string, error) {
	if err := s.gate(); err != nil {
		return "", err
	}

	if _, err := os.Stat(s.path + BackupSuffix); os.IsNotExist(err) {
		return "", nil
	}

	prev, err := s.parseSnapshotFile(s.path+BackupSuffix, s.enc)
	if err != nil {
		return "", fmt.Errorf("failed to read previous snapshot: %w", err)
	}

	current, err := s.parseSnapshotFile(s.path, s.enc)
	if err != nil {
		return "", fmt.Errorf("failed to read current snapshot: %w", err)
	}

	prevListing := redactedListing(prev)
	currentListing := redactedListing(current)
	if prevListing == currentListing {
		return "", nil
	}

	dmp := diffmatchpatch.New()

	// Line-mode diff for better output
	a, b, lineArray := dmp.DiffLinesToChars(prevListing, currentListing)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	patches := dmp.PatchMake(prevListing, diffs)
	if len(patches) == 0 {
		return "", nil
	}

	name := filepath.Base(s.path)
	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- a/%s%s\n", name, BackupSuffix))
	result.WriteString(fmt.Sprintf("+++ b/%s\n", name))
	result.WriteString(dmp.PatchToText(patches))

	return result.String(), nil
}

// redactedListing renders entries one per line without secret material.
func redactedListing(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s | %s | %s | modified %s\n",
			e.Website, e.Username, e.Category,
			e.LastModified.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
