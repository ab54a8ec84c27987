package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/passvault/internal/generate"
	"github.com/live-labs/passvault/internal/strength"
	"github.com/live-labs/passvault/internal/vault"
)

// Add stores a new entry. An empty password is either generated
// (genLength > 0) or prompted for without echo.
func Add(path string, draft vault.Draft, genLength int) {
	if draft.Website == "" {
		fmt.Fprintf(os.Stderr, "Error: add requires -website\n")
		os.Exit(1)
	}

	if draft.Password == "" {
		if genLength > 0 {
			pw, err := generate.Password(ClampGenLength(genLength), generate.AllClasses())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
			draft.Password = pw
		} else {
			pw, err := ReadPassphrase("Entry password: ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
			draft.Password = string(pw)
		}
	}

	s := UnlockOrExit(path)
	defer s.Lock()

	entry, err := s.Add(draft)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("✓ Added entry %s\n", entry.ID)
	result := strength.Analyze(entry.Password)
	if result.Score < 60 {
		fmt.Printf("  warning: password strength is %s (%d/100)\n", result.Strength, result.Score)
	}
}
