package cmd

import (
	"fmt"

	"github.com/live-labs/passvault/internal/vault"
)

// List prints all entries without passwords
func List(path string) {
	s := UnlockOrExit(path)
	defer s.Lock()

	entries, err := s.All()
	if err != nil {
		HandleError(err)
	}

	printEntries(entries)
}

func printEntries(entries []vault.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries")
		return
	}

	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = "-"
		}
		fmt.Printf("%s  %-30s %-20s %s\n", e.ID, e.Website, e.Username, category)
	}
	fmt.Printf("\n%d entries\n", len(entries))
}
