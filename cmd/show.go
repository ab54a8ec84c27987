package cmd

import (
	"fmt"
)

// Show prints a single entry in full, including the password
func Show(path, id string) {
	s := UnlockOrExit(path)
	defer s.Lock()

	entry, err := s.Get(id)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("ID:        %s\n", entry.ID)
	fmt.Printf("Website:   %s\n", entry.Website)
	fmt.Printf("Username:  %s\n", entry.Username)
	fmt.Printf("Password:  %s\n", entry.Password)
	fmt.Printf("Category:  %s\n", entry.Category)
	if entry.Notes != "" {
		fmt.Printf("Notes:     %s\n", entry.Notes)
	}
	fmt.Printf("Created:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Modified:  %s\n", entry.LastModified.Format("2006-01-02 15:04:05"))
}
