package cmd

import (
	"fmt"
)

// Remove deletes an entry, asking for confirmation unless forced
func Remove(path, id string, force bool) {
	s := UnlockOrExit(path)
	defer s.Lock()

	entry, err := s.Get(id)
	if err != nil {
		HandleError(err)
	}

	if !force {
		if !Confirm(fmt.Sprintf("Delete entry for %s (%s)?", entry.Website, entry.Username)) {
			fmt.Println("Aborted")
			return
		}
	}

	if err := s.Delete(id); err != nil {
		HandleError(err)
	}

	fmt.Printf("✓ Deleted entry %s\n", id)
}
