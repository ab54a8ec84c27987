package cmd

import (
	"fmt"
)

// Diff prints a redacted patch between the previous snapshot
// generation and the current one.
func Diff(path string) {
	s := UnlockOrExit(path)
	defer s.Lock()

	patch, err := s.Diff()
	if err != nil {
		HandleError(err)
	}

	if patch == "" {
		fmt.Println("No changes since the previous snapshot")
		return
	}
	fmt.Print(patch)
}
