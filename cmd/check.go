package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/strength"
)

// Check analyzes a password's strength. An empty argument prompts for
// the password without echo so it stays out of shell history.
func Check(password string) {
	if password == "" {
		raw, err := ReadPassphrase("Password to check: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		password = string(raw)
		crypto.ClearBytes(raw)
	}

	result := strength.Analyze(password)

	fmt.Printf("Score:    %d/100\n", result.Score)
	fmt.Printf("Strength: %s\n", result.Strength)
	fmt.Printf("Entropy:  %.1f bits\n", result.Entropy)
	for _, line := range result.Feedback {
		fmt.Printf("  - %s\n", line)
	}
}
