package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/vault"
)

// Init creates a new vault at path
func Init(path string) {
	s := vault.New(path)

	passphrase, err := GetPassphraseForInit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(passphrase)

	if err := s.Init(passphrase); err != nil {
		HandleError(err)
	}
	defer s.Lock()

	fmt.Printf("✓ Initialized vault at %s\n", path)
}
