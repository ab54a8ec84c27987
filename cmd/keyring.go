package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/keyring"
	"github.com/live-labs/passvault/internal/vault"
)

// KeyringSave verifies the passphrase and stores it in the OS keyring
func KeyringSave(path string) {
	s := vault.New(path)

	passphrase, err := ReadPassphrase("Enter passphrase: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(passphrase)

	// Only a verified passphrase goes into the keyring
	if err := s.Unlock(passphrase); err != nil {
		HandleError(err)
	}
	defer s.Lock()

	vaultID, err := s.VaultID()
	if err != nil {
		HandleError(err)
	}

	if err := keyring.SavePassphrase(vaultID, string(passphrase)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Passphrase saved to keyring")
}

// KeyringDelete removes the passphrase from the OS keyring
func KeyringDelete(path string) {
	s := vault.New(path)

	vaultID, err := s.VaultID()
	if err != nil {
		fmt.Println("No passphrase stored in keyring")
		return
	}

	if err := keyring.DeletePassphrase(vaultID); err != nil {
		fmt.Println("No passphrase stored in keyring")
		return
	}

	fmt.Println("Passphrase removed from keyring")
}

// KeyringStatus reports whether a passphrase is stored in the keyring
func KeyringStatus(path string) {
	s := vault.New(path)

	vaultID, err := s.VaultID()
	if err != nil {
		fmt.Println("Passphrase: not stored")
		return
	}

	if keyring.HasPassphrase(vaultID) {
		fmt.Println("Passphrase: stored in keyring")
	} else {
		fmt.Println("Passphrase: not stored")
	}
}
