package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/keyring"
	"github.com/live-labs/passvault/internal/vault"
)

// DefaultVaultFile is used when neither the -vault flag nor the
// PASSVAULT_FILE environment variable names a snapshot location.
const DefaultVaultFile = "passvault.dat"

// VaultPath resolves the snapshot location: explicit flag value first,
// then PASSVAULT_FILE, then the default in the current directory.
func VaultPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("PASSVAULT_FILE"); p != "" {
		return p
	}
	return DefaultVaultFile
}

// ReadPassphrase reads a passphrase from the terminal without echoing
func ReadPassphrase(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}

// ReadPassphraseConfirm reads a passphrase twice and ensures they match
func ReadPassphraseConfirm() ([]byte, error) {
	first, err := ReadPassphrase("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(first)

	second, err := ReadPassphrase("Confirm passphrase: ")
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(second)

	if !crypto.ConstantTimeCompare(first, second) {
		return nil, fmt.Errorf("passphrases do not match")
	}

	result := make([]byte, len(first))
	copy(result, first)
	return result, nil
}

// passphraseFromEnv reads the passphrase from PASSVAULT_PASSPHRASE
func passphraseFromEnv() []byte {
	passphrase := os.Getenv("PASSVAULT_PASSPHRASE")
	if passphrase == "" {
		return nil
	}
	// Return a copy so clearing the bytes is safe
	result := make([]byte, len(passphrase))
	copy(result, []byte(passphrase))
	return result
}

// GetPassphrase retrieves the passphrase: environment variable first,
// then the OS keyring, then a no-echo terminal prompt.
// The caller is responsible for calling crypto.ClearBytes on the result.
func GetPassphrase(s *vault.Store, prompt string) ([]byte, error) {
	if p := passphraseFromEnv(); p != nil {
		return p, nil
	}

	if id, err := s.VaultID(); err == nil {
		if p, err := keyring.GetPassphrase(id); err == nil && p != "" {
			return []byte(p), nil
		}
	}

	return ReadPassphrase(prompt)
}

// GetPassphraseForInit retrieves the passphrase for the init command:
// environment variable first, then a prompt with confirmation.
func GetPassphraseForInit() ([]byte, error) {
	if p := passphraseFromEnv(); p != nil {
		return p, nil
	}
	return ReadPassphraseConfirm()
}

// UnlockOrExit opens the vault at path and unlocks it, exiting with a
// friendly message on any failure. Lock the returned store when done.
func UnlockOrExit(path string) *vault.Store {
	s := vault.New(path)

	passphrase, err := GetPassphrase(s, "Enter passphrase: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer crypto.ClearBytes(passphrase)

	if err := s.Unlock(passphrase); err != nil {
		HandleError(err)
	}
	return s
}

// Confirm asks a yes/no question on the terminal and returns the answer
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// HandleError prints a friendly message for known errors and exits
func HandleError(err error) {
	switch {
	case errors.Is(err, vault.ErrNotInitialized):
		fmt.Fprintf(os.Stderr, "Error: vault not initialized\n")
		fmt.Fprintf(os.Stderr, "Run 'passvault init' first\n")
	case errors.Is(err, vault.ErrAlreadyExists):
		fmt.Fprintf(os.Stderr, "Error: vault already exists\n")
	case errors.Is(err, vault.ErrWrongPassphrase):
		fmt.Fprintf(os.Stderr, "Error: wrong passphrase\n")
	case errors.Is(err, vault.ErrPassphraseTooShort):
		fmt.Fprintf(os.Stderr, "Error: passphrase must be at least %d characters\n", vault.MinPassphraseLen)
	case errors.Is(err, vault.ErrLocked):
		fmt.Fprintf(os.Stderr, "Error: vault is locked\n")
	case errors.Is(err, vault.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Error: no such entry\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
