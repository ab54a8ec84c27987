package vault

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/live-labs/passvault/internal/crypto"
	"github.com/live-labs/passvault/internal/storage"
)

const (
	// FilePermSecure is the mode for the snapshot and its backup
	FilePermSecure = 0600

	// DefaultAutoLock is the idle duration after which the next gated
	// operation finds the vault locked. Zero disables auto-lock.
	DefaultAutoLock = 10 * time.Minute

	// MinPassphraseLen is enforced on Init
	MinPassphraseLen = 6

	// MetaSuffix is appended to the snapshot path for the bbolt sidecar
	MetaSuffix = ".meta"

	// BackupSuffix is appended to the snapshot path for the previous
	// generation kept by Save
	BackupSuffix = ".bak"

	passphraseCheckString = "passvault-passphrase-check"
)

var (
	ErrNotInitialized     = errors.New("vault not initialized")
	ErrAlreadyExists      = errors.New("vault already exists")
	ErrLocked             = errors.New("vault locked")
	ErrNotFound           = errors.New("entry not found")
	ErrWrongPassphrase    = errors.New("wrong passphrase")
	ErrPassphraseTooShort = errors.New("passphrase too short")
)

// Store owns the entry set, the lock state machine and persistence.
// It assumes exclusive ownership of its snapshot file and sidecar for
// the process lifetime; it is not safe for concurrent use.
type Store struct {
	path         string // snapshot file
	metaPath     string // bbolt sidecar
	enc          *crypto.Encryptor
	entries      []Entry
	lastActivity time.Time
	autoLock     time.Duration
}

// New creates a Store for the given snapshot path. The store starts
// Locked; call Init or Unlock before any other operation.
func New(path string) *Store {
	return &Store{
		path:     path,
		metaPath: path + MetaSuffix,
		autoLock: DefaultAutoLock,
	}
}

// SetAutoLock changes the idle auto-lock threshold. Zero disables it.
func (s *Store) SetAutoLock(d time.Duration) {
	s.autoLock = d
}

// Locked reports whether the vault is currently locked. It does not
// perform the lazy auto-lock transition.
func (s *Store) Locked() bool {
	return s.enc == nil
}

// Init creates a new vault: random salt and Argon2id parameters, a
// sealed passphrase verifier in the sidecar, and an empty snapshot.
// The store is Unlocked afterwards. Fails with ErrAlreadyExists if the
// sidecar is already initialized.
func (s *Store) Init(passphrase []byte) error {
	if len(passphrase) < MinPassphraseLen {
		return ErrPassphraseTooShort
	}

	meta, err := storage.Open(s.metaPath)
	if err != nil {
		return fmt.Errorf("failed to open metadata sidecar: %w", err)
	}
	defer meta.Close()

	initialized, err := meta.IsInitialized()
	if err != nil {
		return fmt.Errorf("failed to check sidecar: %w", err)
	}
	if initialized {
		return ErrAlreadyExists
	}

	if err := meta.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize sidecar: %w", err)
	}

	kdf, err := crypto.NewKDF()
	if err != nil {
		return fmt.Errorf("failed to create KDF: %w", err)
	}
	if err := meta.SetSalt(kdf.Salt); err != nil {
		return fmt.Errorf("failed to store salt: %w", err)
	}
	if err := meta.SetKDFParams(kdf.Time, kdf.Memory, kdf.Threads); err != nil {
		return fmt.Errorf("failed to store KDF parameters: %w", err)
	}

	enc := crypto.NewEncryptor(kdf.DeriveKey(passphrase))

	verifier, err := enc.Encrypt(checkDigest())
	if err != nil {
		enc.Destroy()
		return fmt.Errorf("failed to seal verifier: %w", err)
	}
	if err := meta.SetVerifier(verifier); err != nil {
		enc.Destroy()
		return fmt.Errorf("failed to store verifier: %w", err)
	}

	if _, err := meta.GetOrCreateVaultID(); err != nil {
		enc.Destroy()
		return fmt.Errorf("failed to create vault ID: %w", err)
	}

	s.enc = enc
	s.entries = nil
	s.lastActivity = time.Now()

	if err := s.persist(); err != nil {
		s.Lock()
		return err
	}
	return nil
}

// Unlock derives a key from the candidate passphrase and checks it
// against the sealed verifier. On success the snapshot is loaded and
// the store is Unlocked; on failure state is unchanged.
func (s *Store) Unlock(passphrase []byte) error {
	if _, err := os.Stat(s.metaPath); err != nil {
		return ErrNotInitialized
	}

	meta, err := storage.Open(s.metaPath)
	if err != nil {
		return ErrNotInitialized
	}
	defer meta.Close()

	salt, err := meta.GetSalt()
	if err != nil {
		return fmt.Errorf("failed to read salt: %w", err)
	}
	timeCost, memory, threads, err := meta.GetKDFParams()
	if err != nil {
		return fmt.Errorf("failed to read KDF parameters: %w", err)
	}
	verifier, err := meta.GetVerifier()
	if err != nil {
		return fmt.Errorf("failed to read verifier: %w", err)
	}

	kdf := &crypto.KDF{Salt: salt, Time: timeCost, Memory: memory, Threads: threads}
	enc := crypto.NewEncryptor(kdf.DeriveKey(passphrase))

	digest, err := enc.Decrypt(verifier)
	if err != nil {
		enc.Destroy()
		return ErrWrongPassphrase
	}
	if !crypto.ConstantTimeCompare(digest, checkDigest()) {
		enc.Destroy()
		return ErrWrongPassphrase
	}

	entries, err := s.parseSnapshotFile(s.path, enc)
	if err != nil {
		enc.Destroy()
		return err
	}

	if s.enc != nil {
		s.enc.Destroy()
	}
	s.enc = enc
	s.entries = entries
	s.lastActivity = time.Now()
	return nil
}

// Lock transitions to Locked unconditionally, wiping the derived key
// and dropping the decrypted entry set from memory.
func (s *Store) Lock() {
	if s.enc != nil {
		s.enc.Destroy()
		s.enc = nil
	}
	s.entries = nil
}

// gate performs the lazy auto-lock check, rejects operations while
// Locked, and refreshes the activity timestamp. Every operation that
// requires Unlocked state goes through it, reads included.
func (s *Store) gate() error {
	if s.enc == nil {
		return ErrLocked
	}
	if s.autoLock > 0 && time.Since(s.lastActivity) > s.autoLock {
		s.Lock()
		return ErrLocked
	}
	s.lastActivity = time.Now()
	return nil
}

// Add assigns a fresh unique ID, stamps both timestamps, appends the
// entry and persists a full snapshot.
func (s *Store) Add(draft Draft) (Entry, error) {
	if err := s.gate(); err != nil {
		return Entry{}, err
	}

	now := time.Now().Truncate(time.Second)
	entry := Entry{
		ID:           s.newID(),
		Website:      draft.Website,
		Username:     draft.Username,
		Password:     draft.Password,
		Category:     draft.Category,
		Notes:        draft.Notes,
		CreatedAt:    now,
		LastModified: now,
	}

	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return Entry{}, err
	}
	return entry, nil
}

// Update overwrites the mutable fields of the entry with the given ID
// and refreshes its modification time. CreatedAt never changes.
func (s *Store) Update(id string, draft Draft) error {
	if err := s.gate(); err != nil {
		return err
	}

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		prev := s.entries[i]
		s.entries[i].Website = draft.Website
		s.entries[i].Username = draft.Username
		s.entries[i].Password = draft.Password
		s.entries[i].Category = draft.Category
		s.entries[i].Notes = draft.Notes
		s.entries[i].LastModified = time.Now().Truncate(time.Second)
		if err := s.persist(); err != nil {
			s.entries[i] = prev
			return err
		}
		return nil
	}
	return ErrNotFound
}

// Delete removes the entry with the given ID. A missing ID is a
// no-op failure: nothing is removed and nothing is persisted.
func (s *Store) Delete(id string) error {
	if err := s.gate(); err != nil {
		return err
	}

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		removed := s.entries[i]
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		if err := s.persist(); err != nil {
			s.entries = append(s.entries[:i], append([]Entry{removed}, s.entries[i:]...)...)
			return err
		}
		return nil
	}
	return ErrNotFound
}

// Get returns a copy of the entry with the given ID.
func (s *Store) Get(id string) (Entry, error) {
	if err := s.gate(); err != nil {
		return Entry{}, err
	}

	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// All returns copies of every entry in storage order.
func (s *Store) All() ([]Entry, error) {
	if err := s.gate(); err != nil {
		return nil, err
	}
	return append([]Entry(nil), s.entries...), nil
}

// Search matches the query as a case-insensitive substring of website,
// username and category, in storage order. The empty query matches
// every entry.
func (s *Store) Search(query string) ([]Entry, error) {
	if err := s.gate(); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var results []Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Website), q) ||
			strings.Contains(strings.ToLower(e.Username), q) ||
			strings.Contains(strings.ToLower(e.Category), q) {
			results = append(results, e)
		}
	}
	return results, nil
}

// VaultID returns the stable random ID of this vault, used to key the
// OS keyring. It does not require the vault to be unlocked.
func (s *Store) VaultID() (string, error) {
	if _, err := os.Stat(s.metaPath); err != nil {
		return "", ErrNotInitialized
	}

	meta, err := storage.Open(s.metaPath)
	if err != nil {
		return "", ErrNotInitialized
	}
	defer meta.Close()

	return meta.GetOrCreateVaultID()
}

// newID returns a fresh UUID not colliding with any stored entry.
func (s *Store) newID() string {
	for {
		id := uuid.NewString()
		collision := false
		for _, e := range s.entries {
			if e.ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
	}
}

// checkDigest is the plaintext sealed into the passphrase verifier.
func checkDigest() []byte {
	digest := sha256.Sum256([]byte(passphraseCheckString))
	return []byte(hex.EncodeToString(digest[:]))
}
