package storage

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ConfigBucket holds KDF parameters, the passphrase verifier, the vault ID
// and timestamps. Nothing in it is secret; the verifier is already sealed.
var ConfigBucket = []byte("config")

// Config keys
var (
	ConfigVersion  = []byte("version")
	ConfigCreated  = []byte("created")
	ConfigModified = []byte("modified")
	ConfigSalt     = []byte("salt")
	ConfigKDFTime  = []byte("kdf_time")
	ConfigKDFMem   = []byte("kdf_memory")
	ConfigKDFProcs = []byte("kdf_threads")
	ConfigVerifier = []byte("verifier")
	ConfigVaultID  = []byte("vault_id")
)

// Store provides BBolt-based storage for the vault metadata sidecar
type Store struct {
	db *bolt.DB
}

// Open opens or creates a metadata sidecar database
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the bucket structure for a new vault
func (s *Store) Initialize() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config, err := tx.CreateBucketIfNotExists(ConfigBucket)
		if err != nil {
			return fmt.Errorf("failed to create config bucket: %w", err)
		}

		if err := config.Put(ConfigVersion, []byte("1")); err != nil {
			return err
		}

		now := time.Now()
		created, _ := now.MarshalBinary()
		if err := config.Put(ConfigCreated, created); err != nil {
			return err
		}
		return config.Put(ConfigModified, created)
	})
}

// IsInitialized checks if the database has been initialized
func (s *Store) IsInitialized() (bool, error) {
	var initialized bool
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config != nil && config.Get(ConfigVersion) != nil {
			initialized = true
		}
		return nil
	})
	return initialized, err
}

// SetSalt stores the KDF salt
func (s *Store) SetSalt(salt []byte) error {
	return s.putConfig(ConfigSalt, salt)
}

// GetSalt retrieves the KDF salt
func (s *Store) GetSalt() ([]byte, error) {
	return s.getConfig(ConfigSalt, "salt")
}

// SetKDFParams stores the Argon2id parameters
func (s *Store) SetKDFParams(timeCost, memory uint32, threads uint8) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}

		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, timeCost)
		if err := config.Put(ConfigKDFTime, buf); err != nil {
			return err
		}
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, memory)
		if err := config.Put(ConfigKDFMem, buf); err != nil {
			return err
		}
		return config.Put(ConfigKDFProcs, []byte{threads})
	})
}

// GetKDFParams retrieves the Argon2id parameters
func (s *Store) GetKDFParams() (timeCost, memory uint32, threads uint8, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}

		t := config.Get(ConfigKDFTime)
		m := config.Get(ConfigKDFMem)
		p := config.Get(ConfigKDFProcs)
		if len(t) != 4 || len(m) != 4 || len(p) != 1 {
			return fmt.Errorf("KDF parameters not found")
		}

		timeCost = binary.BigEndian.Uint32(t)
		memory = binary.BigEndian.Uint32(m)
		threads = p[0]
		return nil
	})
	return timeCost, memory, threads, err
}

// SetVerifier stores the sealed passphrase verifier
func (s *Store) SetVerifier(verifier []byte) error {
	return s.putConfig(ConfigVerifier, verifier)
}

// GetVerifier retrieves the sealed passphrase verifier
func (s *Store) GetVerifier() ([]byte, error) {
	return s.getConfig(ConfigVerifier, "verifier")
}

// UpdateModified updates the last modified timestamp
func (s *Store) UpdateModified() error {
	now := time.Now()
	modified, _ := now.MarshalBinary()
	return s.putConfig(ConfigModified, modified)
}

// GetModified retrieves the last modified timestamp
func (s *Store) GetModified() (time.Time, error) {
	var modified time.Time
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		data := config.Get(ConfigModified)
		if data == nil {
			return fmt.Errorf("modified time not found")
		}
		return modified.UnmarshalBinary(data)
	})
	return modified, err
}

// GetVaultID retrieves the vault ID from the config bucket
func (s *Store) GetVaultID() (string, error) {
	var vaultID string
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		data := config.Get(ConfigVaultID)
		if data == nil {
			return fmt.Errorf("vault_id not found")
		}
		vaultID = string(data)
		return nil
	})
	return vaultID, err
}

// GetOrCreateVaultID retrieves the existing vault ID or generates a new one
func (s *Store) GetOrCreateVaultID() (string, error) {
	vaultID, err := s.GetVaultID()
	if err == nil {
		return vaultID, nil
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate vault ID: %w", err)
	}
	vaultID = hex.EncodeToString(b)

	if err := s.putConfig(ConfigVaultID, []byte(vaultID)); err != nil {
		return "", err
	}
	return vaultID, nil
}

func (s *Store) putConfig(key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		return config.Put(key, value)
	})
}

func (s *Store) getConfig(key []byte, name string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(ConfigBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		value = config.Get(key)
		if value == nil {
			return fmt.Errorf("%s not found", name)
		}
		// Make a copy since the slice is only valid during the transaction
		value = append([]byte(nil), value...)
		return nil
	})
	return value, err
}
