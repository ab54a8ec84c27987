// Package crypto provides cryptographic operations for passvault.
//
// Field encryption uses AES-256-GCM with:
//   - 32-byte key derived from the master passphrase via Argon2id
//   - 12-byte random nonce per encryption operation
//   - Authenticated encryption prevents tampering
//
// Key derivation uses Argon2id with:
//   - 32-byte random salt (stored unencrypted in the metadata sidecar)
//   - time=1, memory=64MiB, threads=4
//
// Encoded fields are lowercase hex so they stay delimiter-safe in the
// line-oriented snapshot format.
//
// Memory safety:
//   - Use ClearBytes() to zero sensitive data after use
//   - Call Encryptor.Destroy() when done with encryption operations
package crypto
