// Package storage provides the BBolt metadata sidecar for passvault.
//
// The sidecar lives next to the snapshot file (<vault>.meta) and holds a
// single config bucket: format version, KDF salt and Argon2id parameters,
// the sealed passphrase verifier, the vault ID used to key the OS keyring,
// and created/modified timestamps. Entries themselves never touch the
// sidecar; they live in the line-oriented snapshot file.
//
// BBolt provides ACID transactions, file locking, and corruption detection.
package storage
