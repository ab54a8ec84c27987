// Package vault implements the credential store: the Locked/Unlocked
// session lifecycle with lazy idle auto-lock, entry CRUD and search,
// snapshot persistence, and aggregate health reporting.
//
// Core operations include:
//   - Init: create a new vault with a passphrase-derived key
//   - Unlock/Lock: session transitions; locking wipes the derived key
//   - Add/Update/Delete/Get/All/Search: entry operations, all gated
//   - Save/Load: full-snapshot persistence to the line-oriented file
//   - HealthReport: weak/reused/old counts and an overall score
//   - Diff: redacted unified diff against the previous snapshot
//
// The snapshot format is one record per line: six hex-sealed fields
// (id, website, username, password, category, notes) and two plaintext
// Unix-second timestamps, pipe-delimited. Key derivation parameters and
// the passphrase verifier live in a bbolt sidecar next to the snapshot.
package vault
