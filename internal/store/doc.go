// Package store provides file-based persistence for tagfinder's local state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. Every write goes to a temporary file in
// the same directory and is renamed over the target, so a crash never leaves
// a half-written file behind. All methods are concurrency-safe via internal
// locking. Files live under the configured home directory.
//
// The package includes stores for:
//   - The authenticated gateway session (SessionFileStore), optionally sealed
//     with a passphrase
//   - The most recent location report (ReportFileStore)
//
// The SQLite report history lives in the history subpackage.
package store
