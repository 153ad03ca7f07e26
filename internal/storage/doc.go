// Package storage defines the persistence contract for character records.
//
// It provides a high-level abstraction for storing finalized characters.
// Implementations of the contract (JSON save files, SQLite) live in
// subpackages.
//
// # Error Types
//
// The package defines common error types used across storage implementations:
//   - ErrNotFound: Indicates a requested record is missing.
//   - ErrMalformedSaveData: Indicates stored data failed schema validation.
package storage
