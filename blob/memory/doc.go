// Package memory provides an in-memory blob.Store used as a test double.
//
// The store supports pagination with the same token semantics as the badger
// backend and exposes failure-injection hooks and call counters so tests can
// exercise per-object and fatal error paths without a real backend.
package memory
