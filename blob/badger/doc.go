// Package badger implements blob.Store on BadgerDB.
//
// A single database holds any number of buckets. Each object is stored as
// two entries: the raw body under objd:bucket:key and a MUS-encoded
// descriptor (content type, ETag, size, modification time) under
// objm:bucket:key. Listings iterate descriptors only, so page size governs
// descriptor reads, never body reads.
//
// ETags are BLAKE2b digests of the body; identical bytes always produce the
// same ETag, which makes idempotent re-runs observable.
package badger
