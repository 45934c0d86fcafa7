package badger

// Key prefixes for the two entry kinds. Bodies and descriptors live under
// separate prefixes so listings iterate descriptors only.
const (
	objectDataPrefix = "objd"
	objectMetaPrefix = "objm"
)

// makeDataKey generates the database key for an object body.
// Format: objd:bucket:key
func makeDataKey(bucket, key string) []byte {
	return []byte(objectDataPrefix + ":" + bucket + ":" + key)
}

// makeMetaKey generates the database key for an object descriptor.
// Format: objm:bucket:key
func makeMetaKey(bucket, key string) []byte {
	return []byte(objectMetaPrefix + ":" + bucket + ":" + key)
}

// makeMetaPrefix generates the iteration prefix for listing a bucket under
// an object key prefix.
func makeMetaPrefix(bucket, keyPrefix string) []byte {
	return []byte(objectMetaPrefix + ":" + bucket + ":" + keyPrefix)
}

// objectKeyFromMetaKey strips the descriptor prefix and bucket from a
// database key, recovering the object key.
func objectKeyFromMetaKey(bucket string, metaKey []byte) string {
	return string(metaKey[len(objectMetaPrefix)+1+len(bucket)+1:])
}
