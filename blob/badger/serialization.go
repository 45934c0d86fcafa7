package badger

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// objectMeta is the stored descriptor for one object. Bodies are stored raw
// under a separate key; only the descriptor goes through the codec.
type objectMeta struct {
	ContentType  string
	ETag         string
	Size         int64
	ModTimeMicro int64
}

// marshalObjectMeta serializes a descriptor with the MUS format.
// Field order is part of the on-disk layout and must not change.
func marshalObjectMeta(meta *objectMeta) []byte {
	size := ord.String.Size(meta.ContentType) +
		ord.String.Size(meta.ETag) +
		varint.Int64.Size(meta.Size) +
		varint.Int64.Size(meta.ModTimeMicro)

	buf := make([]byte, size)
	n := ord.String.Marshal(meta.ContentType, buf)
	n += ord.String.Marshal(meta.ETag, buf[n:])
	n += varint.Int64.Marshal(meta.Size, buf[n:])
	varint.Int64.Marshal(meta.ModTimeMicro, buf[n:])
	return buf
}

// unmarshalObjectMeta deserializes a descriptor.
func unmarshalObjectMeta(data []byte) (*objectMeta, error) {
	meta := &objectMeta{}

	contentType, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("content type: %w", err)
	}
	meta.ContentType = contentType

	etag, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("etag: %w", err)
	}
	meta.ETag = etag
	n += m

	size, m, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	meta.Size = size
	n += m

	modTime, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("mod time: %w", err)
	}
	meta.ModTimeMicro = modTime

	return meta, nil
}
