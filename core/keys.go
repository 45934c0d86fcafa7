package core

import (
	"fmt"
	"strings"
)

// Suffixes used in derived keys. The staging format is JSON and extracted or
// summarized text is plain text; downstream consumers rely on both.
const (
	ContentSuffix  = ".txt"
	MetadataSuffix = "_metadata.json"
)

// DeriveKeys maps a source object key to the destination key pair for one
// chunk. It is a pure function: identical inputs always yield identical
// outputs, which is what makes pipeline re-runs idempotent.
//
// The source key is split at the first path separator into a date segment
// and a remainder. The stage segment is inserted after the date segment and
// the source file suffix is replaced with the content suffix:
//
//	2025-09-01/inflation/fed_hike.json + summarized
//	  -> 2025-09-01/summarized/inflation/fed_hike.txt
//	  -> 2025-09-01/summarized/inflation/fed_hike_metadata.json
//
// index is 1-based. When total > 1 an _N suffix is appended to both
// filenames; when the record produced exactly one chunk the suffix is
// omitted. A key without a separator (or with an empty remainder) returns
// ErrMalformedKey.
func DeriveKeys(sourceKey string, stage Stage, index, total int) (DerivedKeys, error) {
	if !stage.Valid() {
		return DerivedKeys{}, fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
	if total < 1 || index < 1 || index > total {
		return DerivedKeys{}, fmt.Errorf("%w: chunk %d of %d", ErrInvalidChunkIndex, index, total)
	}

	sep := strings.Index(sourceKey, "/")
	if sep < 0 || sep == len(sourceKey)-1 {
		return DerivedKeys{}, fmt.Errorf("%w: %q", ErrMalformedKey, sourceKey)
	}
	dateSegment := sourceKey[:sep]
	remainder := sourceKey[sep+1:]

	// Strip the source file suffix, matching a right-split at the last dot.
	base := remainder
	if dot := strings.LastIndex(remainder, "."); dot >= 0 {
		base = remainder[:dot]
	}

	var chunkSuffix string
	if total > 1 {
		chunkSuffix = fmt.Sprintf("_%d", index)
	}

	stem := dateSegment + "/" + stage.String() + "/" + base + chunkSuffix
	return DerivedKeys{
		ContentKey:  stem + ContentSuffix,
		MetadataKey: stem + MetadataSuffix,
	}, nil
}
