package core

// Stage identifies an enrichment pipeline phase. The stage name is embedded
// in derived output paths, so values are part of the persisted layout.
type Stage string

const (
	// StageOriginal is the content-extraction stage: article text is copied
	// verbatim from the staged JSON into a .txt artifact.
	StageOriginal Stage = "original"

	// StageSummarized is the summarization stage: article text is chunked
	// and each chunk is summarized by the model collaborator.
	StageSummarized Stage = "summarized"
)

// Valid reports whether the stage is one of the known pipeline phases.
func (s Stage) Valid() bool {
	return s == StageOriginal || s == StageSummarized
}

// String returns the stage name as used in derived keys.
func (s Stage) String() string {
	return string(s)
}

// ArticleRecord is the staged representation of one news article.
// It is produced by the ingester and parsed back from the blob body by the
// enrichment driver. Content is the only field required for enrichment;
// records with empty content are skipped, not failed.
type ArticleRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Topic       string `json:"topic"`
	Content     string `json:"content"`
}

// Metadata is the reduced projection of an ArticleRecord persisted alongside
// every content artifact, one metadata object per chunk.
type Metadata struct {
	PublishedAt string `json:"publishedAt"`
	Topic       string `json:"topic"`
}

// Meta returns the metadata projection of the record.
func (r *ArticleRecord) Meta() Metadata {
	return Metadata{
		PublishedAt: r.PublishedAt,
		Topic:       r.Topic,
	}
}

// DerivedKeys is the destination key pair for one chunk of one source object.
type DerivedKeys struct {
	ContentKey  string
	MetadataKey string
}
