package blob

import "time"

// ObjectInfo describes one stored object as returned by a listing.
type ObjectInfo struct {
	Key     string
	Size    int64
	ETag    string
	ModTime time.Time
}

// ListOptions controls pagination of a listing.
type ListOptions struct {
	// PageToken resumes listing from a previous page's NextToken.
	// Empty starts from the beginning of the prefix.
	PageToken string

	// PageSize caps the number of objects per page. Zero or negative uses
	// the implementation default.
	PageSize int
}

// ListPage is one page of a listing.
type ListPage struct {
	Objects []ObjectInfo

	// NextToken resumes the listing on the following page.
	// Empty means this page is the last.
	NextToken string
}

// Common content types for stored artifacts.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)
