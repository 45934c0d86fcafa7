package gnews

import (
	"errors"
	"fmt"
)

// ErrAPIKeyRequired is returned when a client is built without an API key.
var ErrAPIKeyRequired = errors.New("gnews API key required")

// StatusError is a non-success HTTP response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gnews API returned status %d: %s", e.StatusCode, e.Body)
}
