package entity

import (
	"errors"
	"fmt"
)

// ErrEndpointNotFound reports an unknown endpoint id in an admin mutation.
var ErrEndpointNotFound = errors.New("endpoint not found")

// UpstreamError preserves a non-200 upstream reply so callers can relay
// status and body verbatim instead of reinterpreting them.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("upstream status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}
