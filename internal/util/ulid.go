package util

import (
	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a ULID for correlating a request's log entries.
// ulid.Make uses a locked process-wide entropy source, so it is safe for
// concurrent use.
func NewRequestID() string {
	return ulid.Make().String()
}
