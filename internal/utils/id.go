package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a best-effort unique identifier for connections and uploads.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// Fallback to a timestamp if the entropy source is unavailable.
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id.String()
}
