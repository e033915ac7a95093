package utils

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a monotonic, time-derived identifier (Unix milliseconds).
// Two records created in the same millisecond still get distinct, ordered ids.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
