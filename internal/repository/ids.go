// filepath: internal/repository/ids.go
package repository

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// The monotonic entropy source is not safe for concurrent use, so all ID
// generation goes through one mutex.
var (
	idMu      sync.Mutex
	idEntropy = ulid.Monotonic(rand.Reader, 0)
)

// NewID produces a business key as prefix + ULID, e.g.
// "photo_01J3ZK8Q2P4R5S6T7V8W9X0Y1Z". The prefix keeps resource types
// readable in URLs; the ULID part is sortable by creation time and unique.
func NewID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()
	return prefix + ulid.MustNew(ulid.Timestamp(time.Now()), idEntropy).String()
}
