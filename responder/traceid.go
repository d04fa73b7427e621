package responder

import (
	"io"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ulidSource hands out monotonic ULIDs; the entropy reader is not safe for
// concurrent use, hence the lock.
type ulidSource struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newULIDSource(seed int64) *ulidSource {
	return &ulidSource{entropy: ulid.Monotonic(mathrand.New(mathrand.NewSource(seed)), 0)}
}

func (s *ulidSource) next(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}

var traceIDs = newULIDSource(time.Now().UnixNano())

func newTraceID() string {
	return traceIDs.next(time.Now())
}
