package portfolio

import (
	"sync"
	"time"
)

// IDGenerator issues record ids derived from the current time in
// milliseconds. Ids are guarded to be strictly increasing, so two records
// created within the same millisecond still get distinct ids. Ids are never
// reused or recomputed once assigned.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorAt uses the supplied clock. Tests pin it to get
// deterministic ids.
func NewIDGeneratorAt(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
