// Package dedup suppresses repeated clicks from the same client within a
// rolling window.
package dedup

import (
	"sync"
	"time"
)

// pruneThreshold bounds the in-memory map; once exceeded, entries older
// than the window are dropped.
const pruneThreshold = 5000

// Deduper remembers when each (jobID, client) pair was last seen. State is
// process-local and resets on restart, so suppression only holds within a
// single running instance's uptime.
type Deduper struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time

	// now is swappable in tests.
	now func() time.Time
}

// New builds a Deduper with the given suppression window.
func New(window time.Duration) *Deduper {
	if window <= 0 {
		window = time.Minute
	}
	return &Deduper{
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// IsDuplicate records a sighting of the pair and reports whether it was
// already seen within the window.
func (d *Deduper) IsDuplicate(jobID, client string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	key := jobID + ":" + client
	lastSeen, seen := d.seen[key]
	d.seen[key] = now

	if len(d.seen) > pruneThreshold {
		for entry, at := range d.seen {
			if now.Sub(at) > d.window {
				delete(d.seen, entry)
			}
		}
	}

	return seen && now.Sub(lastSeen) < d.window
}

// SetClock replaces the time source. Test hook.
func (d *Deduper) SetClock(now func() time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
}

// Len reports how many pairs are currently tracked.
func (d *Deduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
