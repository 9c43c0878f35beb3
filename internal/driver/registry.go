package driver

import (
	"sync"

	"github.com/hailam/eternity/internal/search"
)

// Registry collects every worker's Stats pointer so the observability
// surface (internal/metrics) can poll live counters without the driver
// package depending on metrics, or workers needing to know who's watching.
type Registry struct {
	mu    sync.RWMutex
	stats []*search.Stats
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) register(s *search.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, s)
}

// Snapshots returns a point-in-time copy of every registered worker's
// counters, in worker-id order.
func (r *Registry) Snapshots() []search.StatsSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]search.StatsSnapshot, len(r.stats))
	for i, s := range r.stats {
		out[i] = s.Snapshot()
	}
	return out
}
