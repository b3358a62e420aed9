package locationrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/aqisense/aqi-sense/internal/domain/location"
)

// MemoryRepository keeps lookup counters in process memory for dev/tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// Increment implements location.HistoryRepository.
func (r *MemoryRepository) Increment(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[canonical]++
	if _, exists := r.displays[canonical]; !exists && display != "" {
		r.displays[canonical] = display
	}
	return nil
}

// Top implements location.HistoryRepository.
func (r *MemoryRepository) Top(_ context.Context, limit int) ([]location.TrendingLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = len(r.counts)
	}

	items := make([]location.TrendingLocation, 0, len(r.counts))
	for canonical, count := range r.counts {
		display := r.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, location.TrendingLocation{Name: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Name < items[j].Name
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

var _ location.HistoryRepository = (*MemoryRepository)(nil)
