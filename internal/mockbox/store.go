// Package mockbox is an in-memory stand-in for the Homebox API. It
// serves the same wire shapes the real API does: a paged item search,
// single-item lookup, and a location list, plus admin endpoints for
// error injection during resilience testing.
package mockbox

import (
	"strings"
	"sync"

	"homebox-inventory-tool/internal/homebox"
)

// Store holds the in-memory inventory.
type Store struct {
	mu        sync.RWMutex
	items     []homebox.Item
	locations []homebox.Location
}

// NewStore initializes an empty Store. Call LoadSeed to populate it.
func NewStore() *Store {
	return &Store{}
}

// SearchItems filters and pages the item list. An empty query matches
// everything; the query is a case-insensitive substring match on name
// and description. A non-empty locationID keeps only items assigned to
// that location. Total counts all matches regardless of paging.
func (s *Store) SearchItems(query, locationID string, page, pageSize int) homebox.ItemsPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	needle := strings.ToLower(query)
	matches := make([]homebox.Item, 0)
	for _, item := range s.items {
		if needle != "" && !matchesQuery(item, needle) {
			continue
		}
		if locationID != "" && (item.Location == nil || item.Location.ID != locationID) {
			continue
		}
		matches = append(matches, item)
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	return homebox.ItemsPage{
		Total: len(matches),
		Items: matches[start:end],
	}
}

func matchesQuery(item homebox.Item, needle string) bool {
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}

// GetItem returns an item by ID.
func (s *Store) GetItem(id string) (homebox.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return homebox.Item{}, false
}

// Locations returns all locations in seed order.
func (s *Store) Locations() []homebox.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locations := make([]homebox.Location, len(s.locations))
	copy(locations, s.locations)
	return locations
}

// Counts returns the number of items and locations, for startup logs
// and the admin status endpoint.
func (s *Store) Counts() (items, locations int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), len(s.locations)
}
