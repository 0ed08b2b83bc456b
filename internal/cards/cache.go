package cards

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store is the process-wide read-through cache over the card catalog. It
// implements Table and is safe for concurrent reads once populated;
// concurrent refreshes collapse into a single fetch.
type Store struct {
	client *Client
	ttl    time.Duration

	sf singleflight.Group

	mu      sync.RWMutex
	byID    map[uint64]Card
	fetched time.Time
}

func NewStore(client *Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Ensure populates the catalog when it is empty or past its TTL.
func (s *Store) Ensure(ctx context.Context) error {
	s.mu.RLock()
	fresh := s.byID != nil && time.Since(s.fetched) < s.ttl
	s.mu.RUnlock()
	if fresh {
		return nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches the catalog unconditionally. Callers arriving while a
// fetch is in flight share its result.
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.sf.Do("catalog", func() (any, error) {
		catalog, err := s.client.FetchCatalog(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint64]Card, len(catalog))
		for _, c := range catalog {
			byID[c.ID] = c
		}
		s.mu.Lock()
		s.byID = byID
		s.fetched = time.Now()
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// Lookup implements Table. It reads whatever is cached; callers that need
// freshness run Ensure first.
func (s *Store) Lookup(id uint64) (Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	return c, ok
}

// Search returns catalog cards whose name or text contains every word of
// the query, case-insensitively, ordered by cost then name.
func (s *Store) Search(query string) []Card {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Card
	for _, c := range s.byID {
		haystack := strings.ToLower(c.Name + " " + c.Text)
		matched := true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].Name < out[j].Name
	})
	return out
}
