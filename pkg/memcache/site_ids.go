package memcache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SiteIDCache memoizes slug -> site id lookups. Site rows almost never
// change, and every configurator request starts with this lookup. Caching
// lives here with the caller, never inside the price engine.
type SiteIDCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]siteEntry
}

type siteEntry struct {
	id        uuid.UUID
	expiresAt time.Time
}

func NewSiteIDCache(ttl time.Duration) *SiteIDCache {
	return &SiteIDCache{
		ttl:  ttl,
		data: make(map[string]siteEntry),
	}
}

func (s *SiteIDCache) Get(slug string) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[slug]
	if !ok || time.Now().After(e.expiresAt) {
		return uuid.Nil, false
	}
	return e.id, true
}

func (s *SiteIDCache) Set(slug string, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[slug] = siteEntry{
		id:        id,
		expiresAt: time.Now().Add(s.ttl),
	}
}
