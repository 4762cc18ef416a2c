package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a TTL key-value cache for read-path responses.
type Store struct {
	ttl     time.Duration
	backend *gocache.Cache
}

// New creates a Store whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		backend: gocache.New(ttl, 2*ttl),
	}
}

func (s *Store) Get(key string) (any, bool) {
	return s.backend.Get(key)
}

func (s *Store) Set(key string, value any) {
	s.backend.Set(key, value, s.ttl)
}

func (s *Store) Delete(key string) {
	s.backend.Delete(key)
}

// Flush drops every entry. Called after story upserts so reads never serve
// documents older than the last write for longer than one request.
func (s *Store) Flush() {
	s.backend.Flush()
}
