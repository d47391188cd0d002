// pkg/memcache/embeddings.go
package memcache

import (
	"sync"
	"time"

	"github.com/pgvector/pgvector-go"
)

type EmbeddingCache interface {
	Set(query string, embedding pgvector.Vector, ttl time.Duration)

	// Get returns the cached embedding for query if not expired.
	Get(query string) (pgvector.Vector, bool)
}

type entry struct {
	embedding pgvector.Vector
	expiresAt time.Time
}

type Embeddings struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewEmbeddings() *Embeddings {
	return &Embeddings{
		data: make(map[string]entry),
	}
}

func (s *Embeddings) Set(query string, embedding pgvector.Vector, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[query] = entry{
		embedding: embedding,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Embeddings) Get(query string) (pgvector.Vector, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[query]
	if !ok {
		return pgvector.Vector{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, query) // cleanup expired
		return pgvector.Vector{}, false
	}
	return e.embedding, true
}
