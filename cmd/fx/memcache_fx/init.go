package memcache_fx

import (
	"go.uber.org/fx"
	mem "tourgether/pkg/memcache"
)

var Module = fx.Provide(provideEmbeddingCache)

func provideEmbeddingCache() mem.EmbeddingCache {
	return mem.NewEmbeddings()
}
