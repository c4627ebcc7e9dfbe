package leveldata

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache keeps recently generated levels so regenerating a seed that was
// already visited is instant. Cost is the level's byte size.
type Cache struct {
	levels *ristretto.Cache[string, *Level]
}

// NewCache creates a cache holding up to maxBytes of level data.
func NewCache(maxBytes int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *Level]{
		NumCounters: 1000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("level cache: %w", err)
	}
	return &Cache{levels: c}, nil
}

func cacheKey(rows, cols int, seed uint64) string {
	return fmt.Sprintf("%d|%d|%d", rows, cols, seed)
}

// Get returns a cached level, ok reports a hit.
func (c *Cache) Get(rows, cols int, seed uint64) (*Level, bool) {
	return c.levels.Get(cacheKey(rows, cols, seed))
}

// Generate returns the cached level for the arguments or generates and
// stores it.
func (c *Cache) Generate(rows, cols int, seed uint64) *Level {
	if lvl, ok := c.Get(rows, cols, seed); ok {
		return lvl
	}
	lvl := Generate(rows, cols, seed)
	c.levels.Set(cacheKey(rows, cols, seed), lvl, int64(3*rows*cols))
	c.levels.Wait()
	return lvl
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.levels.Close()
}
