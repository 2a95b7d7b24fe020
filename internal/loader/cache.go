package loader

import (
	"sync"

	"oceandash/domain/table"
)

// Cache memoizes Load results by indicator key. Source files are treated as
// immutable for the process lifetime, so entries are never invalidated within
// a run; restart the process to pick up changed files. Failed loads are not
// cached, so fixing a missing file and re-selecting the indicator recovers
// without a restart.
type Cache struct {
	loader *Loader

	mu     sync.RWMutex
	tables map[string]*table.Table
}

// NewCache wraps a loader with a per-key memo.
func NewCache(loader *Loader) *Cache {
	return &Cache{
		loader: loader,
		tables: make(map[string]*table.Table),
	}
}

// Load returns the cached table for key, loading it on first use.
func (c *Cache) Load(key string) (*table.Table, error) {
	c.mu.RLock()
	cached, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another request may have loaded it while we waited for the lock.
	if cached, ok := c.tables[key]; ok {
		return cached, nil
	}

	loaded, err := c.loader.Load(key)
	if err != nil {
		return nil, err
	}
	c.tables[key] = loaded
	return loaded, nil
}
