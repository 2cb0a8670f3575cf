package authprovider

import (
	"sync"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// MemoryHealthCache is the process-local cache cell behind the health
// endpoint. Each instance of a horizontally scaled deployment has its
// own copy; the interface allows swapping in a shared cache.

type MemoryHealthCache struct {
	mu    sync.RWMutex
	entry interfaces.CachedAuthHealth
	set   bool
}

var _ interfaces.IAuthHealthCache = (*MemoryHealthCache)(nil)

func NewMemoryHealthCache() *MemoryHealthCache {
	return &MemoryHealthCache{}
}

func (c *MemoryHealthCache) Get() (interfaces.CachedAuthHealth, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entry, c.set
}

func (c *MemoryHealthCache) Put(entry interfaces.CachedAuthHealth) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = entry
	c.set = true
}
