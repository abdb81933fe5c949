package rbac

import "sync"

// permissionCache memoizes effective permission sets per user. The process
// owns the database exclusively, so invalidation on mutation is enough to
// keep it coherent; no TTL is needed.
type permissionCache struct {
	mu      sync.RWMutex
	entries map[string][]string
}

func newPermissionCache() *permissionCache {
	return &permissionCache{entries: make(map[string][]string)}
}

func (c *permissionCache) get(userID string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	perms, ok := c.entries[userID]
	return perms, ok
}

func (c *permissionCache) set(userID string, perms []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = perms
}

func (c *permissionCache) dropAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]string)
}

func (c *permissionCache) drop(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
}
