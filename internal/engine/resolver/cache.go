package resolver

import (
	"sync"

	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/ports"
)

// ImportCache maps an identifier to the root node of the first subtree
// loaded for it during a run. Later entries for the same identifier attach
// linked duplicates of that root instead of loading the asset again.
//
// Entries are never removed during a run; Reset empties the cache before
// the next one.
type ImportCache struct {
	mu      sync.RWMutex
	entries map[domain.Identifier]ports.Node
}

// NewImportCache creates an empty ImportCache.
func NewImportCache() *ImportCache {
	return &ImportCache{
		entries: make(map[domain.Identifier]ports.Node),
	}
}

// Get returns the cached root for id.
func (c *ImportCache) Get(id domain.Identifier) (ports.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	root, ok := c.entries[id]
	return root, ok
}

// Put records root as the loaded subtree for id.
func (c *ImportCache) Put(id domain.Identifier, root ports.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = root
}

// Reset empties the cache.
func (c *ImportCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[domain.Identifier]ports.Node)
}

// Len returns the number of cached identifiers.
func (c *ImportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
