package catalog

import "sync"

// Cache is the local product store the screens read from. It is
// read-mostly reference data: a fetch-all replaces it wholesale, a
// fetch-by-id merges a single entry. Last writer wins per entry.
type Cache struct {
	mu    sync.RWMutex
	items []Product
}

func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll swaps the whole cache for the given snapshot.
func (c *Cache) ReplaceAll(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]Product, len(products))
	copy(c.items, products)
}

// Merge updates an entry in place when present by id, otherwise appends.
func (c *Cache) Merge(p Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i] = p
			return
		}
	}
	c.items = append(c.items, p)
}

// List returns a copy of the cached products in insertion order.
func (c *Cache) List() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the cached product with the given id, if any.
func (c *Cache) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i], true
		}
	}
	return Product{}, false
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
