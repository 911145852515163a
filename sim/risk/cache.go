package risk

// ScoreCache stores projected risk scores keyed by a scenario fingerprint,
// so repeated projections of the same scenario are served without recomputing
// the matrix exponentials.
type ScoreCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// MemoryCache is the in-process ScoreCache used when no Redis address is
// configured.
type MemoryCache struct {
	values map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]string)}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *MemoryCache) Set(key string, value string) error {
	c.values[key] = value
	return nil
}
