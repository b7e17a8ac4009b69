package labels

import (
	"log/slog"
	"sync"
	"time"

	"packtrack/internal/core/domain/model/kernel"
)

// Render is one finished render in the cache.
type Render struct {
	RequestID  kernel.UUID
	Data       []byte
	RenderedAt time.Time
}

// RenderFunc produces the bytes for a label key.
type RenderFunc func() ([]byte, error)

// Cache is a keyed render cache. Request kicks off the render in the
// background and returns immediately; Get serves whatever finished last.
// The render function is remembered per key so Refresh can re-render
// every known label against the live read models.
type Cache struct {
	mu      sync.RWMutex
	renders map[string]Render
	funcs   map[string]RenderFunc
	latest  map[string]kernel.UUID
	logger  *slog.Logger
}

// NewCache creates an empty render cache.
func NewCache(logger *slog.Logger) *Cache {
	return &Cache{
		renders: make(map[string]Render),
		funcs:   make(map[string]RenderFunc),
		latest:  make(map[string]kernel.UUID),
		logger:  logger,
	}
}

// Request schedules a render for the key and returns its request ID.
// Renders are last-write-wins: a slow render that finishes after a newer
// one was requested is discarded.
func (c *Cache) Request(key string, render RenderFunc) kernel.UUID {
	id := kernel.NewUUID()

	c.mu.Lock()
	c.funcs[key] = render
	c.latest[key] = id
	c.mu.Unlock()

	go c.run(key, id, render)
	return id
}

// Get returns the latest finished render for the key.
func (c *Cache) Get(key string) (Render, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.renders[key]
	return r, ok
}

// Keys returns every key a render was ever requested for.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.funcs))
	for key := range c.funcs {
		keys = append(keys, key)
	}
	return keys
}

// Refresh re-renders every known key synchronously. Used by the refresh
// job so cached labels track allocation changes.
func (c *Cache) Refresh() {
	c.mu.RLock()
	funcs := make(map[string]RenderFunc, len(c.funcs))
	for key, fn := range c.funcs {
		funcs[key] = fn
	}
	c.mu.RUnlock()

	for key, fn := range funcs {
		id := kernel.NewUUID()
		c.mu.Lock()
		c.latest[key] = id
		c.mu.Unlock()
		c.run(key, id, fn)
	}
}

func (c *Cache) run(key string, id kernel.UUID, render RenderFunc) {
	data, err := render()
	if err != nil {
		c.logger.Error("label render failed", "key", key, "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.latest[key].IsEqual(id) {
		return
	}
	c.renders[key] = Render{RequestID: id, Data: data, RenderedAt: time.Now()}
}
