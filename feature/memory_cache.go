package feature

import (
	"context"
	"sync"
	"time"
)

// MemoryTasteCache 是内存口味缓存，带 TTL 与简单 LRU 淘汰。
// 用于给远程口味数据源（Store、Feast）挡一层本地缓存。
type MemoryTasteCache struct {
	mu              sync.Mutex
	entries         map[string]*cacheEntry
	maxSize         int
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	cleanupTicker   *time.Ticker
	stopCleanup     chan struct{}
}

type cacheEntry struct {
	tastes     map[string]float64
	expireTime time.Time
	accessTime time.Time
}

var _ TasteCache = (*MemoryTasteCache)(nil)

// NewMemoryTasteCache 创建内存口味缓存并启动后台清理协程。
func NewMemoryTasteCache(maxSize int, defaultTTL time.Duration) *MemoryTasteCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	c := &MemoryTasteCache{
		entries:         make(map[string]*cacheEntry),
		maxSize:         maxSize,
		defaultTTL:      defaultTTL,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}
	c.cleanupTicker = time.NewTicker(c.cleanupInterval)
	go c.cleanup()
	return c
}

func (c *MemoryTasteCache) cleanup() {
	for {
		select {
		case <-c.cleanupTicker.C:
			c.cleanExpired()
		case <-c.stopCleanup:
			c.cleanupTicker.Stop()
			return
		}
	}
}

func (c *MemoryTasteCache) cleanExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	for customerID, entry := range c.entries {
		if now.After(entry.expireTime) {
			delete(c.entries, customerID)
		}
	}
	c.evictLRU(c.maxSize)
}

// evictLRU 淘汰最久未访问的条目直到容量不超过 limit。调用方需已持锁。
func (c *MemoryTasteCache) evictLRU(limit int) {
	for len(c.entries) > limit {
		var oldestKey string
		var oldestTime time.Time
		first := true
		for key, entry := range c.entries {
			if first || entry.accessTime.Before(oldestTime) {
				oldestKey = key
				oldestTime = entry.accessTime
				first = false
			}
		}
		if first {
			return
		}
		delete(c.entries, oldestKey)
	}
}

func (c *MemoryTasteCache) Get(ctx context.Context, customerID string) (map[string]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[customerID]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expireTime) {
		delete(c.entries, customerID)
		return nil, false
	}
	entry.accessTime = time.Now()
	return entry.tastes, true
}

func (c *MemoryTasteCache) Set(ctx context.Context, customerID string, tastes map[string]float64, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[customerID]; !exists {
		c.evictLRU(c.maxSize - 1)
	}
	c.entries[customerID] = &cacheEntry{
		tastes:     tastes,
		expireTime: time.Now().Add(ttl),
		accessTime: time.Now(),
	}
}

func (c *MemoryTasteCache) Invalidate(ctx context.Context, customerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, customerID)
}

func (c *MemoryTasteCache) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Close 停止后台清理协程。
func (c *MemoryTasteCache) Close() {
	close(c.stopCleanup)
}
