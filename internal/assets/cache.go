package assets

import (
	"context"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

var _ Fetcher = (*CachingFetcher)(nil)

// CachingFetcher deduplicates concurrent fetches of one url and keeps up to
// capacity results, evicting the oldest first.
type CachingFetcher struct {
	next     Fetcher
	capacity int

	group singleflight.Group

	mu    sync.Mutex
	items map[uint64][]byte
	order []uint64
}

func NewCachingFetcher(next Fetcher, capacity int) *CachingFetcher {
	if capacity <= 0 {
		capacity = 64
	}
	return &CachingFetcher{
		next:     next,
		capacity: capacity,
		items:    make(map[uint64][]byte, capacity),
	}
}

func (c *CachingFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := xxhash.Sum64String(url)
	if data, ok := c.get(key); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		data, err := c.next.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		c.put(key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *CachingFetcher) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *CachingFetcher) get(key uint64) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.items[key]
	return data, ok
}

func (c *CachingFetcher) put(key uint64, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[key] = data
	c.order = append(c.order, key)
}
