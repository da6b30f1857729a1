package assets

import (
	"context"
	"sync"
)

var _ Fetcher = (*MemoryFetcher)(nil)

// MemoryFetcher serves assets from a map. Calls counts fetches per url.
type MemoryFetcher struct {
	mu     sync.RWMutex
	assets map[string][]byte
	calls  map[string]int
}

func NewMemoryFetcher() *MemoryFetcher {
	return &MemoryFetcher{assets: make(map[string][]byte), calls: make(map[string]int)}
}

func (f *MemoryFetcher) Put(url string, data []byte) {
	f.mu.Lock()
	f.assets[url] = data
	f.mu.Unlock()
}

func (f *MemoryFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[url]++
	data, ok := f.assets[url]
	if !ok {
		return nil, &StatusError{URL: url, Status: 404}
	}
	return data, nil
}

func (f *MemoryFetcher) Calls(url string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls[url]
}
