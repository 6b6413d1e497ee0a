package scryfall

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Cache maps looked up names to cards and persists them as JSON. Cards and
// tokens need separate caches, since some tokens share a name with a card.
type Cache struct {
	path string

	mu    sync.Mutex
	cards map[string]RawCard
	dirty bool
}

// OpenCache loads the cache at path. A missing file gives an empty cache.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{path: path, cards: make(map[string]RawCard)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card cache: %w", err)
	}
	if err := json.Unmarshal(data, &c.cards); err != nil {
		return nil, fmt.Errorf("failed to parse card cache %s: %w", path, err)
	}
	return c, nil
}

func (c *Cache) Get(name string) (RawCard, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	card, ok := c.cards[name]
	return card, ok
}

func (c *Cache) Put(name string, card RawCard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards[name] = card
	c.dirty = true
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cards)
}

// Save writes the cache back if it changed.
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty || c.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(c.cards, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write card cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to write card cache: %w", err)
	}
	c.dirty = false
	return nil
}
