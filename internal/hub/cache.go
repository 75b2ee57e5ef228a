package hub

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/egoavara/spin-hub/internal/log"
)

// cacheRecord is the on-disk form of one cached index, keyed by index URL
type cacheRecord struct {
	Entries    []Entry `json:"entries"`
	Expiration int64   `json:"expiration"` // unix nanoseconds, as go-cache stores it
}

// loadCache restores the unexpired indexes saved at path.
// A missing or unreadable file yields an empty cache.
func loadCache(path string, ttl time.Duration) *gocache.Cache {
	items := map[string]gocache.Item{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		log.Warn(log.CatHub, "cannot read cache file", "path", path, "error", err)
	default:
		var records map[string]cacheRecord
		if err := json.Unmarshal(data, &records); err != nil {
			log.Warn(log.CatHub, "ignoring corrupt cache file", "path", path, "error", err)
			break
		}
		now := time.Now().UnixNano()
		for url, r := range records {
			if r.Expiration > 0 && r.Expiration <= now {
				continue
			}
			items[url] = gocache.Item{Object: r.Entries, Expiration: r.Expiration}
		}
	}

	return gocache.NewFrom(ttl, 2*ttl, items)
}

// saveCache writes the unexpired indexes held by c to path
func saveCache(path string, c *gocache.Cache) error {
	records := map[string]cacheRecord{}
	for url, item := range c.Items() {
		entries, ok := item.Object.([]Entry)
		if !ok {
			continue
		}
		records[url] = cacheRecord{Entries: entries, Expiration: item.Expiration}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
