package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/erraggy/oaspath/parser"
	"github.com/erraggy/oaspath/serializer"
)

// specInput represents the three ways an OAS document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS 3.x file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OAS 3.x document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS 3.x document content (JSON or YAML)"`
}

// cacheEntry holds a cached serializer with LRU ordering and TTL expiry.
type cacheEntry struct {
	serializer *serializer.Serializer
	insertAt   time.Time
	expiresAt  time.Time
}

// serializerCacheStore keeps one Serializer per document for the session, so
// that the parameter index built by earlier calls is reused.
// File inputs are keyed by (absolutePath, modTime), content inputs by a
// SHA-256 hash and URL inputs by the URL string.
type serializerCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var serializerCache = &serializerCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

var resolveGroup singleflight.Group

// get returns a cached serializer or nil. Expired entries are lazily removed.
func (c *serializerCacheStore) get(key string) *serializer.Serializer {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.insertAt = time.Now()
	return e.serializer
}

// put stores s with the given TTL, evicting the least recently used entry
// when the cache is full.
func (c *serializerCacheStore) put(key string, s *serializer.Serializer, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{serializer: s, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *serializerCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Only the first call spawns a sweeper; it stops when ctx
// is cancelled.
func (c *serializerCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *serializerCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *serializerCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey identifies the document behind s and the serializer settings.
// It returns "" when the input cannot be cached.
func (s specInput) cacheKey(resolveRefs bool) string {
	var key string
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		key = fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		key = "content:" + hex.EncodeToString(h[:])
	case s.URL != "":
		key = "url:" + s.URL
	default:
		return ""
	}
	return fmt.Sprintf("%s:refs=%t", key, resolveRefs)
}

// ttl returns the cache lifetime for the kind of input.
func (s specInput) ttl() time.Duration {
	switch {
	case s.File != "":
		return cfg.CacheFileTTL
	case s.URL != "":
		return cfg.CacheURLTTL
	default:
		return cfg.CacheContentTTL
	}
}

// validate checks that exactly one source is set and that inline content
// is within the configured size limit.
func (s specInput) validate() error {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASPATH_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve returns a Serializer for the document, reusing a cached one when
// the same input was seen before.
func (s specInput) resolve(resolveRefs bool) (*serializer.Serializer, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey(resolveRefs)
	}
	if key == "" {
		return s.build(resolveRefs)
	}
	if cached := serializerCache.get(key); cached != nil {
		return cached, nil
	}

	// concurrent calls for the same input share one parse
	v, err, _ := resolveGroup.Do(key, func() (any, error) {
		if cached := serializerCache.get(key); cached != nil {
			return cached, nil
		}
		ser, err := s.build(resolveRefs)
		if err != nil {
			return nil, err
		}
		serializerCache.put(key, ser, s.ttl())
		return ser, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*serializer.Serializer), nil
}

// build parses the input and binds a new Serializer to it.
func (s specInput) build(resolveRefs bool) (*serializer.Serializer, error) {
	logger := parser.NewSlogAdapter(nil)
	opts := []parser.Option{parser.WithLogger(logger)}
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}

	parsed, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	return serializer.New(parsed,
		serializer.WithResolveRefs(resolveRefs),
		serializer.WithLogger(logger),
	)
}
