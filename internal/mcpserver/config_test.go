package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearOASPATHEnv clears all OASPATH_* env vars to isolate tests from the ambient environment.
func clearOASPATHEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASPATH_CACHE_ENABLED", "OASPATH_CACHE_MAX_SIZE",
		"OASPATH_CACHE_FILE_TTL", "OASPATH_CACHE_URL_TTL",
		"OASPATH_CACHE_CONTENT_TTL", "OASPATH_CACHE_SWEEP_INTERVAL",
		"OASPATH_MAX_INLINE_SIZE", "OASPATH_ALLOW_PRIVATE_IPS",
		"OASPATH_RESOLVE_REFS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASPATHEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.False(t, c.ResolveRefs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASPATHEnv(t)
	t.Setenv("OASPATH_CACHE_ENABLED", "false")
	t.Setenv("OASPATH_CACHE_MAX_SIZE", "50")
	t.Setenv("OASPATH_CACHE_FILE_TTL", "30m")
	t.Setenv("OASPATH_CACHE_URL_TTL", "2m")
	t.Setenv("OASPATH_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASPATH_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASPATH_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASPATH_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("OASPATH_RESOLVE_REFS", "1")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.True(t, c.ResolveRefs)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearOASPATHEnv(t)
	t.Setenv("OASPATH_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASPATH_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASPATH_CACHE_URL_TTL", "-1m")
	t.Setenv("OASPATH_CACHE_ENABLED", "maybe")
	t.Setenv("OASPATH_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASPATH_RESOLVE_REFS", "sometimes")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.ResolveRefs)
}
