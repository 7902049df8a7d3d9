package providers

import (
	"insightd/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger keeps provider tests free of log files.
type nopLogger struct{}

func (nopLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (nopLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (nopLogger) Close()                                        {}

// countMetrics counts cache hit/miss calls for the decorator tests.
type countMetrics struct {
	hits   int
	misses int
}

func (m *countMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *countMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *countMetrics) IncCacheHits()                                    { m.hits++ }
func (m *countMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *countMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *countMetrics) IncAIRequests(_, _ string)                        {}
func (m *countMetrics) ObserveAIDuration(_ string, _ time.Duration)      {}

func cacheConfig(enabled bool, sizeMB, ttl int) *structures.Config {
	conf := &structures.Config{}
	conf.Cache.Enabled = enabled
	conf.Cache.Size = sizeMB
	conf.Cache.TTL = ttl
	return conf
}

func TestCacheProvider_SetGetDel(t *testing.T) {
	cache := NewCacheProvider(cacheConfig(true, 1, 60), nopLogger{})

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("key", []byte("value"))
	val, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), val)

	cache.Del("key")
	_, ok = cache.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_DisabledIsNoop(t *testing.T) {
	cache := NewCacheProvider(cacheConfig(false, 1, 60), nopLogger{})

	cache.Set("key", []byte("value"))
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCacheProvider_ZeroSizeIsNoop(t *testing.T) {
	cache := NewCacheProvider(cacheConfig(true, 0, 60), nopLogger{})

	cache.Set("key", []byte("value"))
	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	metrics := &countMetrics{}
	cache := NewInstrumentedCacheProvider(cacheConfig(true, 1, 60), nopLogger{}, metrics)

	_, _ = cache.Get("missing")
	cache.Set("key", []byte("value"))
	_, _ = cache.Get("key")
	_, _ = cache.Get("key")

	assert.Equal(t, 2, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestInstrumentedCache_DisabledSkipsDecorator(t *testing.T) {
	metrics := &countMetrics{}
	cache := NewInstrumentedCacheProvider(cacheConfig(false, 1, 60), nopLogger{}, metrics)

	_, _ = cache.Get("anything")
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}
