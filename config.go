package mixedtext

import (
	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyCacheMax         = "mixedtext.cache.max"
	KeyCacheEvict       = "mixedtext.cache.evict"
	KeyAsyncThreshold   = "mixedtext.async.threshold"
	KeyProgressInterval = "mixedtext.progress.interval"
	KeyYieldInterval    = "mixedtext.yield.interval"
)

// Config holds the parameters of a Parser.
type Config struct {
	MaxCacheEntries  int // upper bound for the number of cached texts
	EvictBatch       int // number of oldest entries dropped when the cache is full
	AsyncThreshold   int // texts with fewer characters are parsed synchronously by Resolve
	ProgressInterval int // report progress every n characters
	YieldInterval    int // yield the processor every n characters
}

// DefaultConfig returns the configuration used for zero-valued fields.
func DefaultConfig() Config {
	return Config{
		MaxCacheEntries:  100,
		EvictBatch:       10,
		AsyncThreshold:   100,
		ProgressInterval: 100,
		YieldInterval:    500,
	}
}

// ConfigFrom reads a parser configuration from an application configuration.
// Keys not set or set to non-positive values are replaced by defaults.
func ConfigFrom(conf schuko.Configuration) Config {
	c := Config{}
	if conf == nil {
		return c.withDefaults()
	}
	c.MaxCacheEntries = conf.GetInt(KeyCacheMax)
	c.EvictBatch = conf.GetInt(KeyCacheEvict)
	c.AsyncThreshold = conf.GetInt(KeyAsyncThreshold)
	c.ProgressInterval = conf.GetInt(KeyProgressInterval)
	c.YieldInterval = conf.GetInt(KeyYieldInterval)
	return c.withDefaults()
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxCacheEntries <= 0 {
		c.MaxCacheEntries = d.MaxCacheEntries
	}
	if c.EvictBatch <= 0 {
		c.EvictBatch = d.EvictBatch
	}
	if c.AsyncThreshold <= 0 {
		c.AsyncThreshold = d.AsyncThreshold
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = d.ProgressInterval
	}
	if c.YieldInterval <= 0 {
		c.YieldInterval = d.YieldInterval
	}
	return c
}
