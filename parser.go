package mixedtext

import "unicode/utf8"

// Parser segments texts into lines, memoizing results in a Cache.
//
// An application creates a single Parser at start-up and hands it to every
// renderer in need of segmented text. Lifetime of cached entries is the
// lifetime of the Parser, unless ClearCache is called.
type Parser struct {
	config Config
	cache  *Cache
}

// NewParser creates a parser. Zero-valued fields of config are replaced
// by defaults (see DefaultConfig).
func NewParser(config Config) *Parser {
	config = config.withDefaults()
	return &Parser{
		config: config,
		cache:  NewCache(config.MaxCacheEntries, config.EvictBatch),
	}
}

// Config returns the parser's effective configuration.
func (p *Parser) Config() Config {
	return p.config
}

// Cache returns the parser's cache.
func (p *Parser) Cache() *Cache {
	return p.cache
}

// Lines segments text and groups the segments into lines of uniform
// direction. Identical texts are segmented only once, as long as they stay
// in the cache.
func (p *Parser) Lines(text string) []TextLine {
	return p.cache.GetOrCompute(text)
}

// ClearCache drops all cached texts. It is intended as a manual control,
// e.g. for an application-wide "clear caches" setting.
func (p *Parser) ClearCache() {
	p.cache.Clear()
}

// CacheStats returns size and keys of the parser's cache.
func (p *Parser) CacheStats() CacheStats {
	return p.cache.Stats()
}

// Resolve returns a job computing the lines for text. Texts shorter than
// Config.AsyncThreshold characters are segmented immediately and the job
// returned is already complete; longer texts are segmented in the background,
// reporting progress to l (which may be nil).
func (p *Parser) Resolve(text string, l ProgressListener) *Job {
	if utf8.RuneCountInString(text) < p.config.AsyncThreshold {
		return completedJob(p.Lines(text))
	}
	return p.Start(text, l)
}
