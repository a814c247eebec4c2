package pythonparser

import (
	"time"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

const (
	// parseCacheSize specifies the max number of parsed files to cache
	parseCacheSize = 1000
	// staleCutoff specifies when cache entries are considered stale
	staleCutoff = 10 * time.Minute
)

var parseCache = mustLRU(parseCacheSize)

func mustLRU(size int) *lru.Cache {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}
	return c
}

type cacheKey struct {
	hash    uint64
	dialect pythonast.Dialect
	mode    ErrorMode
}

type parseEntry struct {
	lastAccessTs time.Time
	mod          *pythonast.Module
	err          error
}

// PurgeParseCache purges the parse cache
func PurgeParseCache() {
	parseCache.Purge()
}

// --

func keyFor(contents []byte, opts Options) cacheKey {
	return cacheKey{
		hash:    hashContents(contents),
		dialect: opts.Dialect,
		mode:    opts.ErrorMode,
	}
}

func getCachedParse(contents []byte, opts Options) (*parseEntry, bool) {
	key := keyFor(contents, opts)
	v, ok := parseCache.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(*parseEntry)
	if time.Since(entry.lastAccessTs) > staleCutoff {
		parseCache.Remove(key)
		return nil, false
	}
	// entries are immutable once cached, refresh by replacing
	parseCache.Add(key, &parseEntry{
		lastAccessTs: time.Now(),
		mod:          entry.mod,
		err:          entry.err,
	})
	return entry, true
}

func cacheParse(contents []byte, opts Options, mod *pythonast.Module, err error) {
	parseCache.Add(keyFor(contents, opts), &parseEntry{
		lastAccessTs: time.Now(),
		mod:          mod,
		err:          err,
	})
}

func hashContents(contents []byte) uint64 {
	return spooky.Hash64(contents)
}
