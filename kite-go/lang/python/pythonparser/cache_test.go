package pythonparser

import (
	"fmt"
	"testing"
	"time"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCache(t *testing.T) {
	// make sure cache is empty on start
	PurgeParseCache()
	assert.Equal(t, 0, parseCache.Len(), "parse cache should be empty on start")

	opts := Options{
		ErrorMode: Recover,
	}

	// get on an empty parse cache should not return anything
	contents := []byte("test = contents")
	p, ok := getCachedParse(contents, opts)
	assert.False(t, ok, "contents should not exist")
	assert.Nil(t, p, "contents should not exist")

	// add ten entries
	for i := 0; i < 10; i++ {
		contents = []byte(fmt.Sprintf("test = %d", i))
		Parse(contents, opts)
	}
	assert.Equal(t, 10, parseCache.Len(), "parse cache should have ten entries.")

	// adding the same entries should not result in more items in the cache
	for i := 0; i < 10; i++ {
		contents = []byte(fmt.Sprintf("test = %d", i))
		Parse(contents, opts)
	}
	assert.Equal(t, 10, parseCache.Len(), "parse cache should have ten entries.")

	// a different dialect is a different entry
	Parse(contents, Options{ErrorMode: Recover, Dialect: pythonast.Cython})
	assert.Equal(t, 11, parseCache.Len())

	// purging the cache should result in an empty cache
	PurgeParseCache()
	assert.Equal(t, 0, parseCache.Len(), "parse cache should be empty after purge")
}

func Test_ParseCacheReturnsSameModule(t *testing.T) {
	PurgeParseCache()
	src := []byte("x = 1\n")
	first, err := Parse(src, Options{})
	require.NoError(t, err)
	second, err := Parse(src, Options{})
	require.NoError(t, err)
	assert.True(t, first == second)
}

func Test_StaleCacheEntries(t *testing.T) {
	PurgeParseCache()

	opts := Options{ErrorMode: Recover}
	contents := []byte("test = contents")
	parseCache.Add(keyFor(contents, opts), &parseEntry{
		lastAccessTs: time.Now().Add(-20 * time.Minute),
	})
	assert.Equal(t, 1, parseCache.Len(), "parse cache should have one entry")

	// getting a stale entry should remove it
	_, ok := getCachedParse(contents, opts)
	assert.False(t, ok)
	assert.Equal(t, 0, parseCache.Len(), "parse cache should be empty")

	// parsing should replace the stale entry with a fresh one
	parseCache.Add(keyFor(contents, opts), &parseEntry{
		lastAccessTs: time.Now().Add(-20 * time.Minute),
	})
	mod, _ := Parse(contents, opts)
	require.NotNil(t, mod)
	entry, ok := getCachedParse(contents, opts)
	require.True(t, ok)
	assert.True(t, entry.mod == mod)
}

func Test_LimitCacheEntries(t *testing.T) {
	PurgeParseCache()

	now := time.Now()
	for i := 0; i < parseCacheSize+5; i++ {
		contents := []byte(fmt.Sprintf("test contents %d", i))
		parseCache.Add(keyFor(contents, Options{}), &parseEntry{
			lastAccessTs: now,
		})
	}
	assert.Equal(t, parseCacheSize, parseCache.Len(), "parse cache should be at capacity")
	PurgeParseCache()
}
