package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/cache"
)

func TestLRUPutGet(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("b", 20)
	v, _ = c.Get("b")
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRUGetOrLoad(t *testing.T) {
	t.Parallel()

	calls := 0
	load := func(k string) (string, error) {
		calls++
		if k == "bad" {
			return "", errors.New("cannot load")
		}
		return "v:" + k, nil
	}

	c := cache.New[string, string](4)
	v, err := c.GetOrLoad("x", load)
	require.NoError(t, err)
	assert.Equal(t, "v:x", v)

	v, err = c.GetOrLoad("x", load)
	require.NoError(t, err)
	assert.Equal(t, "v:x", v)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrLoad("bad", load)
	require.Error(t, err)
	_, err = c.GetOrLoad("bad", load)
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, c.Len())
}

func TestLRUNonPositiveCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.New[int, int](0) })
}

func TestLRUConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i+j)%32)
				_, _ = c.GetOrLoad(key, func(string) (int, error) { return j, nil })
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
