package memcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1)
	c.Set("b", 2)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestCache_GetMissing(t *testing.T) {
	c := New[string, int]()

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCache_Delete(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n, n)
			c.Get(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Len())
}
