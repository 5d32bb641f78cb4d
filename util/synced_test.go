package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeCounter(t *testing.T) {
	t.Run("Basic Operations", func(t *testing.T) {
		sc := NewSafeInt()
		assert.Equal(t, 0, sc.Value())

		assert.Equal(t, 1, sc.Increment())
		assert.Equal(t, 1, sc.Value())

		sc.Set(100)
		assert.Equal(t, 100, sc.Value())
		assert.Equal(t, 101, sc.Increment())
	})

	t.Run("Concurrency", func(t *testing.T) {
		sc := NewSafeInt()
		var wg sync.WaitGroup
		iterations := 1000

		wg.Add(iterations)
		for i := 0; i < iterations; i++ {
			go func() {
				defer wg.Done()
				sc.Increment()
			}()
		}
		wg.Wait()

		assert.Equal(t, iterations, sc.Value())
	})
}

func TestSafeFlag(t *testing.T) {
	sf := NewSafeBool()
	assert.False(t, sf.Value())

	assert.True(t, sf.Set(true))
	assert.True(t, sf.Value())

	assert.False(t, sf.Set(false))
	assert.False(t, sf.Value())
}
