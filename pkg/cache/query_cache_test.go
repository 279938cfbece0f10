package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock permite avançar o tempo manualmente nos testes
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestQueryCache_GetOrCompute(t *testing.T) {
	t.Run("Segunda chamada dentro do TTL não invoca compute novamente", func(t *testing.T) {
		clock := newFakeClock()
		c := NewWithClock(clock)

		calls := 0
		compute := func() (any, error) {
			calls++
			return "resultado", nil
		}

		v1, err := c.GetOrCompute("kpi|2024-01-01", 10*time.Minute, compute)
		assert.NoError(t, err)
		assert.Equal(t, "resultado", v1)

		v2, err := c.GetOrCompute("kpi|2024-01-01", 10*time.Minute, compute)
		assert.NoError(t, err)
		assert.Equal(t, "resultado", v2)

		assert.Equal(t, 1, calls)
	})

	t.Run("Após o TTL expirar compute é invocado de novo", func(t *testing.T) {
		clock := newFakeClock()
		c := NewWithClock(clock)

		calls := 0
		compute := func() (any, error) {
			calls++
			return calls, nil
		}

		_, err := c.GetOrCompute("daily|2024-01-01", 10*time.Minute, compute)
		assert.NoError(t, err)

		clock.Advance(10*time.Minute + time.Second)

		v, err := c.GetOrCompute("daily|2024-01-01", 10*time.Minute, compute)
		assert.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, 2, calls)
	})

	t.Run("Falha do compute não é armazenada no cache", func(t *testing.T) {
		clock := newFakeClock()
		c := NewWithClock(clock)

		boom := errors.New("conexão recusada")
		calls := 0

		_, err := c.GetOrCompute("kpi|x", time.Minute, func() (any, error) {
			calls++
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())

		// Próxima chamada volta ao compute, não a uma falha velha
		v, err := c.GetOrCompute("kpi|x", time.Minute, func() (any, error) {
			calls++
			return "ok", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "ok", v)
		assert.Equal(t, 2, calls)
	})

	t.Run("Chamadores concorrentes coalescem em um único compute", func(t *testing.T) {
		clock := newFakeClock()
		c := NewWithClock(clock)

		var calls int32
		release := make(chan struct{})

		compute := func() (any, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return "compartilhado", nil
		}

		const workers = 8
		var wg sync.WaitGroup
		results := make([]any, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v, err := c.GetOrCompute("lenta", time.Minute, compute)
				assert.NoError(t, err)
				results[i] = v
			}(i)
		}

		// Dar tempo para todos entrarem no singleflight antes de liberar
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, v := range results {
			assert.Equal(t, "compartilhado", v)
		}
	})
}

func TestQueryCache_Invalidate(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock)

	_, err := c.GetOrCompute("meta|bounds", time.Hour, func() (any, error) {
		return "v1", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	c.Invalidate("meta|bounds")
	assert.Equal(t, 0, c.Len())

	v, err := c.GetOrCompute("meta|bounds", time.Hour, func() (any, error) {
		return "v2", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestQueryCache_Stats(t *testing.T) {
	clock := newFakeClock()
	c := NewWithClock(clock)

	_, _ = c.GetOrCompute("k", time.Minute, func() (any, error) { return 1, nil })
	_, _ = c.GetOrCompute("k", time.Minute, func() (any, error) { return 1, nil })
	_, ok := c.Get("inexistente")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.GreaterOrEqual(t, stats.Misses, uint64(2))
}
