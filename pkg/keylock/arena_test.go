package keylock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_MutualExclusion(t *testing.T) {
	arena := NewArena()
	ctx := context.Background()

	var inside, maxInside int32
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := arena.Lock(ctx, "account:1")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			counter++
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, arena.Len())
}

func TestArena_DifferentKeysDoNotBlock(t *testing.T) {
	arena := NewArena()
	ctx := context.Background()

	unlockA, err := arena.Lock(ctx, "account:1")
	require.NoError(t, err)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := arena.Lock(ctx, "account:2")
		if err == nil {
			unlockB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not wait")
	}
}

func TestArena_ContextCancel(t *testing.T) {
	arena := NewArena()

	unlock, err := arena.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = arena.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.Equal(t, 0, arena.Len())
}

func TestArena_MaxWait(t *testing.T) {
	arena := NewArena(WithMaxWait(20 * time.Millisecond))

	unlock, err := arena.Lock(context.Background(), "k")
	require.NoError(t, err)
	defer unlock()

	_, err = arena.Lock(context.Background(), "k")
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestArena_UnlockIsIdempotent(t *testing.T) {
	arena := NewArena()

	unlock, err := arena.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock()
	unlock()

	unlock2, err := arena.Lock(context.Background(), "k")
	require.NoError(t, err)
	unlock2()
	assert.Equal(t, 0, arena.Len())
}
