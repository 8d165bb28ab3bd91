package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllJobs(t *testing.T) {
	p := New(4)
	var done atomic.Int32
	for n := 0; n < 100; n++ {
		require.NoError(t, p.Go(context.Background(), func() {
			done.Add(1)
		}))
	}
	p.Wait()

	assert.Equal(t, int32(100), done.Load())
	assert.Equal(t, 0, p.Running())
}

func TestPool_Limit(t *testing.T) {
	p := New(3)
	assert.Equal(t, 3, p.Limit())
	assert.Equal(t, 10, New(0).Limit())

	var current, peak atomic.Int32
	for n := 0; n < 30; n++ {
		require.NoError(t, p.Go(context.Background(), func() {
			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			current.Add(-1)
		}))
	}
	p.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestPool_ContextCanceled(t *testing.T) {
	p := New(1)
	release := make(chan struct{})
	require.NoError(t, p.Go(context.Background(), func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := p.Go(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	p.Wait()
}

func TestPool_Closed(t *testing.T) {
	p := New(2)
	p.Wait()
	p.Wait()

	assert.ErrorIs(t, p.Go(context.Background(), func() {}), ErrPoolClosed)
}

func TestPool_RecoversPanic(t *testing.T) {
	p := New(1)
	require.NoError(t, p.Go(context.Background(), func() { panic("boom") }))

	var ran atomic.Bool
	require.NoError(t, p.Go(context.Background(), func() { ran.Store(true) }))
	p.Wait()

	assert.True(t, ran.Load())
}
