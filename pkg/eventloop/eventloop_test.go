package eventloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T, l *Loop) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = l.Run(ctx)
		close(done)
	}()
	return func() {
		cancelCtx()
		<-done
	}
}

func TestLoopPreservesOrder(t *testing.T) {
	l := New(4)
	stop := runLoop(t, l)
	defer stop()

	var got []int
	finished := make(chan struct{})
	for i := 0; i < 100; i++ {
		i := i
		require.True(t, l.Post(func() { got = append(got, i) }))
	}
	require.True(t, l.Post(func() { close(finished) }))
	<-finished

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopRunsOneAtATime(t *testing.T) {
	l := New(0)
	stop := runLoop(t, l)
	defer stop()

	var mu sync.Mutex
	active, maxActive := 0, 0
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				l.Post(func() {
					mu.Lock()
					active++
					if active > maxActive {
						maxActive = active
					}
					mu.Unlock()
					time.Sleep(time.Microsecond)
					mu.Lock()
					active--
					mu.Unlock()
				})
			}
		}()
	}
	wg.Wait()

	finished := make(chan struct{})
	l.Post(func() { close(finished) })
	<-finished

	assert.Equal(t, 1, maxActive)
}

func TestLoopRecoversFromPanics(t *testing.T) {
	l := New(1)
	stop := runLoop(t, l)
	defer stop()

	l.Post(func() { panic("boom") })

	ran := make(chan struct{})
	l.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("loop did not survive a panicking handler")
	}
}

func TestAfterFunc(t *testing.T) {
	l := New(1)
	stop := runLoop(t, l)
	defer stop()

	fired := make(chan time.Time, 1)
	start := time.Now()
	l.AfterFunc(20*time.Millisecond, func() { fired <- time.Now() })

	select {
	case at := <-fired:
		assert.GreaterOrEqual(t, at.Sub(start), 20*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("timer event never ran")
	}
}

func TestPostAfterStop(t *testing.T) {
	l := New(1)
	stop := runLoop(t, l)
	stop()

	<-l.Stopped()
	assert.False(t, l.Post(func() {}))
}

func TestRunReturnsContextError(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Run(ctx), context.Canceled)
}
