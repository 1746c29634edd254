// Package eventloop runs posted work one item at a time, in posting order,
// on a single goroutine. Every handler of the label core runs on it.
package eventloop

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arthur-debert/fmlabel/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultQueueSize is the number of pending events buffered before Post blocks
const DefaultQueueSize = 256

// Loop serializes work posted from any goroutine
type Loop struct {
	queue   chan func()
	stopped chan struct{}
	once    sync.Once
	logger  zerolog.Logger
}

// New creates a loop with the given queue size. Sizes below 1 use DefaultQueueSize.
func New(queueSize int) *Loop {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		queue:   make(chan func(), queueSize),
		stopped: make(chan struct{}),
		logger:  logging.GetLogger("eventloop"),
	}
}

// Post enqueues f. It blocks while the queue is full and returns false once
// the loop has stopped.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}

	select {
	case l.queue <- f:
		return true
	case <-l.stopped:
		return false
	}
}

// AfterFunc posts f once d has elapsed
func (l *Loop) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		if !l.Post(f) {
			l.logger.Trace().Dur("delay", d).Msg("Dropped timer event, loop stopped")
		}
	})
}

// Run executes posted work until ctx is done. Work still queued when ctx ends
// is discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.stopped) })

	l.logger.Debug().Msg("Event loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug().Msg("Event loop stopped")
			return ctx.Err()
		case f := <-l.queue:
			l.dispatch(f)
		}
	}
}

// Stopped is closed when Run returns
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}

func (l *Loop) dispatch(f func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Str("panic", fmt.Sprint(r)).Msg("Recovered from panic in event handler")
		}
	}()
	f()
}
