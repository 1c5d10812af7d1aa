package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ErrConnectivity wraps every failure to obtain a usable store handle
var ErrConnectivity = errors.New("database unreachable")

// DefaultConnectTimeout bounds a single connection attempt when no timeout is configured
const DefaultConnectTimeout = 10 * time.Second

// ConnState is the observable state of a ConnCache
type ConnState int

const (
	ConnEmpty   ConnState = iota // no connection yet, or the last attempt failed
	ConnPending                  // one attempt in flight
	ConnReady                    // handle established
)

func (s ConnState) String() string {
	switch s {
	case ConnPending:
		return "pending"
	case ConnReady:
		return "ready"
	default:
		return "empty"
	}
}

// DialFunc opens the underlying connection. The context carries the attempt timeout.
type DialFunc[T any] func(ctx context.Context) (T, error)

// ConnCache lazily opens one shared handle and hands it to every caller.
//
// Concurrent Acquire calls made while no handle exists converge on a single dial.
// A failed dial leaves the cache empty so the next Acquire may try again; nothing
// is retried automatically.
type ConnCache[T any] struct {
	dial    DialFunc[T]
	timeout time.Duration
	group   singleflight.Group

	mu      sync.Mutex
	conn    T
	ready   bool
	pending bool
}

// NewConnCache builds an empty cache. A non-positive timeout falls back to DefaultConnectTimeout.
func NewConnCache[T any](dial DialFunc[T], timeout time.Duration) *ConnCache[T] {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	return &ConnCache[T]{
		dial:    dial,
		timeout: timeout,
	}
}

const dialKey = "conn"

// Acquire returns the established handle, joining or starting the connection attempt if needed.
// Cancelling ctx only stops this caller from waiting; the attempt keeps going for the others.
func (c *ConnCache[T]) Acquire(ctx context.Context) (T, error) {
	if conn, ok := c.Peek(); ok {
		return conn, nil
	}

	ch := c.group.DoChan(dialKey, func() (interface{}, error) {
		return c.connect(ctx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		conn, _ := res.Val.(T)
		return conn, nil
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrConnectivity, ctx.Err())
	}
}

// connect runs inside the singleflight call, so at most one executes at a time.
func (c *ConnCache[T]) connect(ctx context.Context) (T, error) {
	c.mu.Lock()
	if c.ready {
		// a caller that missed the previous flight by a hair lands here
		conn := c.conn
		c.mu.Unlock()
		return conn, nil
	}
	c.pending = true
	c.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	start := time.Now()
	conn, err := c.dial(dialCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false

	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("[DATABASE] connection attempt failed")
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	c.conn = conn
	c.ready = true
	log.Info().Dur("elapsed", time.Since(start)).Msg("[DATABASE] connection established")
	return conn, nil
}

// Peek returns the handle if one is established, without dialling.
func (c *ConnCache[T]) Peek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn, c.ready
}

// State reports the current cache state.
func (c *ConnCache[T]) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.ready:
		return ConnReady
	case c.pending:
		return ConnPending
	default:
		return ConnEmpty
	}
}
