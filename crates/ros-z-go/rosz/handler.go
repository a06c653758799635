package rosz

import (
	"sync"
	"sync/atomic"
)

// Handler receives decoded messages either through a callback or a channel.
type Handler[T any] interface {
	// ToCbDropHandler returns the delivery callback, an optional drop function
	// run when the producer is done, and the receive channel (nil for
	// callback-based handlers).
	ToCbDropHandler() (callback func(T), drop func(), receiver <-chan T)
}

// Closure wraps a direct callback function.
type Closure[T any] struct {
	call func(T)
	drop func()
}

// ToCbDropHandler returns the callback and drop functions with no channel.
func (c *Closure[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	return c.call, c.drop, nil
}

// NewClosure creates a callback-based handler. drop may be nil.
func NewClosure[T any](call func(T), drop func()) *Closure[T] {
	return &Closure[T]{call: call, drop: drop}
}

// FifoChannel delivers messages to a buffered channel.
// When the channel is full, delivery blocks until space is available.
type FifoChannel[T any] struct {
	channel chan T
	once    sync.Once
}

// ToCbDropHandler returns a callback that sends to the channel and a drop
// function that closes it once.
func (f *FifoChannel[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	callback := func(msg T) {
		f.channel <- msg
	}
	drop := func() {
		f.once.Do(func() { close(f.channel) })
	}
	return callback, drop, f.channel
}

// NewFifoChannel creates a channel-based handler with the specified buffer size.
// A buffer size of 0 creates an unbuffered channel.
func NewFifoChannel[T any](bufferSize int) *FifoChannel[T] {
	return &FifoChannel[T]{
		channel: make(chan T, bufferSize),
	}
}

// RingChannel keeps the most recent messages. When the channel is full, the
// oldest message is discarded to make room for the new one.
type RingChannel[T any] struct {
	channel chan T
	mu      sync.Mutex
	once    sync.Once
	dropped atomic.Uint64
}

// ToCbDropHandler returns a callback that sends to the channel with ring
// buffer behavior.
func (r *RingChannel[T]) ToCbDropHandler() (func(T), func(), <-chan T) {
	callback := func(msg T) {
		r.mu.Lock()
		defer r.mu.Unlock()
		for {
			select {
			case r.channel <- msg:
				return
			default:
			}
			// full: a concurrent reader may empty it between the two selects
			select {
			case <-r.channel:
				r.dropped.Add(1)
			default:
			}
		}
	}
	drop := func() {
		r.once.Do(func() { close(r.channel) })
	}
	return callback, drop, r.channel
}

// Dropped returns how many messages were discarded to make room.
func (r *RingChannel[T]) Dropped() uint64 {
	return r.dropped.Load()
}

// NewRingChannel creates a ring buffer channel handler with the specified capacity.
// The capacity must be greater than 0.
func NewRingChannel[T any](capacity int) *RingChannel[T] {
	if capacity <= 0 {
		panic("ring channel capacity must be > 0")
	}
	return &RingChannel[T]{
		channel: make(chan T, capacity),
	}
}
