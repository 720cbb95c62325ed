// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// SPSC is a single-producer single-consumer bounded queue.
//
// A Lamport ring buffer over two monotonic counters: the producer owns
// write, the consumer owns read, and each side only ever observes the
// other's counter. No CAS is needed; release/acquire ordering on the
// counters is the sole synchronization. The element store strictly
// precedes the counter bump that makes it visible, so the consumer can
// never observe the new length before the stored element (and
// symmetrically on the read side).
//
// Any positive capacity is accepted; indexing uses modulo rather than a
// mask. This is the baseline variant: no contention handling at all, by
// construction. Using more than one producer or more than one consumer
// goroutine is undefined behavior, not a runtime error.
type SPSC[T any] struct {
	read     atomix.Uint64 // Consumer owns; producer reads for the full check
	_        cpu.CacheLinePad
	write    atomix.Uint64 // Producer owns; consumer reads for the empty check
	_        cpu.CacheLinePad
	buffer   []T
	capacity uint64
}

// NewSPSC creates a new SPSC queue with exactly the given capacity.
// Returns ErrInvalidCapacity if capacity is not positive.
func NewSPSC[T any](capacity int) (*SPSC[T], error) {
	if err := checkCapacity(capacity, false); err != nil {
		return nil, err
	}
	return &SPSC[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}, nil
}

// Enqueue adds an element to the queue (producer goroutine only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	tail := q.write.LoadRelaxed()
	head := q.read.LoadAcquire()
	if tail-head == q.capacity {
		return ErrWouldBlock
	}

	q.buffer[tail%q.capacity] = *elem
	q.write.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer goroutine only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	head := q.read.LoadRelaxed()
	tail := q.write.LoadAcquire()
	if head == tail {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := q.buffer[head%q.capacity]
	var zero T
	q.buffer[head%q.capacity] = zero
	q.read.StoreRelease(head + 1)
	return elem, nil
}

// Len returns the number of buffered elements. Advisory under concurrent
// mutation, exact at quiescence.
func (q *SPSC[T]) Len() int {
	head := q.read.LoadAcquire()
	tail := q.write.LoadAcquire()
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue holds no elements. Advisory, like Len.
func (q *SPSC[T]) Empty() bool {
	return q.Len() == 0
}

// Full reports whether the queue holds Cap elements. Advisory, like Len.
func (q *SPSC[T]) Full() bool {
	return q.Len() >= q.Cap()
}
