// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// MPSC is a multi-producer single-consumer bounded queue.
//
// Producers race for slot reservations by CAS on the tail counter; each
// slot carries a monotonic sequence number (see slot) that encodes
// whether it is writable or readable and guards against ABA reuse across
// wraps. The single consumer advances head with plain atomic stores — no
// CAS on the consume side, since no other thread ever writes head.
//
// Capacity must be a positive power of two: indexing uses a bitmask
// instead of modulo and the sequence wraparound arithmetic stays exact.
//
// Ordering contract: producers are served in the order they win the tail
// CAS (FIFO completion order of reservations), and each producer's own
// elements arrive in its call order. The queue is NOT linearizable as a
// whole: an Enqueue that won its reservation before a Dequeue began may
// still have its value store race with that Dequeue, so the Dequeue may
// legitimately return ErrWouldBlock. Only quiescent consistency holds —
// once all operations settle, the history matches some valid
// interleaving respecting each goroutine's call order.
//
// Exactly one consumer goroutine is supported. A second concurrent
// consumer is unguarded misuse; it corrupts the slot protocol (and trips
// the publish assertion at best).
type MPSC[T any] struct {
	head     atomix.Uint64 // Consumer owns; producers read for the full check
	_        cpu.CacheLinePad
	tail     atomix.Uint64 // Producers CAS here
	_        cpu.CacheLinePad
	slots    []slot[T]
	mask     uint64
	capacity uint64
}

// NewMPSC creates a new MPSC queue with exactly the given capacity.
// Returns ErrInvalidCapacity if capacity is not a positive power of two.
func NewMPSC[T any](capacity int) (*MPSC[T], error) {
	if err := checkCapacity(capacity, true); err != nil {
		return nil, err
	}

	n := uint64(capacity)
	q := &MPSC[T]{
		slots:    make([]slot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	// Slot i starts writable for generation i (the i-th reservation).
	for i := uint64(0); i < n; i++ {
		q.slots[i].seq.StoreRelaxed(i)
	}

	return q, nil
}

// Enqueue adds an element to the queue (multiple producer goroutines safe).
// Returns ErrWouldBlock if the queue is full from this call's snapshot.
//
// Enqueue is fail-fast: when the target slot's previous generation has
// not been freed yet — the counters may say there is room while the
// consumer's free is still in flight — it reports ErrWouldBlock instead
// of spinning. Only a lost reservation race (another producer won the
// tail CAS) restarts the attempt, from a fresh snapshot.
func (q *MPSC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		head := q.head.LoadAcquire()
		if tail >= head+q.capacity {
			return ErrWouldBlock
		}

		s := &q.slots[tail&q.mask]
		if s.current() != tail {
			// Not yet freed by the consumer, or a racing producer is
			// mid-publish on a stale snapshot: effectively full for
			// this attempt.
			return ErrWouldBlock
		}

		if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
			// This goroutine exclusively owns slot tail&mask for
			// generation tail until publish completes.
			s.publish(tail, elem)
			return nil
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element (single consumer goroutine only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty, or if the
// producer that reserved the head slot has not finished publishing yet.
func (q *MPSC[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	tail := q.tail.LoadAcquire()
	var zero T
	if head == tail {
		return zero, ErrWouldBlock
	}

	s := &q.slots[head&q.mask]
	elem, ok := s.readIfReady(head)
	if !ok {
		// Reserved but not yet published: fail fast, no waiting.
		return zero, ErrWouldBlock
	}

	// Free the slot before advancing head so a producer that observes
	// the new head never finds the slot still readable.
	s.free(head, q.capacity)
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Len returns the number of buffered elements, including reservations
// still being published. Advisory under concurrent mutation, exact at
// quiescence.
func (q *MPSC[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int(tail - head)
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}

// Empty reports whether the queue holds no elements. Advisory, like Len.
func (q *MPSC[T]) Empty() bool {
	return q.Len() == 0
}

// Full reports whether the queue holds Cap elements. Advisory, like Len.
func (q *MPSC[T]) Full() bool {
	return q.Len() >= q.Cap()
}
