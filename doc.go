// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringbuffer provides fixed-capacity, array-backed FIFO queues
// for lock-free inter-goroutine data transfer.
//
// Two variants share one contract:
//
//   - SPSC: Single-Producer Single-Consumer — Lamport ring buffer over
//     two monotonic counters; the baseline variant.
//   - MPSC: Multi-Producer Single-Consumer — Disruptor-style slot
//     sequencing; producers reserve slots by CAS on the tail counter and
//     publish through per-slot monotonic sequence numbers.
//
// The variants are independent structures implementing the same external
// [Queue] interface; they share no internal state.
//
// # Quick Start
//
//	q, err := ringbuffer.NewMPSC[Event](1024)   // many producers, one consumer
//	q, err := ringbuffer.NewSPSC[Event](1000)   // one producer, one consumer
//
// Or through the builder:
//
//	q, err := ringbuffer.Build[Event](ringbuffer.New(1024))                  // → MPSC
//	q, err := ringbuffer.Build[Event](ringbuffer.New(1024).SingleProducer()) // → SPSC
//
// Capacity is fixed at construction and never rounded: the MPSC variant
// rejects capacities that are not positive powers of two with
// [ErrInvalidCapacity]; the SPSC variant accepts any positive capacity.
//
// # Non-blocking Contract
//
// Enqueue and Dequeue complete or fail immediately; neither ever waits
// for the other side. A full queue is reported as [ErrWouldBlock] from
// Enqueue, an empty one as ErrWouldBlock from Dequeue — both are control
// flow signals, not failures. Callers own the retry policy:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(&item) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// The one internal wait is the defensive spin in MPSC slot publication,
// which only covers another goroutine's already-in-flight step of the
// same generation and resolves in O(1) under the threading contract.
//
// # Ordering and Consistency
//
// Producers are served in the order they win slot reservations, and each
// producer's own elements are observed in its call order. The MPSC queue
// is not linearizable across Enqueue and Dequeue: a Dequeue may return
// ErrWouldBlock even though a logically earlier Enqueue already won its
// reservation, because the value store can still be in flight. The
// guarantee is quiescent consistency — after all operations settle, the
// history matches some valid interleaving respecting each goroutine's
// call order.
//
// Len is an advisory observation with the same caveat: stale under
// concurrent mutation, exact at quiescent points.
//
// # Thread Safety
//
//   - SPSC: exactly one producer goroutine and one consumer goroutine.
//   - MPSC: any number of producer goroutines, exactly one consumer.
//
// The 1:1 and N:1 contracts are not enforced at runtime; violating them
// is undefined behavior. The MPSC publish path asserts its slot
// invariant and panics if it finds the sequence protocol corrupted,
// which indicates a violated contract (e.g. two concurrent consumers)
// rather than a recoverable condition.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established by
// acquire/release atomics on separate variables, which is exactly how
// the slot protocol protects the non-atomic element fields. Concurrent
// tests are therefore skipped under -race via [RaceEnabled]; the
// algorithms are verified by the model-based and stress tests instead.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions,
// and [golang.org/x/sys/cpu] for cache line padding.
package ringbuffer
