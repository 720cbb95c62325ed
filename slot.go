// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// publishSpinBudget bounds the defensive wait in slot.publish. The wait
// only ever covers another thread's already-committed step of the same
// generation, so exhausting the budget means the threading contract was
// violated (e.g. a second concurrent consumer re-freed the slot).
const publishSpinBudget = 1 << 16

// slot is the per-index state unit of the MPSC buffer. It pairs one
// element with a monotonic sequence number encoding the slot's state:
//
//	seq == g            writable: a producer holding reservation g owns it
//	seq == g+1          readable: generation g is published
//	seq == g+capacity   writable again, next incarnation
//
// The sequence strictly increases over the slot's lifetime (each
// write→read cycle nets +capacity), so a slot reused after a wrap is
// always distinguishable from its previous incarnation. That is the ABA
// guard: a stale producer comparing against an old reservation can never
// mistake the recycled slot for its own generation.
//
// Exactly one thread owns the slot at any time: the producer that won
// the tail CAS for generation g (between reserve and publish), or the
// single consumer (between ready and free). Ownership is enforced by the
// sequence protocol, never by a lock.
type slot[T any] struct {
	seq  atomix.Uint64
	data T
}

// current returns the slot's sequence number.
func (s *slot[T]) current() uint64 {
	return s.seq.LoadAcquire()
}

// publish stores elem and moves the slot from Writable(reserved) to
// Readable(reserved) by advancing the sequence to reserved+1. The value
// store strictly precedes the sequence advance (release), so a consumer
// that observes the new sequence also observes the element.
//
// Under the CAS-tail protocol the sequence already equals reserved when
// the reservation succeeds, so the wait resolves immediately; it exists
// to catch out-of-order completion of overlapping generations on the
// same index, which only a violated threading contract can produce.
// Exhausting the budget is protocol corruption and panics rather than
// risking silent element loss.
func (s *slot[T]) publish(reserved uint64, elem *T) {
	if s.seq.LoadAcquire() != reserved {
		sw := spin.Wait{}
		for i := 0; s.seq.LoadAcquire() != reserved; i++ {
			if i >= publishSpinBudget {
				panic("ringbuffer: slot sequence never reached its reservation; threading contract violated (concurrent consumers?)")
			}
			sw.Once()
		}
	}

	s.data = *elem
	s.seq.StoreRelease(reserved + 1)
}

// readIfReady copies out the element of generation head if it has been
// published, clearing the stored value for garbage collection. It
// reports false when the producer holding this generation has not
// finished publishing yet (the acquire load of the sequence pairs with
// the release in publish, making the element visible).
func (s *slot[T]) readIfReady(head uint64) (T, bool) {
	if s.seq.LoadAcquire() != head+1 {
		var zero T
		return zero, false
	}

	elem := s.data
	var zero T
	s.data = zero
	return elem, true
}

// free moves the slot of generation head into its next writable
// incarnation, head+capacity. Called only by the single consumer, after
// readIfReady succeeded.
func (s *slot[T]) free(head, capacity uint64) {
	s.seq.StoreRelease(head + capacity)
}
