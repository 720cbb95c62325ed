// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

// Queue is the combined producer-consumer interface satisfied by both
// ring-buffer variants.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both return
// ErrWouldBlock when they cannot proceed (queue full or empty). Neither
// operation ever blocks waiting for the other side.
//
// Len is advisory: under concurrent mutation it may be instantaneously
// stale. It is exact whenever no operation is in flight, which is what
// verification harnesses rely on. Len is an observation only; it never
// synchronizes with Enqueue or Dequeue.
//
// Example:
//
//	q, err := ringbuffer.NewMPSC[int](1024)
//	if err != nil {
//	    // invalid capacity
//	}
//
//	v := 42
//	if err := q.Enqueue(&v); err != nil {
//	    // queue full
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Len returns the number of buffered elements: successful enqueues
	// minus successful dequeues. Advisory under concurrency, exact at
	// quiescence. Always within [0, Cap] at quiescent points.
	Len() int

	// Cap returns the fixed capacity chosen at construction.
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs at the
// call boundary. The queue stores a copy of the pointed-to value, so the
// original may be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full.
	//
	// Thread safety depends on the variant:
	//   - SPSC: single producer goroutine only
	//   - MPSC: multiple producer goroutines safe
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value, copied out of the queue's internal
// buffer. The vacated slot is cleared so referenced objects can be
// garbage collected.
//
// Both variants require exactly one consumer goroutine. A second
// concurrent consumer violates the threading contract (see package doc).
type Consumer[T any] interface {
	// Dequeue removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}
