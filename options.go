// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

// Options configures queue creation and variant selection.
type Options struct {
	singleProducer bool
	capacity       int
}

// Builder creates queues with fluent configuration, selecting the
// variant from the declared producer constraint. Both variants are
// single-consumer; there is no multi-consumer knob.
//
// Example:
//
//	// SPSC queue (optimal for one producer, one consumer)
//	q, err := ringbuffer.Build[Event](ringbuffer.New(1024).SingleProducer())
//
//	// MPSC queue (default: many producers, one consumer)
//	q, err := ringbuffer.Build[Event](ringbuffer.New(1024))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The capacity is taken exactly as requested; Build reports
// ErrInvalidCapacity when the selected variant cannot support it
// (the MPSC variant requires a positive power of two).
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue,
// selecting the SPSC variant.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// Build creates a Queue[T] for the configured constraints:
//
//	SingleProducer → SPSC (Lamport ring buffer, any positive capacity)
//	default        → MPSC (CAS-reserved slots, power-of-two capacity)
func Build[T any](b *Builder) (Queue[T], error) {
	if b.opts.singleProducer {
		return NewSPSC[T](b.opts.capacity)
	}
	return NewMPSC[T](b.opts.capacity)
}

// BuildSPSC creates an SPSC queue with a concrete return type.
// Panics if the builder was not configured with SingleProducer();
// constraint mismatch is programmer error, not configuration input.
func BuildSPSC[T any](b *Builder) (*SPSC[T], error) {
	if !b.opts.singleProducer {
		panic("ringbuffer: BuildSPSC requires SingleProducer()")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildMPSC creates an MPSC queue with a concrete return type.
// Panics if the builder was configured with SingleProducer().
func BuildMPSC[T any](b *Builder) (*MPSC[T], error) {
	if b.opts.singleProducer {
		panic("ringbuffer: BuildMPSC conflicts with SingleProducer()")
	}
	return NewMPSC[T](b.opts.capacity)
}
