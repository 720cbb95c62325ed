// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringbuffer

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Enqueue: the queue is full (backpressure)
// For Dequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later (with backoff or yield) rather than propagating the error.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if ringbuffer.IsWouldBlock(err) {
//	        backoff.Wait()  // Adaptive backpressure
//	        continue
//	    }
//	    return err  // Unexpected error
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidCapacity reports a configuration error at construction time:
// the requested capacity is not positive, or (MPSC only) not a power of
// two. Unlike ErrWouldBlock this is a genuine failure; the constructor
// returns no usable queue alongside it.
//
// Constructors wrap it with the offending value; match with
// errors.Is(err, ErrInvalidCapacity).
var ErrInvalidCapacity = errors.New("ringbuffer: invalid capacity")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic]. ErrInvalidCapacity is not semantic.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// checkCapacity validates a capacity request at construction time.
// powerOfTwo additionally requires capacity to be a power of two
// (bit trick: c > 0 && c&(c-1) == 0), which the MPSC variant needs for
// mask indexing and wraparound-safe sequence arithmetic.
func checkCapacity(capacity int, powerOfTwo bool) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d, must be positive", ErrInvalidCapacity, capacity)
	}
	if powerOfTwo && capacity&(capacity-1) != 0 {
		return fmt.Errorf("%w: %d, must be a power of two", ErrInvalidCapacity, capacity)
	}
	return nil
}
