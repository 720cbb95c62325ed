// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringbuffer

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent runs: the slot protocol synchronizes
// through acquire/release sequence numbers on separate variables, which
// the detector cannot track and reports as false positives.
const RaceEnabled = true
