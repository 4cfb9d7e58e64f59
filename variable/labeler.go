// SPDX-License-Identifier: MIT
//
// File: labeler.go
// Role: Fresh variable names from a single monotonic counter.
// Determinism:
//   - Next() is monotonic: "<tag>" + decimal(post-increment counter).
//   - The counter is shared by all tags; x then h gives x1, h2, never x1, h1.
// Concurrency:
//   - Counter updates are atomic, but callers keep a single-writer discipline:
//     one Labeler per generation session.

package variable

import (
	"strconv"
	"sync/atomic"
)

// Labeler allocates globally unique variable names within one session.
// The zero value is ready to use and starts counting at 1.
type Labeler struct {
	count uint64 // last number handed out
}

// NewLabeler returns a Labeler whose next allocation is start+1.
func NewLabeler(start uint64) *Labeler {
	return &Labeler{count: start}
}

// Next returns tag followed by the next counter value, e.g. Next("x") → "x5".
// The tag is not validated; callers pass signature types as they come.
// Complexity: O(d) for d decimal digits.
func (l *Labeler) Next(tag string) string {
	n := atomic.AddUint64(&l.count, 1)   // reserve the next number
	buf := make([]byte, 0, len(tag)+20)  // tag + up to 20 digits
	buf = append(buf, tag...)            // type prefix
	buf = strconv.AppendUint(buf, n, 10) // base-10 suffix

	return string(buf)
}

// Reset sets the counter back to 0; the next allocation ends in 1.
func (l *Labeler) Reset() {
	atomic.StoreUint64(&l.count, 0)
}

// Set forces the counter; the next allocation ends in n+1.
func (l *Labeler) Set(n uint64) {
	atomic.StoreUint64(&l.count, n)
}

// Count returns the last number handed out (0 if none).
func (l *Labeler) Count() uint64 {
	return atomic.LoadUint64(&l.count)
}
