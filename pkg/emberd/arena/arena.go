// Package arena implements a bump-pointer memory region for per-request
// allocation. The raw request bytes that parsed request fields point into,
// response headers, JSON writer output and serialized responses for a
// single request are pushed into one Arena and released together when
// the owning response context is returned to its pool. Parsed JSON values
// are ordinary Go-heap allocations, not arena ones.
package arena

import (
	"fmt"
	"unsafe"
)

const wordSize = 8

// Arena is a contiguous preallocated byte region with a bump offset and a
// record of the most recent allocation. Growing or shrinking the most
// recent allocation (Realloc) is O(1); anything else copies.
//
// Not safe for concurrent use. Each response context owns exactly one
// Arena for the duration of a request (§5 of the design: "each response
// context owns its arena exclusively while checked out").
type Arena struct {
	buf       []byte
	offset    int
	lastStart int
	lastLen   int // aligned length of the last allocation
}

// New allocates and zeroes a capacity-byte region.
func New(capacity int) *Arena {
	return &Arena{
		buf:       make([]byte, capacity),
		lastStart: -1,
	}
}

// Cap returns the arena's total capacity in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Len returns the number of bytes currently in use.
func (a *Arena) Len() int { return a.offset }

// Remaining returns the number of bytes still available.
func (a *Arena) Remaining() int { return len(a.buf) - a.offset }

func alignUp(n int) int {
	return (n + wordSize - 1) &^ (wordSize - 1)
}

// Push rounds n up to word alignment and carves it off the front of the
// free region, recording it as the last allocation. It panics if the
// arena is exhausted — per spec, arena exhaustion is a fatal programming
// error, not a recoverable one.
func (a *Arena) Push(n int) []byte {
	aligned := alignUp(n)
	if a.offset+aligned > len(a.buf) {
		panic(fmt.Sprintf("arena: out of memory (requested %d, remaining %d)", n, a.Remaining()))
	}
	start := a.offset
	a.offset += aligned
	a.lastStart = start
	a.lastLen = aligned
	return a.buf[start : start+n : start+aligned]
}

// isLastAlloc reports whether p's backing storage is the most recent
// allocation from a, by comparing the address of its first byte against
// the recorded offset. An empty slice can never be the last allocation
// (there is nothing to identify it by).
func (a *Arena) isLastAlloc(p []byte) bool {
	if a.lastStart < 0 || len(p) == 0 {
		return false
	}
	return unsafe.Pointer(&p[0]) == unsafe.Pointer(&a.buf[a.lastStart])
}

// Realloc grows or shrinks p, previously allocated with old bytes, to
// newSize. If p is the arena's last allocation, this adjusts the bump
// offset in place with no copy; otherwise it pushes a fresh allocation
// and copies min(old, newSize) bytes.
func (a *Arena) Realloc(p []byte, old, newSize int) []byte {
	if a.isLastAlloc(p) {
		alignedOld := alignUp(old)
		alignedNew := alignUp(newSize)
		delta := alignedNew - alignedOld
		if a.offset+delta > len(a.buf) {
			panic(fmt.Sprintf("arena: out of memory on realloc (requested %d, remaining %d)", newSize, a.Remaining()-alignedOld))
		}
		a.offset += delta
		a.lastLen = alignedNew
		start := a.lastStart
		return a.buf[start : start+newSize : start+alignedNew]
	}

	fresh := a.Push(newSize)
	n := old
	if newSize < n {
		n = newSize
	}
	copy(fresh, p[:n])
	return fresh
}

// Format prints into the arena and returns the formatted bytes (no
// terminator). It always allocates a fresh region; callers that need the
// realloc fast path should build into a slice obtained from Push/Realloc
// directly instead.
func (a *Arena) Format(format string, args ...any) []byte {
	s := fmt.Sprintf(format, args...)
	dst := a.Push(len(s))
	copy(dst, s)
	return dst
}

// PutBytes copies src into the arena and returns the copy.
func (a *Arena) PutBytes(src []byte) []byte {
	dst := a.Push(len(src))
	copy(dst, src)
	return dst
}

// PutString copies s into the arena and returns it as a byte view.
func (a *Arena) PutString(s string) []byte {
	dst := a.Push(len(s))
	copy(dst, s)
	return dst
}

// PushUnaligned carves n contiguous bytes off the free region with no
// word-alignment padding, recording the allocation as the last one. Byte
// stream builders (the JSON writer) need output with no gaps between
// consecutive small writes; use AlignTo8 afterward to restore the normal
// alignment invariant before the next aligned Push.
func (a *Arena) PushUnaligned(n int) []byte {
	if a.offset+n > len(a.buf) {
		panic(fmt.Sprintf("arena: out of memory (requested %d, remaining %d)", n, a.Remaining()))
	}
	start := a.offset
	a.offset += n
	a.lastStart = start
	a.lastLen = n
	return a.buf[start : start+n : start+n]
}

// AlignTo8 rounds the current offset up to the next word boundary with no
// returned bytes, restoring the alignment invariant after a run of
// PushUnaligned calls.
func (a *Arena) AlignTo8() {
	a.offset = alignUp(a.offset)
}

// Slice returns the bytes written between start (an offset previously
// obtained from Len) and the arena's current offset. It does not copy and
// does not affect the last-allocation tracking used by Realloc.
func (a *Arena) Slice(start int) []byte {
	return a.buf[start:a.offset:a.offset]
}

// Reset rewinds the arena to empty without releasing its backing memory,
// so the next request reuses the same bytes.
func (a *Arena) Reset() {
	a.offset = 0
	a.lastStart = -1
	a.lastLen = 0
}
