package arena

import "sync"

// ScratchSize is the default capacity of a scratch arena (§3: "initialized
// lazily to 4 MiB").
const ScratchSize = 4 << 20

// scratchPool hands out reset 4 MiB arenas. Go has no user-visible
// thread-local storage, so unlike the source's one-arena-per-OS-thread
// design, this pools arenas across whichever goroutine happens to call
// Acquire — the same acquire-reset-use-release discipline as
// shockwave/pkg/shockwave/memory's ArenaPool, just pooled per-call rather
// than pinned per-thread. The usage contract is identical: a scratch
// arena's slices must not be held past the next Acquire on the same
// logical caller.
var scratchPool = sync.Pool{
	New: func() any {
		return New(ScratchSize)
	},
}

// AcquireScratch returns a reset scratch arena. Callers must call
// ReleaseScratch when done; values allocated from it must not outlive
// that call.
func AcquireScratch() *Arena {
	a := scratchPool.Get().(*Arena)
	a.Reset()
	return a
}

// ReleaseScratch returns a scratch arena obtained from AcquireScratch.
func ReleaseScratch(a *Arena) {
	scratchPool.Put(a)
}
