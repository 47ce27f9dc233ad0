// Package workerpool implements a growable circular task queue served by a
// fixed set of worker goroutines, synchronized with a single mutex and
// condition variable — the concurrency model spec.md §4.F describes,
// adapted to goroutines instead of pthreads.
package workerpool

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// InitialQueueCapacity is the task queue's starting slot count, matching
// the source's ThreadPool->QueueCapacity = 128.
const InitialQueueCapacity = 128

// Task is a submittable unit of work.
type Task func()

// Pool runs Tasks on a fixed number of worker goroutines, dequeuing in
// submission order (FIFO). The queue grows by doubling whenever a
// submission finds it already full; it never shrinks.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond

	items    []Task
	head     int
	tail     int
	count    int
	capacity int

	submitted uint64
	completed uint64

	closed bool
	wg     sync.WaitGroup
}

// New starts a pool of numWorkers goroutines pulling from a queue that
// begins at InitialQueueCapacity.
func New(numWorkers int) *Pool {
	p := &Pool{
		items:    make([]Task, InitialQueueCapacity),
		capacity: InitialQueueCapacity,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.count == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.count == 0 && p.closed {
			p.mu.Unlock()
			return
		}

		task := p.items[p.head]
		p.items[p.head] = nil
		p.head = (p.head + 1) % p.capacity
		p.count--
		p.mu.Unlock()

		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("workerpool: task panicked")
				}
			}()
			task()
		}()

		p.mu.Lock()
		p.completed++
		p.mu.Unlock()
		tasksCompleted.Inc()
	}
}

// Submit enqueues task, growing the queue first if it is already full,
// and wakes a worker iff the queue transitioned from empty to non-empty.
func (p *Pool) Submit(task Task) {
	p.mu.Lock()
	wake := p.count == 0

	if p.count == p.capacity {
		p.grow()
	}

	p.items[p.tail] = task
	p.tail = (p.tail + 1) % p.capacity
	p.count++
	p.submitted++
	depth := p.count
	p.mu.Unlock()

	tasksSubmitted.Inc()
	queueDepth.Set(float64(depth))
	if wake {
		p.cond.Signal()
	}
}

// grow doubles the queue's capacity, linearizing the circular buffer's
// contents starting at index 0. The source assumes the arena's
// last-allocation realloc grows in place, which keeps head/tail valid
// without reindexing; Go's growable slice does not offer that, so this
// instead copies head..tail order into a fresh backing array and resets
// head to 0 (per spec.md §4.F/§9's explicit reindexing guidance).
func (p *Pool) grow() {
	newCapacity := p.capacity * 2
	newItems := make([]Task, newCapacity)

	n := copy(newItems, p.items[p.head:])
	copy(newItems[n:], p.items[:p.head])

	p.items = newItems
	p.head = 0
	p.tail = p.count
	p.capacity = newCapacity
	queueGrowths.Inc()
}

// Stats reports point-in-time counters for observability.
type Stats struct {
	QueueDepth int
	Capacity   int
	Submitted  uint64
	Completed  uint64
}

// Stat returns the current queue depth/capacity/counters.
func (p *Pool) Stat() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		QueueDepth: p.count,
		Capacity:   p.capacity,
		Submitted:  p.submitted,
		Completed:  p.completed,
	}
}

// Shutdown wakes all workers and waits for them to drain and exit. Tasks
// still queued when Shutdown is called are run before the workers exit;
// a task submitted after Shutdown returns is never run.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
