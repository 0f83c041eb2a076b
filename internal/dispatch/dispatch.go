// Package dispatch provides the small FIFO continuation queue behind
// the frame package's callback-driven reader (spec §5 "Completion-
// callback" mode).
// Author: momentics <momentics@gmail.com>
//
// It is adapted from this ecosystem's internal/concurrency.Executor
// (a worker pool draining per-worker queues): that design is built for
// throughput across many workers, which is more than a four-stage
// frame read ever needs. What carries over is the shape — a TaskFunc
// queue drained by a dedicated goroutine — shrunk to a single FIFO
// worker so that the completion callbacks submitted to one Queue run
// one at a time in submission order. The frame package submits only
// each read's final onOK/onErr call here; its stage-to-stage chaining
// runs directly inside the source's callbacks.
package dispatch

import (
	"sync"

	"github.com/eapache/queue"
)

// Task is a unit of work, such as a frame read's completion callback.
type Task func()

// Queue is a single-consumer FIFO dispatcher. The zero value is not
// ready for use; call New.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	q       *queue.Queue
	closed  bool
	started bool
}

// New constructs a Queue and starts its drain goroutine.
func New() *Queue {
	d := &Queue{q: queue.New()}
	d.cond = sync.NewCond(&d.mu)
	d.start()
	return d
}

func (d *Queue) start() {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return
	}
	d.started = true
	d.mu.Unlock()
	go d.run()
}

func (d *Queue) run() {
	for {
		d.mu.Lock()
		for d.q.Length() == 0 && !d.closed {
			d.cond.Wait()
		}
		if d.q.Length() == 0 && d.closed {
			d.mu.Unlock()
			return
		}
		t := d.q.Remove().(Task)
		d.mu.Unlock()
		t()
	}
}

// Submit enqueues t for execution after every task already queued.
// Submit never blocks and never runs t synchronously, so a caller
// inside one continuation can safely Submit the next stage's
// continuation without growing the call stack.
func (d *Queue) Submit(t Task) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.q.Add(t)
	d.cond.Signal()
	d.mu.Unlock()
}

// Close stops the drain goroutine once the queue empties. Pending
// tasks already queued still run; nothing queued after Close does.
func (d *Queue) Close() {
	d.mu.Lock()
	d.closed = true
	d.cond.Broadcast()
	d.mu.Unlock()
}
