// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

package workqueue

import (
	"sync"

	"github.com/jetsetilly/gopherpsx/curated"
)

// Sentinel error patterns.
const (
	ShutdownError = "workqueue: shutdown"
)

// DefaultLength is the number of slots in the ring if no other value is
// specified.
const DefaultLength = 64

// container is a single slot in the ring.
type container[T any] struct {
	item T
	wait bool

	crit      sync.Mutex
	completed bool
	done      *sync.Cond
}

// Queue is a bounded FIFO queue of items of type T.
type Queue[T any] struct {
	crit sync.Mutex

	// signalled when an item is added or on shutdown
	available *sync.Cond

	// signalled when a slot is released or on shutdown
	space *sync.Cond

	ring []*container[T]

	// submission is the total number of items added. retrieval is the total
	// number of items completed. the slot for a marker is marker%len(ring)
	submission uint64
	retrieval  uint64

	shutdown bool
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// length of zero or less means DefaultLength.
func NewQueue[T any](length int) *Queue[T] {
	if length <= 0 {
		length = DefaultLength
	}

	q := &Queue[T]{
		ring: make([]*container[T], length),
	}
	q.available = sync.NewCond(&q.crit)
	q.space = sync.NewCond(&q.crit)

	for i := range q.ring {
		c := &container[T]{}
		c.done = sync.NewCond(&c.crit)
		q.ring[i] = c
	}

	return q
}

// Cap returns the number of slots in the ring.
func (q *Queue[T]) Cap() int {
	return len(q.ring)
}

// Len returns the number of items waiting to be executed or being executed.
func (q *Queue[T]) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return int(q.submission - q.retrieval)
}

// Add an item to the queue. The function blocks while the queue is full. If
// waitForCompletion is true the function also blocks until the consumer has
// executed the item.
//
// Returns an error if the queue has been shut down.
func (q *Queue[T]) Add(item T, waitForCompletion bool) error {
	q.crit.Lock()

	for !q.shutdown && q.submission-q.retrieval >= uint64(len(q.ring)) {
		q.available.Broadcast()
		q.space.Wait()
	}

	if q.shutdown {
		q.crit.Unlock()
		return curated.Errorf(ShutdownError)
	}

	c := q.ring[q.submission%uint64(len(q.ring))]
	c.crit.Lock()
	c.item = item
	c.wait = waitForCompletion
	c.completed = false
	c.crit.Unlock()

	q.submission++
	q.available.Broadcast()
	q.crit.Unlock()

	if !waitForCompletion {
		return nil
	}

	c.crit.Lock()
	for !c.completed {
		c.done.Wait()
	}
	c.crit.Unlock()

	q.crit.Lock()
	defer q.crit.Unlock()
	if q.shutdown {
		return curated.Errorf(ShutdownError)
	}
	return nil
}

// Run executes items as they are added to the queue. It returns when the
// queue is shut down. Items still in the queue at shutdown are not executed.
func (q *Queue[T]) Run(execute func(T)) {
	for {
		q.crit.Lock()
		for !q.shutdown && q.retrieval >= q.submission {
			q.available.Wait()
		}
		if q.shutdown {
			q.crit.Unlock()
			return
		}
		c := q.ring[q.retrieval%uint64(len(q.ring))]
		q.crit.Unlock()

		c.crit.Lock()
		item := c.item
		c.crit.Unlock()

		execute(item)

		c.crit.Lock()
		c.completed = true
		c.done.Broadcast()
		c.crit.Unlock()

		q.crit.Lock()
		q.retrieval++
		q.space.Broadcast()
		q.crit.Unlock()
	}
}

// Shutdown releases the consumer and any blocked producer. Items added after
// shutdown are rejected.
func (q *Queue[T]) Shutdown() {
	q.crit.Lock()
	q.shutdown = true
	q.available.Broadcast()
	q.space.Broadcast()
	q.crit.Unlock()

	// release a producer waiting for completion
	for _, c := range q.ring {
		c.crit.Lock()
		c.completed = true
		c.done.Broadcast()
		c.crit.Unlock()
	}
}
