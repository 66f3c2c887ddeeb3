// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// waiter is one suspended follower. done is buffered so that releasing never
// blocks, even when the follower has stopped waiting.
type waiter struct {
	done chan error
}

// pendingQueue holds the followers of the current episode in arrival order.
// It is not safe for concurrent use; the Arbitrator guards it with its mutex.
type pendingQueue struct {
	waiters []*waiter
}

func (q *pendingQueue) enqueue() *waiter {
	w := &waiter{done: make(chan error, 1)}
	q.waiters = append(q.waiters, w)
	return w
}

// detach empties the queue and returns its previous contents. Waiters
// enqueued after detach belong to the next episode.
func (q *pendingQueue) detach() []*waiter {
	waiters := q.waiters
	q.waiters = nil
	return waiters
}

func (q *pendingQueue) len() int {
	return len(q.waiters)
}

// release signals every waiter in FIFO order: a nil outcome resumes it, a
// non-nil one rejects it with that same error.
func release(waiters []*waiter, outcome error) {
	for _, w := range waiters {
		w.done <- outcome
		close(w.done)
	}
}
