package shaper

import "container/heap"

// runIterator walks the text along a single classification axis
// (bidi level, script, or font), one maximal run at a time.
//
// A fresh iterator reports end() == 0; the first consume() advances it
// to the end of the first run. end() must be strictly increasing across
// consume() calls; a violation is a programming error and panics.
type runIterator interface {
	// consume advances past one maximal run, classifying it along the
	// iterator's own axis. It must not be called once atEnd() is true.
	consume()

	// end returns the byte offset one past the current run.
	end() int

	// atEnd reports whether the whole text has been consumed.
	atEnd() bool
}

// runQueue merges the boundary streams of several runIterators into a
// single monotonically increasing sequence of joint boundaries: offsets
// at which every axis is still uniform. It is a k-way merge over a
// min-heap keyed by end().
type runQueue struct {
	iters []runIterator
}

// Len implements heap.Interface.
func (q *runQueue) Len() int { return len(q.iters) }

// Less implements heap.Interface, ordering by current boundary.
func (q *runQueue) Less(i, j int) bool { return q.iters[i].end() < q.iters[j].end() }

// Swap implements heap.Interface.
func (q *runQueue) Swap(i, j int) { q.iters[i], q.iters[j] = q.iters[j], q.iters[i] }

// Push implements heap.Interface.
func (q *runQueue) Push(x any) { q.iters = append(q.iters, x.(runIterator)) }

// Pop implements heap.Interface.
func (q *runQueue) Pop() any {
	last := len(q.iters) - 1
	it := q.iters[last]
	q.iters = q.iters[:last]
	return it
}

// insert adds an iterator to the queue.
func (q *runQueue) insert(it runIterator) {
	heap.Push(q, it)
}

// advance moves the queue to the next joint boundary, consuming every
// iterator whose current boundary lies at or before the least boundary.
// It returns false once all iterators are exhausted; end() then equals
// the text length.
func (q *runQueue) advance() bool {
	least := q.iters[0]
	if least.atEnd() {
		q.assertAllAtEnd()
		return false
	}
	leastEnd := least.end()
	for q.iters[0].end() <= leastEnd {
		it := q.iters[0]
		prev := it.end()
		it.consume()
		if it.end() <= prev {
			panic("shaper: run iterator did not advance")
		}
		heap.Fix(q, 0)
	}
	return true
}

// end returns the current joint boundary: the least boundary among all
// iterators. Valid after advance() has returned true.
func (q *runQueue) end() int {
	return q.iters[0].end()
}

// assertAllAtEnd panics unless every iterator is exhausted. If the least
// iterator is at end, all others must be too; anything else means an
// iterator skipped input.
func (q *runQueue) assertAllAtEnd() {
	for _, it := range q.iters {
		if !it.atEnd() {
			panic("shaper: run iterators ended at different offsets")
		}
	}
}
