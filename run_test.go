package shaper

import "testing"

// stubRuns is a runIterator driven by a fixed list of boundaries.
type stubRuns struct {
	bounds []int
	pos    int
}

func (s *stubRuns) consume() { s.pos++ }

func (s *stubRuns) end() int {
	if s.pos == 0 {
		return 0
	}
	return s.bounds[s.pos-1]
}

func (s *stubRuns) atEnd() bool { return s.pos == len(s.bounds) }

// TestRunQueue_MergesBoundaries verifies that advancing the queue yields
// the sorted union of all iterators' boundaries, each exactly once.
func TestRunQueue_MergesBoundaries(t *testing.T) {
	var q runQueue
	q.insert(&stubRuns{bounds: []int{4, 8, 12}})
	q.insert(&stubRuns{bounds: []int{6, 12}})
	q.insert(&stubRuns{bounds: []int{12}})

	var got []int
	for q.advance() {
		got = append(got, q.end())
	}

	want := []int{4, 6, 8, 12}
	if len(got) != len(want) {
		t.Fatalf("joint boundaries: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("joint boundaries: got %v, want %v", got, want)
		}
	}
}

// TestRunQueue_SingleIterator verifies the degenerate one-axis case.
func TestRunQueue_SingleIterator(t *testing.T) {
	var q runQueue
	q.insert(&stubRuns{bounds: []int{3, 7}})

	var got []int
	for q.advance() {
		got = append(got, q.end())
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Fatalf("joint boundaries: got %v, want [3 7]", got)
	}
}

// TestRunQueue_BoundariesReconstructRange verifies there are no gaps or
// overlaps: successive boundaries strictly increase and the last equals
// the common end.
func TestRunQueue_BoundariesReconstructRange(t *testing.T) {
	var q runQueue
	q.insert(&stubRuns{bounds: []int{1, 2, 5, 9, 10}})
	q.insert(&stubRuns{bounds: []int{5, 10}})

	prev := 0
	last := 0
	for q.advance() {
		if q.end() <= prev {
			t.Fatalf("boundary %d not greater than previous %d", q.end(), prev)
		}
		prev = q.end()
		last = q.end()
	}
	if last != 10 {
		t.Fatalf("final boundary: got %d, want 10", last)
	}
}

// TestRunQueue_PanicsOnStuckIterator verifies the strict monotonicity
// check: an iterator that repeats a boundary is a programming error.
func TestRunQueue_PanicsOnStuckIterator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-advancing iterator")
		}
	}()

	var q runQueue
	q.insert(&stubRuns{bounds: []int{4, 4}})
	for q.advance() {
	}
}

// TestRunQueue_PanicsOnMismatchedEnds verifies that iterators disagreeing
// on the text length are detected.
func TestRunQueue_PanicsOnMismatchedEnds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched end offsets")
		}
	}()

	var q runQueue
	q.insert(&stubRuns{bounds: []int{4}})
	q.insert(&stubRuns{bounds: []int{5}})
	for q.advance() {
	}
}
