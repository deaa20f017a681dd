package pace

import "iter"

// Iterator is a stateful cursor over a schedule's value sequence, giving
// advance-by-one semantics independent of the index-based query. The first
// Next returns the value at t=1; each subsequent call returns the next
// value, never revisiting an index.
//
// The iterator borrows the schedule and never mutates it; all cursor state
// lives here. It is not safe for concurrent use: each logical consumer
// must own its own Iterator. Independent iterators over the same schedule
// do not interfere.
type Iterator struct {
	s       Schedule
	next    func() (float64, bool)
	stop    func()
	stopped bool
}

// NewIterator binds a cursor to the schedule. No value is computed until
// the first call to Next.
func NewIterator(s Schedule) *Iterator {
	return &Iterator{s: s}
}

// Next returns the next value in the schedule's sequence. ok is false once
// an exactly-sized schedule is exhausted, or after Stop.
func (it *Iterator) Next() (v float64, ok bool) {
	if it.stopped {
		return 0, false
	}
	if it.next == nil {
		it.next, it.stop = iter.Pull(it.s.Values())
	}
	v, ok = it.next()
	if !ok {
		it.Stop()
	}
	return v, ok
}

// Stop releases the iterator's resources. Safe to call more than once;
// Next after Stop reports exhausted.
func (it *Iterator) Stop() {
	if it.stopped {
		return
	}
	it.stopped = true
	if it.stop != nil {
		it.stop()
	}
}
