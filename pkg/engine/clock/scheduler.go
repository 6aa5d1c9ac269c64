package clock

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type entry struct {
	at  time.Time
	seq uint64
	id  Handle
	fn  func()
}

// Scheduler holds one-shot deadlines. It does not run on its own: the owner
// calls Run once per frame and every callback whose deadline has passed fires
// on the caller's goroutine, earliest first. Not safe for concurrent use.
type Scheduler struct {
	pending  *heap.Heap[entry]
	live     map[Handle]bool
	nextID   Handle
	sequence uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: heap.New[entry](func(a, b entry) bool {
			if a.at.Equal(b.at) {
				return a.seq < b.seq
			}
			return a.at.Before(b.at)
		}),
		live: make(map[Handle]bool),
	}
}

// At schedules fn to run at the first Run call at or after t
func (s *Scheduler) At(t time.Time, fn func()) Handle {
	s.nextID++
	s.sequence++
	id := s.nextID
	s.live[id] = true
	s.pending.Push(entry{at: t, seq: s.sequence, id: id, fn: fn})
	return id
}

// After schedules fn to run d after now
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) Handle {
	return s.At(now.Add(d), fn)
}

// Cancel stops a pending callback. Returns false if it already ran or was cancelled.
func (s *Scheduler) Cancel(h Handle) bool {
	if !s.live[h] {
		return false
	}
	delete(s.live, h)
	return true
}

// Pending reports whether the handle is still waiting to fire
func (s *Scheduler) Pending(h Handle) bool {
	return s.live[h]
}

// Len returns the number of live callbacks
func (s *Scheduler) Len() int {
	return len(s.live)
}

// Run fires every live callback due at or before now and returns how many ran.
// Callbacks scheduled by a running callback fire in the same call if already due.
func (s *Scheduler) Run(now time.Time) int {
	ran := 0
	for {
		next, ok := s.pending.Peek()
		if !ok || next.at.After(now) {
			return ran
		}
		s.pending.Pop()
		if !s.live[next.id] {
			continue
		}
		delete(s.live, next.id)
		next.fn()
		ran++
	}
}

// Clear drops every pending callback
func (s *Scheduler) Clear() {
	for s.pending.Size() > 0 {
		s.pending.Pop()
	}
	s.live = make(map[Handle]bool)
}
