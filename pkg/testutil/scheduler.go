package testutil

import "time"

type scheduled struct {
	delay time.Duration
	fn    func()
}

// ManualScheduler queues scheduled work until the test runs it
type ManualScheduler struct {
	queue  []scheduled
	Delays []time.Duration
}

// AfterFunc records f; it runs only when RunNext is called.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	s.queue = append(s.queue, scheduled{delay: d, fn: f})
	s.Delays = append(s.Delays, d)
}

// Pending returns the number of queued callbacks
func (s *ManualScheduler) Pending() int { return len(s.queue) }

// RunNext runs the oldest queued callback and reports whether there was one
func (s *ManualScheduler) RunNext() bool {
	if len(s.queue) == 0 {
		return false
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	next.fn()
	return true
}

// RunAll runs queued callbacks, including ones they schedule, up to limit
// callbacks. It returns how many ran.
func (s *ManualScheduler) RunAll(limit int) int {
	ran := 0
	for ran < limit && s.RunNext() {
		ran++
	}
	return ran
}
