package ui

import (
	"sort"
	"time"

	"github.com/stretchr/testify/mock"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// MockScheduler records scheduling requests using testify/mock.
type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) AfterFunc(d time.Duration, f func()) {
	m.Called(d, f)
}

// manualScheduler queues callbacks until the test advances its clock.
type manualScheduler struct {
	elapsed time.Duration
	pending []scheduledCall
	seq     int
}

type scheduledCall struct {
	due time.Duration
	seq int
	f   func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.seq++
	s.pending = append(s.pending, scheduledCall{due: s.elapsed + d, seq: s.seq, f: f})
}

// Advance moves time forward by d and runs every callback that became due,
// in due order. Callbacks scheduled while advancing run too if they fall
// inside the window.
func (s *manualScheduler) Advance(d time.Duration) {
	s.elapsed += d
	for {
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].due == s.pending[j].due {
				return s.pending[i].seq < s.pending[j].seq
			}
			return s.pending[i].due < s.pending[j].due
		})
		if len(s.pending) == 0 || s.pending[0].due > s.elapsed {
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		next.f()
	}
}

// Pending returns the number of callbacks still queued.
func (s *manualScheduler) Pending() int {
	return len(s.pending)
}

// instantAnimator jumps straight to the completion frame.
type instantAnimator struct {
	calls int
}

func (a *instantAnimator) Animate(_ time.Duration, tick func(float32)) func() {
	a.calls++
	tick(1)
	return func() {}
}

// manualAnimator records animations so the test can drive their frames.
type manualAnimator struct {
	runs []*manualRun
}

type manualRun struct {
	duration time.Duration
	tick     func(float32)
	stopped  bool
}

func (a *manualAnimator) Animate(d time.Duration, tick func(float32)) func() {
	r := &manualRun{duration: d, tick: tick}
	a.runs = append(a.runs, r)
	return func() { r.stopped = true }
}

// frame delivers progress to run i unless it was stopped.
func (a *manualAnimator) frame(i int, progress float32) {
	if r := a.runs[i]; !r.stopped {
		r.tick(progress)
	}
}

// testNow is a fixed reference date: the year wheel runs 2025..1900.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
