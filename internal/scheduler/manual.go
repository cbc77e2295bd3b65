// Package scheduler provides a virtual clock for driving delayed slider callbacks.
package scheduler

import (
	"sort"
	"time"
)

type task struct {
	due time.Duration
	seq int
	fn  func()
}

// Manual is a scheduler whose clock only moves when Advance is called.
// Callbacks run on the goroutine calling Advance. It is not safe for concurrent use.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []task
}

// NewManual returns a Manual at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterDelay schedules fn to run once the clock reaches Now()+d.
// Negative delays are treated as zero.
func (m *Manual) AfterDelay(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	m.seq++
	m.tasks = append(m.tasks, task{due: m.now + d, seq: m.seq, fn: fn})
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// Advance moves the clock forward by d, running due callbacks in due time
// order and then in scheduling order. Callbacks scheduled while advancing run
// too when they fall inside the window. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := m.now + d
	ran := 0
	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		m.now = next.due
		next.fn()
		ran++
	}
	m.now = target
	return ran
}

// Drain runs callbacks until none are left, moving the clock to each due time.
// It stops after limit callbacks to protect against callbacks that keep
// rescheduling themselves, and returns the number run.
func (m *Manual) Drain(limit int) int {
	ran := 0
	for ran < limit && len(m.tasks) > 0 {
		m.sortTasks()
		next := m.tasks[0]
		m.tasks = m.tasks[1:]
		if next.due > m.now {
			m.now = next.due
		}
		next.fn()
		ran++
	}
	return ran
}

func (m *Manual) popDue(target time.Duration) (task, bool) {
	if len(m.tasks) == 0 {
		return task{}, false
	}
	m.sortTasks()
	if m.tasks[0].due > target {
		return task{}, false
	}
	next := m.tasks[0]
	m.tasks = m.tasks[1:]
	return next, true
}

func (m *Manual) sortTasks() {
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
}
