package gesture

import (
	"sort"
	"time"
)

// Timer is a pending callback returned by a Scheduler. Cancel is idempotent:
// cancelling a timer that already fired or was already cancelled is a no-op.
type Timer interface {
	Cancel()
}

// Scheduler supplies time and delayed callbacks to a Recognizer. Callbacks
// must run on the goroutine that drives the recognizer, never concurrently
// with a touch notification.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Poller is implemented by schedulers whose due callbacks are run by an
// explicit call from the host's update loop.
type Poller interface {
	Poll() int
}

// --- timer list ---

type queuedTimer struct {
	due  time.Time
	seq  uint64
	fn   func()
	done bool
}

// Cancel marks the timer so it never fires. The entry is dropped lazily the
// next time the queue is drained.
func (t *queuedTimer) Cancel() {
	t.done = true
	t.fn = nil
}

// timerList keeps pending timers ordered by due time, then by scheduling
// order for timers due at the same instant.
type timerList struct {
	pending []*queuedTimer
	nextSeq uint64
}

func (l *timerList) add(due time.Time, fn func()) *queuedTimer {
	l.nextSeq++
	t := &queuedTimer{due: due, seq: l.nextSeq, fn: fn}
	i := sort.Search(len(l.pending), func(i int) bool {
		return l.pending[i].due.After(due)
	})
	l.pending = append(l.pending, nil)
	copy(l.pending[i+1:], l.pending[i:])
	l.pending[i] = t
	return t
}

// popDue removes and returns the earliest live timer due at or before now.
func (l *timerList) popDue(now time.Time) *queuedTimer {
	for len(l.pending) > 0 {
		t := l.pending[0]
		if !t.done && t.due.After(now) {
			return nil
		}
		copy(l.pending, l.pending[1:])
		l.pending[len(l.pending)-1] = nil
		l.pending = l.pending[:len(l.pending)-1]
		if !t.done {
			return t
		}
	}
	return nil
}

func (l *timerList) live() int {
	n := 0
	for _, t := range l.pending {
		if !t.done {
			n++
		}
	}
	return n
}

func fire(t *queuedTimer) {
	fn := t.fn
	t.done = true
	t.fn = nil
	if fn != nil {
		fn()
	}
}

// --- TimerQueue ---

// TimerQueue is a cooperative timer queue. Callbacks never run on their own:
// the host calls Poll once per frame (or per event loop iteration) and due
// callbacks run synchronously on that goroutine, after the current
// notification has returned.
type TimerQueue struct {
	clock  func() time.Time
	timers timerList
}

// NewTimerQueue creates a queue reading time from clock. A nil clock uses
// time.Now.
func NewTimerQueue(clock func() time.Time) *TimerQueue {
	if clock == nil {
		clock = time.Now
	}
	return &TimerQueue{clock: clock}
}

// Now returns the queue's current time.
func (q *TimerQueue) Now() time.Time {
	return q.clock()
}

// AfterFunc schedules fn to run on the first Poll at or after d from now.
func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) Timer {
	return q.timers.add(q.clock().Add(d), fn)
}

// Poll runs every callback that is due and returns how many ran.
func (q *TimerQueue) Poll() int {
	now := q.clock()
	n := 0
	for t := q.timers.popDue(now); t != nil; t = q.timers.popDue(now) {
		fire(t)
		n++
	}
	return n
}

// Pending returns the number of timers that have neither fired nor been
// cancelled.
func (q *TimerQueue) Pending() int {
	return q.timers.live()
}

// --- ManualScheduler ---

// ManualScheduler is a deterministic Scheduler whose clock only moves when
// Advance is called. Used by scripts, scenario replays, and tests.
type ManualScheduler struct {
	now    time.Time
	timers timerList
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler's current time.
func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// AfterFunc schedules fn to run once the clock reaches now+d.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return m.timers.add(m.now.Add(d), fn)
}

// Advance moves the clock forward by d. Timers that fall due inside the
// window fire in due order, each with the clock set to its own due time.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.AdvanceTo(m.now.Add(d))
}

// AdvanceTo moves the clock forward to t. Moving backwards is ignored.
func (m *ManualScheduler) AdvanceTo(t time.Time) {
	for tm := m.timers.popDue(t); tm != nil; tm = m.timers.popDue(t) {
		if tm.due.After(m.now) {
			m.now = tm.due
		}
		fire(tm)
	}
	if t.After(m.now) {
		m.now = t
	}
}

// Poll runs timers already due at the current time.
func (m *ManualScheduler) Poll() int {
	n := 0
	for t := m.timers.popDue(m.now); t != nil; t = m.timers.popDue(m.now) {
		fire(t)
		n++
	}
	return n
}

// Pending returns the number of live timers.
func (m *ManualScheduler) Pending() int {
	return m.timers.live()
}
