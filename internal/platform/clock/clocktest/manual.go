// Package clocktest provides a hand-driven Clock and Scheduler.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"calm/internal/platform/clock"
)

// Manual is a Clock and Scheduler whose time only moves on Advance. Due
// callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*timer
	// IgnoreStop makes stopped timers fire anyway, which is how a real timer
	// behaves when Stop races with its expiry.
	IgnoreStop bool
}

var (
	_ clock.Clock     = (*Manual)(nil)
	_ clock.Scheduler = (*Manual)(nil)
)

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type timer struct {
	owner   *Manual
	at      time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) clock.Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &timer{owner: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Pending counts timers that have neither fired nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.pending {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every timer that comes due in
// deadline order, including timers armed by callbacks along the way.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}
	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) nextDue(target time.Time) *timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at.Equal(m.pending[j].at) {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at.Before(m.pending[j].at)
	})
	for i, t := range m.pending {
		if t.fired || t.at.After(target) {
			continue
		}
		if t.stopped && !m.IgnoreStop {
			continue
		}
		t.fired = true
		m.pending = append(m.pending[:i], m.pending[i+1:]...)
		if t.at.After(m.now) {
			m.now = t.at
		}
		return t
	}
	return nil
}
