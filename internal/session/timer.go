package session

import (
	"sync"
	"time"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

const (
	TickInterval     = time.Second
	WarningThreshold = 300 // seconds
)

// Remaining is the countdown in whole seconds; it goes negative once the
// session is overdue.
func Remaining(durationMinutes int, start, now time.Time) int {
	elapsed := int(now.Sub(start) / time.Second)
	return durationMinutes*60 - elapsed
}

// Timer counts a session down and fires onExpire once when it reaches zero.
// After Stop returns no further tick is processed.
type Timer struct {
	duration int
	start    time.Time
	clock    Clock
	interval time.Duration
	onExpire func()

	mu      sync.Mutex
	warning bool
	expired bool
	stopped bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewTimer(durationMinutes int, start time.Time, clock Clock, interval time.Duration, onExpire func()) *Timer {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Timer{
		duration: durationMinutes,
		start:    start,
		clock:    clock,
		interval: interval,
		onExpire: onExpire,
		stopCh:   make(chan struct{}),
	}
}

// Start begins ticking in the background.
func (t *Timer) Start() {
	go t.run()
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			if st := t.Tick(t.clock.Now()); st.Expired {
				return
			}
		}
	}
}

// Tick recomputes the countdown at now. The first tick at or past zero marks
// the timer expired and invokes onExpire.
func (t *Timer) Tick(now time.Time) model.TimerStatus {
	t.mu.Lock()
	if t.stopped || t.expired {
		st := t.statusLocked(now)
		t.mu.Unlock()
		return st
	}

	remaining := Remaining(t.duration, t.start, now)
	if remaining <= 0 {
		t.expired = true
		t.stopped = true
		t.mu.Unlock()

		t.stopOnce.Do(func() { close(t.stopCh) })
		if t.onExpire != nil {
			t.onExpire()
		}
		return model.TimerStatus{Remaining: 0, Warning: true, Expired: true}
	}

	if remaining <= WarningThreshold {
		t.warning = true
	}
	st := model.TimerStatus{Remaining: remaining, Warning: t.warning}
	t.mu.Unlock()
	return st
}

// Status reports the countdown without advancing the timer.
func (t *Timer) Status() model.TimerStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.statusLocked(t.clock.Now())
}

func (t *Timer) statusLocked(now time.Time) model.TimerStatus {
	if t.expired {
		return model.TimerStatus{Remaining: 0, Warning: true, Expired: true}
	}
	remaining := Remaining(t.duration, t.start, now)
	if remaining < 0 {
		remaining = 0
	}
	return model.TimerStatus{
		Remaining: remaining,
		Warning:   t.warning || remaining <= WarningThreshold,
	}
}

// Stop cancels the tick. It is safe to call more than once and from the
// expiry callback.
func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.stopOnce.Do(func() { close(t.stopCh) })
}
