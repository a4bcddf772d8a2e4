package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestRemaining(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{name: "at start", elapsed: 0, expected: 1800},
		{name: "partial seconds floor", elapsed: 1500 * time.Millisecond, expected: 1799},
		{name: "exactly at end", elapsed: 30 * time.Minute, expected: 0},
		{name: "overdue", elapsed: 31 * time.Minute, expected: -60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(30, start, start.Add(tt.elapsed)); got != tt.expected {
				t.Errorf("Remaining() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTimerExpiresExactlyOnce(t *testing.T) {
	clk := newFakeClock()
	now := clk.Now()
	var fired int32
	timer := NewTimer(1, now.Add(-61*time.Second), clk, time.Hour, func() { atomic.AddInt32(&fired, 1) })

	st := timer.Tick(now)
	if !st.Expired || st.Remaining != 0 {
		t.Fatalf("expected expired with 0 remaining, got %+v", st)
	}
	timer.Tick(now.Add(time.Second))
	timer.Tick(now.Add(2 * time.Second))

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expiry callback fired %d times, want 1", got)
	}
	if st := timer.Status(); st.Remaining != 0 || !st.Expired {
		t.Fatalf("status after expiry = %+v", st)
	}
}

func TestTimerWarningIsSticky(t *testing.T) {
	clk := newFakeClock()
	start := clk.Now()
	timer := NewTimer(10, start, clk, time.Hour, nil)

	if st := timer.Tick(start.Add(4 * time.Minute)); st.Warning || st.Remaining != 360 {
		t.Fatalf("unexpected early status %+v", st)
	}
	if st := timer.Tick(start.Add(5 * time.Minute)); !st.Warning || st.Remaining != 300 {
		t.Fatalf("expected warning at 300s, got %+v", st)
	}
	if st := timer.Tick(start.Add(time.Minute)); !st.Warning {
		t.Fatalf("warning should stay on, got %+v", st)
	}
}

func TestTimerStopPreventsExpiry(t *testing.T) {
	clk := newFakeClock()
	var fired int32
	timer := NewTimer(1, clk.Now(), clk, time.Hour, func() { atomic.AddInt32(&fired, 1) })

	timer.Stop()
	timer.Stop()
	timer.Tick(clk.Now().Add(2 * time.Minute))

	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("stopped timer fired %d times", got)
	}
}

func TestTimerBackgroundTick(t *testing.T) {
	clk := newFakeClock()
	done := make(chan struct{})
	timer := NewTimer(1, clk.Now(), clk, 5*time.Millisecond, func() { close(done) })
	timer.Start()
	defer timer.Stop()

	clk.Advance(61 * time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not expire")
	}
}
