package game

import (
	"sync"
	"time"
)

// CountdownPeriod is the interval between countdown ticks.
const CountdownPeriod = time.Second

// Scheduler runs fn every period until the returned cancel func is called.
// Cancel must be safe to call more than once and from inside fn.
type Scheduler interface {
	Every(period time.Duration, fn func()) (cancel func())
}

// TickerScheduler schedules work on a time.Ticker goroutine.
type TickerScheduler struct{}

// Every implements Scheduler.
func (TickerScheduler) Every(period time.Duration, fn func()) func() {
	ticker := time.NewTicker(period)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualScheduler fires tasks only when Tick is called.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	period    time.Duration
	fn        func()
	cancelled bool
}

// Every implements Scheduler.
func (m *ManualScheduler) Every(period time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := &manualTask{period: period, fn: fn}
	m.tasks = append(m.tasks, task)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		task.cancelled = true
	}
}

// Tick fires every live task once and returns how many ran.
func (m *ManualScheduler) Tick() int {
	m.mu.Lock()
	live := make([]*manualTask, 0, len(m.tasks))
	for _, task := range m.tasks {
		if !task.cancelled {
			live = append(live, task)
		}
	}
	m.tasks = live
	m.mu.Unlock()

	for _, task := range live {
		task.fn()
	}
	return len(live)
}

// Active returns the number of tasks that have not been cancelled.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, task := range m.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}
