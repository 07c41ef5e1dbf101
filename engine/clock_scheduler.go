package engine

import "time"

// Gate fires at most once per Interval
// A zero Gate fires on its first check and arms itself at that time
type Gate struct {
	Interval time.Duration
	last     time.Time
}

// Due reports whether the interval has elapsed since the last firing and, if so, re-arms at now
func (g *Gate) Due(now time.Time) bool {
	if !g.last.IsZero() && now.Sub(g.last) < g.Interval {
		return false
	}
	g.last = now
	return true
}

// Reset disarms the gate so the next check fires
func (g *Gate) Reset() {
	g.last = time.Time{}
}

// Last returns the time of the last firing, zero if never fired
func (g *Gate) Last() time.Time {
	return g.last
}

type scheduledJob struct {
	name string
	gate Gate
	fn   func(now time.Time)
}

// ClockScheduler is a cooperative frame pump
// Each Pump runs every due job in registration order on the caller's goroutine
type ClockScheduler struct {
	timeProvider TimeProvider
	jobs         []*scheduledJob
	pumps        uint64
}

// NewClockScheduler creates a scheduler reading time from tp
func NewClockScheduler(tp TimeProvider) *ClockScheduler {
	return &ClockScheduler{timeProvider: tp}
}

// Every registers fn to run at most once per interval, interval 0 runs on every pump
// Must be called before the first Pump
func (cs *ClockScheduler) Every(name string, interval time.Duration, fn func(now time.Time)) {
	cs.jobs = append(cs.jobs, &scheduledJob{
		name: name,
		gate: Gate{Interval: interval},
		fn:   fn,
	})
}

// Pump runs due jobs and returns how many ran
func (cs *ClockScheduler) Pump() int {
	now := cs.timeProvider.Now()
	cs.pumps++

	ran := 0
	for _, job := range cs.jobs {
		if job.gate.Due(now) {
			job.fn(now)
			ran++
		}
	}
	return ran
}

// Pumps returns the number of Pump calls so far
func (cs *ClockScheduler) Pumps() uint64 {
	return cs.pumps
}

// Jobs returns the registered job names in execution order
func (cs *ClockScheduler) Jobs() []string {
	names := make([]string, len(cs.jobs))
	for i, job := range cs.jobs {
		names[i] = job.name
	}
	return names
}
