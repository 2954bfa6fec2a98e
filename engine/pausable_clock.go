package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides game time that freezes while the simulation is paused
// Elapsed game time drives the idle bob, so a paused craft stays exactly still
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	startTime time.Time // real time at creation

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // real time the current pause began
	totalPausedTime time.Duration // completed pauses only
}

// NewPausableClock creates a running clock on the given provider, nil means wall clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns game time since creation, excluding all pauses
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.provider.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// Seconds returns Elapsed as float seconds
func (pc *PausableClock) Seconds() float64 {
	return pc.Elapsed().Seconds()
}

// RealTime returns provider time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement, repeated calls are no-ops
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues game time advancement, repeated calls are no-ops
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
}

// SetPaused mirrors an external pause flag
func (pc *PausableClock) SetPaused(paused bool) {
	if paused {
		pc.Pause()
	} else {
		pc.Resume()
	}
}

func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
