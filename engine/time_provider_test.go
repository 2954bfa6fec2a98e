package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}
	for i := 0; i < 15; i++ {
		<-done
	}

	expected := epoch.Add(250 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after concurrent operations, got %v", expected, now)
	}
}

func TestPausableClock_FreezesDuringPause(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Expected 2s elapsed, got %v", got)
	}

	clock.Pause()
	clock.Pause() // no-op
	mock.Advance(10 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s during pause, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("Expected 10s paused so far, got %v", got)
	}

	clock.Resume()
	clock.Resume() // no-op
	mock.Advance(500 * time.Millisecond)
	if got := clock.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s elapsed after resume, got %v", got)
	}
	if got := clock.Seconds(); got != 2.5 {
		t.Errorf("Expected 2.5 seconds, got %v", got)
	}
}

func TestPausableClock_SetPaused(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClock(mock)

	clock.SetPaused(true)
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}
	mock.Advance(time.Second)
	clock.SetPaused(false)
	if clock.IsPaused() {
		t.Fatal("Expected clock to be running")
	}
	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected no game time across the pause, got %v", got)
	}
	if !clock.RealTime().Equal(epoch.Add(time.Second)) {
		t.Errorf("Expected real time to keep moving, got %v", clock.RealTime())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
