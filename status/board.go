package status

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/physics"
	"github.com/lixenwraith/spacefolio/vmath"
)

const instrumentationName = "github.com/lixenwraith/spacefolio/status"

// Snapshot is the latest telemetry published to readers outside the simulation
type Snapshot struct {
	Seq        uint64
	HUD        physics.HUD
	Mode       engine.Mode
	Paused     bool
	Nearby     string
	Overlay    string
	Experience int
	Level      int
}

func snapshotOf(f engine.Frame) Snapshot {
	return Snapshot{
		Seq:        f.Seq,
		HUD:        f.HUD,
		Mode:       f.Mode,
		Paused:     f.Paused,
		Nearby:     f.Nearby,
		Overlay:    f.ActiveOverlay,
		Experience: f.Experience,
		Level:      f.Level,
	}
}

// Board is the HUD telemetry hub
// The simulation goroutine publishes; any goroutine reads Latest or subscribes
type Board struct {
	log zerolog.Logger

	latest atomic.Pointer[Snapshot]
	fuel   AtomicFloat
	health AtomicFloat
	speed  AtomicFloat

	events   *Counters
	logEvery rate.Sometimes

	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	closed bool

	registration metric.Registration
}

// NewBoard creates a board and registers its observable gauges
// logInterval throttles the periodic telemetry log line, 0 disables it
func NewBoard(log zerolog.Logger, logInterval time.Duration) (*Board, error) {
	b := &Board{
		log:    log.With().Str("component", "status").Logger(),
		events: NewCounters(),
		subs:   make(map[*Subscription]struct{}),
	}
	b.logEvery.Interval = logInterval

	m := otel.Meter(instrumentationName)
	fuel, err := m.Float64ObservableGauge(
		"spacefolio.craft.fuel",
		metric.WithDescription("Craft fuel level, 0..100"),
	)
	if err != nil {
		return nil, fmt.Errorf("fuel gauge: %w", err)
	}
	health, err := m.Float64ObservableGauge(
		"spacefolio.craft.health",
		metric.WithDescription("Craft hull level, 0..100"),
	)
	if err != nil {
		return nil, fmt.Errorf("health gauge: %w", err)
	}

	b.registration, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveFloat64(fuel, b.fuel.Get())
			o.ObserveFloat64(health, b.health.Get())
			return nil
		},
		fuel, health,
	)
	if err != nil {
		return nil, fmt.Errorf("gauge callback: %w", err)
	}

	return b, nil
}

// Publish records a frame, call from the simulation goroutine only
func (b *Board) Publish(f engine.Frame) {
	snap := snapshotOf(f)
	b.latest.Store(&snap)
	b.fuel.Set(f.HUD.Fuel)
	b.health.Set(f.HUD.Health)
	b.speed.Set(vmath.V3FMag(f.HUD.Velocity))

	if b.logEvery.Interval > 0 {
		b.logEvery.Do(func() {
			b.log.Debug().
				Uint64("frame", snap.Seq).
				Str("speed", snap.HUD.Speed).
				Float64("fuel", snap.HUD.Fuel).
				Bool("boost", snap.HUD.Boosting).
				Stringer("mode", snap.Mode).
				Str("nearby", snap.Nearby).
				Msg("telemetry")
		})
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		sub.offer(snap)
	}
}

// Record counts a simulation event, usable directly as an engine.Listener
func (b *Board) Record(ev engine.Event) {
	b.events.Inc(ev.Type.String())

	// Proximity flickers at boundaries, keep it out of info
	level := zerolog.InfoLevel
	if ev.Type == engine.EventNearbyChanged {
		level = zerolog.DebugLevel
	}

	e := b.log.WithLevel(level).Uint64("frame", ev.Frame)
	switch ev.Type {
	case engine.EventModeChanged:
		e = e.Stringer("mode", ev.Mode)
	case engine.EventLevelUp:
		e = e.Int("level", ev.Level)
	case engine.EventNearbyChanged:
		e = e.Str("landmark", ev.ID).Str("previous", ev.Previous)
	default:
		e = e.Str("landmark", ev.ID)
	}
	e.Msg(ev.Type.String())
}

// Latest returns the most recent snapshot, false before the first frame
func (b *Board) Latest() (Snapshot, bool) {
	p := b.latest.Load()
	if p == nil {
		return Snapshot{}, false
	}
	return *p, true
}

// Fuel returns the last published fuel level
func (b *Board) Fuel() float64 {
	return b.fuel.Get()
}

// Speed returns the last published speed
func (b *Board) Speed() float64 {
	return b.speed.Get()
}

// Events returns the per-type event counters
func (b *Board) Events() *Counters {
	return b.events
}

// Close unregisters gauges and closes every subscription
func (b *Board) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
		delete(b.subs, sub)
	}
	b.mu.Unlock()

	if b.registration != nil {
		if err := b.registration.Unregister(); err != nil {
			return fmt.Errorf("unregister gauges: %w", err)
		}
	}
	return nil
}

var ErrBoardClosed = errors.New("status board closed")

// Subscription receives snapshots no faster than its limiter allows
// Slow readers see the newest snapshot, older ones are replaced
type Subscription struct {
	C <-chan Snapshot

	ch      chan Snapshot
	limiter *rate.Limiter
	board   *Board
}

// Subscribe returns a subscription delivering at most one snapshot per interval
// interval 0 delivers every frame
func (b *Board) Subscribe(interval time.Duration) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBoardClosed
	}

	ch := make(chan Snapshot, 1)
	sub := &Subscription{
		C:       ch,
		ch:      ch,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		board:   b,
	}
	b.subs[sub] = struct{}{}
	return sub, nil
}

// offer runs under board.mu
func (s *Subscription) offer(snap Snapshot) {
	if !s.limiter.Allow() {
		return
	}
	select {
	case s.ch <- snap:
		return
	default:
	}
	// Replace the stale pending snapshot
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- snap:
	default:
	}
}

// Close detaches the subscription and closes C
func (s *Subscription) Close() {
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[s]; !ok {
		return
	}
	delete(b.subs, s)
	close(s.ch)
}
