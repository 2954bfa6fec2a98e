package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/core"
	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
)

// ErrSchedulerStopped is returned for commands that cannot run because the loop is down
var ErrSchedulerStopped = errors.New("scheduler stopped")

// SchedulerConfig sets the loop cadences
type SchedulerConfig struct {
	FrameInterval     time.Duration
	ProximityInterval time.Duration
	RegenInterval     time.Duration
	InboxSize         int
}

// DefaultSchedulerConfig returns the stock cadences
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		FrameInterval:     parameter.FrameUpdateInterval,
		ProximityInterval: parameter.ProximityUpdateInterval,
		RegenInterval:     parameter.FuelRegenInterval,
		InboxSize:         parameter.InboxSize,
	}
}

type message struct {
	ev    input.Event
	cmd   Command
	reply chan error
}

// Scheduler drives a Simulation from a single goroutine
// Frame, proximity and fuel regen run on independent tickers; input events and
// commands arrive through the inbox, so the simulation has exactly one writer
type Scheduler struct {
	sim     *Simulation
	cfg     SchedulerConfig
	log     zerolog.Logger
	onFrame func(Frame)

	inbox chan message

	// Lifecycle, mu serializes Start/Stop so cycles never overlap
	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	frames atomic.Uint64
}

// NewScheduler creates a stopped scheduler
// onFrame runs on the scheduler goroutine after every Tick and must not block
// or call Stop
func NewScheduler(sim *Simulation, cfg SchedulerConfig, onFrame func(Frame), log zerolog.Logger) *Scheduler {
	def := DefaultSchedulerConfig()
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = def.FrameInterval
	}
	if cfg.ProximityInterval <= 0 {
		cfg.ProximityInterval = def.ProximityInterval
	}
	if cfg.RegenInterval <= 0 {
		cfg.RegenInterval = def.RegenInterval
	}
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = def.InboxSize
	}

	return &Scheduler{
		sim:     sim,
		cfg:     cfg,
		log:     log.With().Str("component", "scheduler").Logger(),
		onFrame: onFrame,
		inbox:   make(chan message, cfg.InboxSize),
	}
}

// Start begins the loop, no-op when already running
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.CompareAndSwap(false, true) {
		return
	}
	// Nothing queued while stopped may reach the new cycle
	s.drain()
	s.stopChan = make(chan struct{})
	s.wg.Add(1)
	stop := s.stopChan
	core.Go(func() { s.loop(stop) })
	s.log.Debug().Dur("frame", s.cfg.FrameInterval).Msg("scheduler started")
}

// Stop halts the loop and waits for it, no-op when not running
// No callback fires after Stop returns
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	s.log.Debug().Uint64("frames", s.frames.Load()).Msg("scheduler stopped")
}

// Run starts the loop and blocks until ctx is done, then stops it
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Frames returns the number of frames stepped since creation
func (s *Scheduler) Frames() uint64 {
	return s.frames.Load()
}

// Post queues a raw input event without blocking
// Returns false when the scheduler is stopped or the inbox is full
// mu keeps the send inside one Start/Stop cycle, the send never blocks
func (s *Scheduler) Post(ev input.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return false
	}
	select {
	case s.inbox <- message{ev: ev}:
		return true
	default:
		s.log.Warn().Msg("inbox full, input dropped")
		return false
	}
}

// Submit runs cmd on the simulation goroutine and returns its result
func (s *Scheduler) Submit(ctx context.Context, cmd Command) error {
	s.mu.Lock()
	stop := s.stopChan
	running := s.running.Load()
	s.mu.Unlock()
	if !running {
		return ErrSchedulerStopped
	}

	reply := make(chan error, 1)
	select {
	case s.inbox <- message{cmd: cmd, reply: reply}:
	case <-stop:
		return ErrSchedulerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-stop:
		return ErrSchedulerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop(stop <-chan struct{}) {
	defer s.wg.Done()
	defer s.drain()

	frame := time.NewTicker(s.cfg.FrameInterval)
	defer frame.Stop()
	proximity := time.NewTicker(s.cfg.ProximityInterval)
	defer proximity.Stop()
	regen := time.NewTicker(s.cfg.RegenInterval)
	defer regen.Stop()

	for {
		select {
		case <-stop:
			return

		case msg := <-s.inbox:
			s.handle(msg)

		case <-frame.C:
			f := s.sim.Tick(s.sim.GameTime())
			s.frames.Add(1)
			if s.onFrame != nil {
				s.onFrame(f)
			}

		case <-proximity.C:
			s.sim.TrackProximity()

		case <-regen.C:
			s.sim.RegenFuel()
		}
	}
}

func (s *Scheduler) handle(msg message) {
	if msg.cmd == nil {
		s.sim.Apply(msg.ev)
		return
	}
	err := s.sim.Dispatch(msg.cmd)
	if err != nil {
		s.log.Debug().Err(err).Msgf("command %T rejected", msg.cmd)
	}
	if msg.reply != nil {
		msg.reply <- err
	}
}

// drain answers commands still queued when the loop exits, events are discarded
func (s *Scheduler) drain() {
	for {
		select {
		case msg := <-s.inbox:
			if msg.reply != nil {
				msg.reply <- ErrSchedulerStopped
			}
		default:
			return
		}
	}
}
