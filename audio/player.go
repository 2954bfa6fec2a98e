package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/parameter"
)

var ErrNoAudioBackend = errors.New("no audio backend")

// Output is the playback device
// Lock/Unlock guard streamer mutation against the device callback
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// Config holds the audio settings
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
}

// DefaultConfig returns audio enabled at the stock volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
}

// Player mixes cue one-shots with the thruster hum
type Player struct {
	cfg  Config
	out  Output
	log  zerolog.Logger
	rate beep.SampleRate
	now  func() time.Time

	mixer   *beep.Mixer
	master  *effects.Volume
	hum     *hum
	humCtrl *beep.Ctrl

	running atomic.Bool
	muted   atomic.Bool

	mu        sync.Mutex
	lastCue   [cueCount]time.Time
	thrusting bool
	boosting  bool
}

// NewPlayer creates a stopped player, nil out selects the system speaker
func NewPlayer(cfg Config, out Output, log zerolog.Logger) *Player {
	if out == nil {
		out = speakerOutput{}
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	p := &Player{
		cfg:  cfg,
		out:  out,
		log:  log.With().Str("component", "audio").Logger(),
		rate: beep.SampleRate(cfg.SampleRate),
		now:  time.Now,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Start opens the device and begins mixing
// A disabled player starts muted and never touches the device
func (p *Player) Start() error {
	if !p.cfg.Enabled {
		return nil
	}
	if p.running.Load() {
		return nil
	}

	if err := p.out.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoAudioBackend, err)
	}

	p.hum = &hum{freq: parameter.HumFrequency, rate: p.rate}
	p.humCtrl = &beep.Ctrl{Streamer: newVolume(p.hum, parameter.HumVolume), Paused: true}
	p.mixer = &beep.Mixer{}
	p.mixer.Add(p.humCtrl)
	p.master = newVolume(p.mixer, p.cfg.MasterVolume)

	p.out.Play(p.master)
	p.running.Store(true)
	p.log.Info().Int("rate", p.cfg.SampleRate).Msg("audio started")
	return nil
}

// Stop silences and releases the device
func (p *Player) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()
}

// Play queues cue, false when muted, stopped or repeated too quickly
func (p *Player) Play(cue Cue) bool {
	if !p.running.Load() || p.muted.Load() || cue < 0 || cue >= cueCount {
		return false
	}

	now := p.now()
	p.mu.Lock()
	if now.Sub(p.lastCue[cue]) < parameter.AudioMinCueGap {
		p.mu.Unlock()
		return false
	}
	p.lastCue[cue] = now
	p.mu.Unlock()

	s := Synthesize(cue, p.rate)
	p.out.Lock()
	p.mixer.Add(s)
	p.out.Unlock()
	return true
}

// SetThrust gates the hum and retunes it while boosting
func (p *Player) SetThrust(thrusting, boosting bool) {
	if !p.running.Load() {
		return
	}
	p.mu.Lock()
	changed := thrusting != p.thrusting || boosting != p.boosting
	p.thrusting, p.boosting = thrusting, boosting
	p.mu.Unlock()
	if !changed {
		return
	}

	freq := parameter.HumFrequency
	if boosting {
		freq = parameter.HumBoostFrequency
	}

	p.out.Lock()
	p.humCtrl.Paused = !thrusting || p.muted.Load()
	p.hum.freq = freq
	p.out.Unlock()
}

// SetVolume changes master gain, 0 silences
func (p *Player) SetVolume(vol float64) {
	p.cfg.MasterVolume = vol
	if !p.running.Load() {
		return
	}
	p.out.Lock()
	setGain(p.master, vol)
	p.out.Unlock()
}

// ToggleMute flips mute, returns true when sound is now enabled
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	if p.running.Load() {
		p.mu.Lock()
		thrusting := p.thrusting
		p.mu.Unlock()

		p.out.Lock()
		p.humCtrl.Paused = muted || !thrusting
		p.out.Unlock()
	}
	return !muted
}

func (p *Player) Muted() bool {
	return p.muted.Load()
}

// OnEvent plays the cue for a simulation event, usable as an engine.Listener
func (p *Player) OnEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventOverlayOpened:
		p.Play(CueOverlayOpen)
	case engine.EventOverlayClosed:
		p.Play(CueOverlayClose)
	case engine.EventLevelUp:
		p.Play(CueLevelUp)
	case engine.EventModeChanged:
		p.Play(CueModeChange)
	case engine.EventNearbyChanged:
		if ev.ID != "" {
			p.Play(CueNearby)
		}
	}
}

// OnFrame follows the craft thrust state
func (p *Player) OnFrame(f engine.Frame) {
	p.SetThrust(f.HUD.Thrusting && !f.Paused, f.HUD.Boosting)
}
