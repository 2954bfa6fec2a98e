package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/core"
	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/input"
	"github.com/lixenwraith/spacefolio/parameter"
	"github.com/lixenwraith/spacefolio/proximity"
)

var ErrNoScreen = errors.New("terminal screen unavailable")

// Inbox is the scheduler surface the App drives
type Inbox interface {
	Post(ev input.Event) bool
	Submit(ctx context.Context, cmd engine.Command) error
}

// Config holds the terminal host settings
type Config struct {
	KeyHold        time.Duration
	KeyHoldSweep   time.Duration
	RenderInterval time.Duration
	CellAspect     float64
	Mouse          bool
}

func DefaultConfig() Config {
	return Config{
		KeyHold:        parameter.KeyHoldDuration,
		KeyHoldSweep:   parameter.KeyHoldSweepInterval,
		RenderInterval: parameter.TerminalRenderInterval,
		CellAspect:     parameter.TerminalCellAspect,
		Mouse:          true,
	}
}

// App owns the screen and translates terminal input into simulation input
type App struct {
	screen   tcell.Screen
	inbox    Inbox
	events   *engine.EventQueue
	renderer *Renderer
	cfg      Config
	log      zerolog.Logger
	now      func() time.Time

	hold    *KeyHold
	pointer pointer
	frames  chan engine.Frame
	last    engine.Frame
	dirty   bool

	status      string
	statusUntil time.Time

	onMute func() bool
	muted  bool
}

// NewScreen creates and initializes the system terminal screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoScreen, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoScreen, err)
	}
	return screen, nil
}

// NewApp wires an initialized screen to the scheduler inbox
// events may be nil when nothing needs to react to simulation events
func NewApp(screen tcell.Screen, inbox Inbox, events *engine.EventQueue, landmarks []proximity.Landmark, cfg Config, log zerolog.Logger) *App {
	def := DefaultConfig()
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = def.KeyHold
	}
	if cfg.KeyHoldSweep <= 0 {
		cfg.KeyHoldSweep = def.KeyHoldSweep
	}
	if cfg.RenderInterval <= 0 {
		cfg.RenderInterval = def.RenderInterval
	}
	if cfg.CellAspect <= 0 {
		cfg.CellAspect = def.CellAspect
	}

	a := &App{
		screen:   screen,
		inbox:    inbox,
		events:   events,
		renderer: NewRenderer(landmarks, cfg.CellAspect),
		cfg:      cfg,
		log:      log.With().Str("component", "terminal").Logger(),
		now:      time.Now,
		hold:     NewKeyHold(cfg.KeyHold),
		frames:   make(chan engine.Frame, 1),
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	if cfg.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	}

	// Restore the terminal before a crash report is printed
	core.SetCrashHandler(func(any) { screen.Fini() })
	return a
}

// SetMuteToggle installs the handler for the mute key, it returns true when sound is on
func (a *App) SetMuteToggle(fn func() bool) {
	a.onMute = fn
}

// Offer hands a frame to the renderer, replacing one not yet drawn
// Safe from the scheduler goroutine, never blocks
func (a *App) Offer(f engine.Frame) {
	select {
	case a.frames <- f:
		return
	default:
	}
	select {
	case <-a.frames:
	default:
	}
	select {
	case a.frames <- f:
	default:
	}
}

// Run processes terminal input and redraws until ctx is done or the user quits
func (a *App) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-quit:
				return
			}
		}
	})

	sweep := time.NewTicker(a.cfg.KeyHoldSweep)
	defer sweep.Stop()
	render := time.NewTicker(a.cfg.RenderInterval)
	defer render.Stop()

	a.log.Info().Msg("terminal started")
	for {
		select {
		case <-ctx.Done():
			a.releaseAll()
			return nil

		case ev := <-evCh:
			if !a.handleEvent(ctx, ev) {
				a.releaseAll()
				a.log.Info().Msg("quit requested")
				return nil
			}

		case <-sweep.C:
			a.expire(a.now())

		case f := <-a.frames:
			a.last = f
			a.dirty = true

		case <-render.C:
			a.drainEvents()
			if a.dirty {
				a.draw()
			}
		}
	}
}

// handleEvent returns false when the App should exit
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)

	case *tcell.EventMouse:
		for _, in := range a.pointer.translate(ev) {
			a.inbox.Post(in)
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true

	case *tcell.EventFocus:
		// Keys held when focus leaves never see a repeat again
		if !ev.Focused {
			a.releaseAll()
		}
	}
	return true
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch controlFor(ev) {
	case controlQuit:
		return false
	case controlOpen:
		a.submit(ctx, engine.CommandOpenNearby{})
		return true
	case controlClose:
		a.submit(ctx, engine.CommandCloseOverlay{})
		return true
	case controlToggleMode:
		a.releaseAll()
		a.submit(ctx, engine.CommandToggleMode{})
		return true
	case controlMute:
		if a.onMute != nil {
			a.muted = !a.onMute()
			a.dirty = true
		}
		return true
	}

	name, shifted := keyName(ev)
	if name == "" {
		return true
	}
	now := a.now()
	if shifted {
		a.press(shiftKey, now)
	} else if a.hold.Release(shiftKey) {
		a.inbox.Post(input.KeyUp(shiftKey))
	}
	a.press(name, now)
	return true
}

func (a *App) press(key string, now time.Time) {
	if a.hold.Press(key, now) {
		a.inbox.Post(input.KeyDown(key))
	}
}

func (a *App) expire(now time.Time) {
	for _, k := range a.hold.Expire(now) {
		a.inbox.Post(input.KeyUp(k))
	}
}

func (a *App) releaseAll() {
	for _, k := range a.hold.ReleaseAll() {
		a.inbox.Post(input.KeyUp(k))
	}
}

// submit dispatches a command, policy rejections become a status message
func (a *App) submit(ctx context.Context, cmd engine.Command) {
	err := a.inbox.Submit(ctx, cmd)
	switch {
	case err == nil:
		return
	case errors.Is(err, engine.ErrNoNearby):
		a.setStatus("Nothing in range")
	case errors.Is(err, engine.ErrNoOverlay):
		// Esc with nothing open
	case errors.Is(err, engine.ErrNotExploring), errors.Is(err, engine.ErrOverlayOpen):
		a.setStatus(err.Error())
	default:
		a.log.Warn().Err(err).Type("command", cmd).Msg("command failed")
		a.setStatus(err.Error())
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = a.now().Add(parameter.TerminalStatusDuration)
	a.dirty = true
}

// drainEvents turns simulation events into status messages
func (a *App) drainEvents() {
	if a.events == nil {
		return
	}
	for _, ev := range a.events.Consume() {
		switch ev.Type {
		case engine.EventLevelUp:
			a.setStatus(fmt.Sprintf("Level %d reached", ev.Level))
		case engine.EventModeChanged:
			a.releaseAll()
		}
	}
}

func (a *App) draw() {
	status := a.status
	if status != "" && a.now().After(a.statusUntil) {
		a.status = ""
		status = ""
	}
	a.renderer.Draw(a.screen, a.last, status, a.muted)
	a.dirty = status != ""
}
