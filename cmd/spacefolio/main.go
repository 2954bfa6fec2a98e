package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/spacefolio/audio"
	"github.com/lixenwraith/spacefolio/config"
	"github.com/lixenwraith/spacefolio/engine"
	"github.com/lixenwraith/spacefolio/status"
	"github.com/lixenwraith/spacefolio/terminal"
)

var (
	configFlag = flag.String("config", "", "Config file (json, toml or yaml)")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "spacefolio: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the report is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPACEFOLIO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sim, err := engine.NewSimulation(cfg.SimulationConfig(), engine.NewPausableClock(nil), log)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	board, err := status.NewBoard(log, cfg.Log.TelemetryInterval)
	if err != nil {
		return fmt.Errorf("create status board: %w", err)
	}
	defer board.Close()

	player := audio.NewPlayer(cfg.AudioSettings(), nil, log)
	if err := player.Start(); err != nil {
		log.Warn().Err(err).Msg("audio start failed, continuing without audio")
	}
	defer player.Stop()

	events := engine.NewEventQueue()
	sim.Subscribe(events.Listener())
	sim.Subscribe(board.Record)
	sim.Subscribe(player.OnEvent)

	var app *terminal.App
	sched := engine.NewScheduler(sim, cfg.SchedulerConfig(), func(f engine.Frame) {
		board.Publish(f)
		player.OnFrame(f)
		app.Offer(f)
	}, log)

	app = terminal.NewApp(screen, sched, events, cfg.LandmarkSet(), cfg.TerminalSettings(), log)
	app.SetMuteToggle(player.ToggleMute)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start()
	defer sched.Stop()

	log.Info().
		Int("landmarks", len(cfg.Landmarks)).
		Bool("audio", !player.Muted()).
		Msg("spacefolio started")

	if err := app.Run(ctx); err != nil {
		return err
	}

	if snap, ok := board.Latest(); ok {
		log.Info().
			Uint64("frames", snap.Seq).
			Int("level", snap.Level).
			Int("experience", snap.Experience).
			Msg("session ended")
	}
	return nil
}
