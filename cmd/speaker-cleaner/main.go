package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/speaker-cleaner/audio"
	"github.com/lixenwraith/speaker-cleaner/bubble"
	"github.com/lixenwraith/speaker-cleaner/config"
	"github.com/lixenwraith/speaker-cleaner/core"
	"github.com/lixenwraith/speaker-cleaner/display"
	"github.com/lixenwraith/speaker-cleaner/engine"
	"github.com/lixenwraith/speaker-cleaner/render"
	"github.com/lixenwraith/speaker-cleaner/service"
	"github.com/lixenwraith/speaker-cleaner/session"
)

// surface is a display flavor
type surface interface {
	Listener() session.Listener
	Run(ctx context.Context, act display.Actions) error
}

// exitFailure is the status for startup and runtime errors
const exitFailure = 1

func main() {
	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if code := realMain(os.Args[1:], os.LookupEnv, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// realMain parses args, loads config and runs the app, returning the exit status
func realMain(args []string, lookup func(string) (string, bool), stderr io.Writer) int {
	fs := flag.NewFlagSet("speaker-cleaner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitFailure
	}

	cfg, err := config.Load(flags, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "speaker-cleaner: %v\n", err)
		return exitFailure
	}

	logFile := setupLogging(cfg.Debug)
	err = run(cfg, log.Default())
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(stderr, "speaker-cleaner: %v\n", err)
		return exitFailure
	}
	return 0
}

func run(cfg *config.Config, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surf, closeSurface, err := newSurface(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSurface()

	audioSvc := audio.NewService(&audio.AudioConfig{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.VolumeFraction(),
		SampleRate:   cfg.Audio.SampleRate,
	}, logger)

	loop := engine.NewLoop(engine.DefaultInboxSize)
	ctrl := session.New(audioSvc.Sound(), engine.NewTickerScheduler(loop),
		session.WithListener(surf.Listener()),
		session.WithLogger(logger),
	)
	// Runtime depends on audio so the session is cancelled before the speaker closes
	rt := engine.NewRuntime(loop, ctrl, audioSvc.Name())

	hub := service.NewHub()
	for _, svc := range []service.Service{audioSvc, rt} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	logger.Printf("speaker-cleaner: started ui=%s audio=%v order=%v", cfg.UI, !audioSvc.IsDisabled(), hub.Order())

	runErr := surf.Run(ctx, rt)

	// Quit while running: runtime Stop cancels the session, then audio closes
	if err := hub.StopAll(); err != nil {
		logger.Printf("speaker-cleaner: shutdown: %v", err)
	}
	return runErr
}

// newSurface builds the configured display flavor and its teardown
func newSurface(cfg *config.Config, logger *log.Logger) (surface, func(), error) {
	if cfg.UI == config.UIBubble {
		s := bubble.NewSurface(
			bubble.WithLogger(logger),
			bubble.WithColor(cfg.Color),
		)
		core.SetCrashTerminal(core.NewTerminalRestorer(os.Stdout, int(os.Stdin.Fd())))
		return s, func() { core.SetCrashTerminal(nil) }, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashTerminal(screen)

	s := render.NewSurface(screen,
		render.WithLogger(logger),
		render.WithPalette(render.NewPalette(cfg.Color, screen.Colors())),
	)
	return s, func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}, nil
}
