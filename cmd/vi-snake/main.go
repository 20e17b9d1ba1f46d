package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

const (
	logDir      = "logs"
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// options holds command-line overrides; zero values defer to config
type options struct {
	configPath string
	difficulty string
	seed       int64
	debug      bool
	mute       bool
	color      string

	set map[string]bool // Flags given explicitly
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to a TOML config file")
	fs.StringVar(&o.difficulty, "difficulty", "", "Preselected difficulty: easy, normal, hard")
	fs.Int64Var(&o.seed, "seed", 0, "Random seed for food placement (0 = time)")
	fs.BoolVar(&o.debug, "debug", false, "Write logs/vi-snake.log and show the metrics status line")
	fs.BoolVar(&o.mute, "mute", false, "Start with sound effects muted")
	fs.StringVar(&o.color, "color", "auto", "Color mode: auto, on, off")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overlays explicitly set flags onto cfg
func (o *options) apply(cfg *config.Config) {
	if o.set["difficulty"] {
		cfg.Game.Difficulty = o.difficulty
	}
	if o.set["seed"] {
		cfg.Game.Seed = o.seed
	}
	if o.set["debug"] {
		cfg.Display.Debug = o.debug
	}
	switch o.color {
	case "on", "true":
		cfg.Display.Color = true
	case "off", "false":
		cfg.Display.Color = false
	}
}

// useColor resolves the theme: auto follows config and needs a 256-color terminal
func (o *options) useColor(cfg *config.Config, colors int) bool {
	if o.color == "auto" {
		return cfg.Display.Color && colors >= 256
	}
	return cfg.Display.Color
}

// setupLogging routes the standard logger to a rotating file when debug is on, discarding otherwise
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			// Truncate in place when rename fails
			os.Truncate(logPath, 0)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	// Restore the terminal and print the stack if the game loop panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Display.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	for _, key := range cfg.Unknown {
		log.Printf("config: ignoring unknown key %q in %s", key, opts.configPath)
	}

	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, opts *options) error {
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}
	eng, err := engine.NewEngine(engine.Config{Grid: grid, Seed: cfg.Game.Seed})
	if err != nil {
		return err
	}

	statusReg := status.NewRegistry()
	queue := events.NewEventQueue()
	scheduler := engine.NewClockScheduler(eng, queue, statusReg, engine.SchedulerConfig{
		BonusUnit: cfg.Game.BonusUnit,
	})
	defer scheduler.Stop()

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	if opts.mute {
		sound.SetMuted(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashHandler(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	popups := render.NewScorePopups()
	router := events.NewRouter[engine.Snapshot](queue)
	router.Register(engine.EventLogger{})
	router.Register(audio.NewHandler(sound))
	router.Register(popups)

	theme := render.NewTheme(opts.useColor(cfg, screen.Colors()))
	g := &game{
		screen:    screen,
		scheduler: scheduler,
		router:    router,
		renderer:  render.NewRenderer(screen, theme, popups, statusReg, cfg.Display.Debug),
		machine:   input.NewMachine(),
		sound:     sound,
		scene:     render.SceneMenu,
		selected:  cfg.Difficulty(),
		snap:      scheduler.Snapshot(),

		statPlayed: statusReg.Ints.Get("audio.played"),
	}

	log.Printf("vi-snake started: grid=%dx%d difficulty=%s seed=%d", grid.Width, grid.Height, g.selected, cfg.Game.Seed)
	return g.loop()
}

// game is the driver: it owns the scene and routes input, engine updates and frames
type game struct {
	screen    tcell.Screen
	scheduler *engine.ClockScheduler
	router    *events.Router[engine.Snapshot]
	renderer  *render.Renderer
	machine   *input.Machine
	sound     *audio.SoundManager

	scene    render.Scene
	selected engine.Difficulty
	snap     engine.Snapshot

	statPlayed *atomic.Int64
}

func (g *game) loop() error {
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handle(ev) {
				log.Printf("vi-snake exiting")
				return nil
			}
			g.draw()

		case <-g.scheduler.Updated():
			g.sync()
			g.draw()

		case <-frameTicker.C:
			// Popup expiry and countdown redraws
			if g.scene != render.SceneMenu {
				g.draw()
			}
		}
	}
}

// handle applies one terminal event, returning false to quit
func (g *game) handle(ev tcell.Event) bool {
	intent := g.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentToggleMute:
		g.sound.SetMuted(!g.sound.IsMuted())

	case input.IntentResize:
		g.screen.Sync()

	case input.IntentDirection:
		g.scheduler.SetDirection(intent.Direction)

	case input.IntentSelectDifficulty:
		g.start(intent.Difficulty)

	case input.IntentConfirm:
		switch g.scene {
		case render.SceneMenu:
			g.start(g.selected)
		case render.SceneGameOver:
			g.toMenu()
		}

	case input.IntentDecline:
		if g.scene == render.SceneGameOver {
			return false
		}
	}
	return true
}

func (g *game) start(d engine.Difficulty) {
	res, err := g.scheduler.Start(d)
	if err != nil {
		log.Printf("start %s: %v", d, err)
		return
	}
	g.selected = d
	g.snap = res.Snapshot
	g.scene = render.ScenePlaying
	g.machine.SetMode(input.ModePlaying)
	g.sync()
}

func (g *game) toMenu() {
	g.scheduler.Stop()
	g.scene = render.SceneMenu
	g.machine.SetMode(input.ModeMenu)
}

// sync pulls the latest snapshot and dispatches pending events against it
func (g *game) sync() {
	g.snap = g.scheduler.Snapshot()
	g.router.DispatchAll(g.snap)
	g.statPlayed.Store(g.sound.Played())

	if g.scene == render.ScenePlaying && g.snap.State == engine.StateGameOver {
		g.scene = render.SceneGameOver
		g.machine.SetMode(input.ModeGameOver)
	}
}

func (g *game) draw() {
	g.renderer.Draw(render.Frame{
		Scene:    g.scene,
		Snapshot: g.snap,
		Selected: g.selected,
		Muted:    g.sound.IsMuted(),
		Now:      time.Now(),
	})
}
