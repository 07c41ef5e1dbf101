package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/autoplay"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/vi-snake.log")
	autoFlag   = flag.Bool("auto", false, "Start with the auto pilot driving")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 uses config or clock")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load key bindings: %v\n", err)
			os.Exit(1)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	seed := cfg.SeedOrClock(time.Now())
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	log.Printf("Starting vi-snake, seed %d, board %dx%d", seed, cfg.TileCount, cfg.TileCount)

	sim, err := engine.NewSimulation(cfg.Settings(), rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}
	sim.SetAutoPilot(cfg.AutoPlay || *autoFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewHandler(keys, sim)
	player := autoplay.NewPlayer()

	// Agent runs before the simulation so a chosen turn lands on the same pump
	scheduler := engine.NewClockScheduler(engine.NewMonotonicTimeProvider())
	scheduler.Every("autoplay", cfg.AutoPlayInterval(), func(now time.Time) {
		player.Run(sim, now)
	})
	scheduler.Every("simulation", 0, func(now time.Time) {
		sim.Update(now)
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	// Input polling goroutine, PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if handler.HandleKey(ev) == input.IntentQuit {
					log.Printf("Quit after %d pumps, %d agent decisions", scheduler.Pumps(), player.Decisions())
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			scheduler.Pump()
			renderer.RenderFrame(sim.Snapshot())
		}
	}
}
