package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"grid-snake/ai"
	"grid-snake/audio"
	"grid-snake/game"
	"grid-snake/game/store"
	"grid-snake/spectate"
	"grid-snake/term"
	"grid-snake/ui"
)

const defaultDataFile = "data/snake.json"

func main() {
	cfg := game.DefaultConfig()

	frontend := flag.String("frontend", "raylib", "Frontend to play with: raylib or term")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in pixels")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flag.DurationVar(&cfg.Speed, "speed", cfg.Speed, "Time between ticks")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food RNG seed (0 = random)")
	dataFile := flag.String("data", "", "High score file (default $SNAKE_DATA or "+defaultDataFile+")")
	mute := flag.Bool("mute", false, "Disable sound")
	spectateAddr := flag.String("spectate", "", "Serve a websocket spectator stream on this address, e.g. :8080")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent play")
	qtable := flag.String("qtable", "", "Q-table file to load and save with -autopilot")
	logFile := flag.String("log", "", "Write logs to this file (terminal frontend only)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *frontend == "term" {
		closeLog, err := redirectLog(*logFile)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer closeLog()
	}

	path := *dataFile
	if path == "" {
		path = os.Getenv("SNAKE_DATA")
	}
	if path == "" {
		path = defaultDataFile
	}
	var st store.Store
	if fileStore, err := store.OpenFile(path); err != nil {
		log.Printf("Warning: %v, high score will not be kept", err)
		st = store.NewMemoryStore()
	} else {
		st = fileStore
	}

	g, err := game.New(cfg, st)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if !*mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("Warning: audio disabled: %v", err)
		} else {
			defer player.Close()
			g.Subscribe(player.Listen)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *spectateAddr != "" {
		hub := spectate.NewHub()
		hub.Attach(g)
		go func() {
			if err := spectate.Serve(ctx, *spectateAddr, hub); err != nil {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
		log.Printf("Spectators can connect to ws://%s%s", *spectateAddr, spectate.Path)
	}

	var pilot *ai.Autopilot
	if *autopilot {
		agent := ai.NewQLearning(cfg.Seed)
		if *qtable != "" {
			if err := agent.LoadQTable(*qtable); err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Warning: starting with an empty Q-table: %v", err)
			}
		}
		pilot = ai.NewAutopilot(agent)
	}

	switch *frontend {
	case "raylib":
		err = ui.Run(g, pilot)
	case "term":
		err = term.Run(g, pilot)
	default:
		log.Fatalf("Unknown frontend %q (want raylib or term)", *frontend)
	}

	if pilot != nil && *qtable != "" {
		if serr := pilot.Agent.SaveQTable(*qtable); serr != nil {
			log.Printf("Warning: failed to save Q-table: %v", serr)
		}
	}

	if err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

// redirectLog sends log output to path, or discards it when path is empty,
// so log lines do not land on the terminal screen.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
