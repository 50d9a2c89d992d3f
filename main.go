package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"neon-snake/ai"
	"neon-snake/game"
	"neon-snake/game/types"
	"neon-snake/ui"
)

type screen interface {
	game.Presenter
	io.Closer
}

func main() {
	term := flag.Bool("term", false, "Play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning pilot steer")
	safeFood := flag.Bool("safe-food", false, "Never spawn food on the snake")
	seed := flag.Uint64("seed", 0, "Random seed (0 = from clock)")
	width := flag.Int("width", types.DefaultWidth, "Board width in pixels")
	height := flag.Int("height", types.DefaultHeight, "Board height in pixels")
	cell := flag.Int("cell", types.DefaultCellSize, "Cell size in pixels")
	speed := flag.Int("speed", game.DefaultConfig().BaseSpeed, "Ticks per second at level 1")
	debug := flag.Bool("debug", false, "Write logs to logs/neon-snake.log")
	sessions := flag.Int("sessions", 0, "Stop after this many sessions (0 = until quit)")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	cfg := game.DefaultConfig()
	cfg.Grid = types.Grid{Width: *width, Height: *height, CellSize: *cell}
	cfg.StartHead = game.StartHeadFor(cfg.Grid, cfg.StartDir, cfg.StartLength)
	cfg.BaseSpeed = *speed
	cfg.SafeFood = *safeFood
	cfg.Seed = *seed
	cfg.MaxSessions = *sessions
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	var scr screen
	if *term {
		t, err := ui.NewTerminal(cfg.Grid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		scr = t
	} else {
		scr = ui.NewRenderer(cfg.Grid)
	}

	stats := NewSessionStats()
	runner := game.NewRunner(scr, cfg)
	runner.Recorder = stats
	runner.Logger = log.Default()
	if *autopilot {
		runner.Pilot = ai.NewQLearning(*seed)
	}

	played := play(scr, runner)

	log.Printf("played %d sessions: best=%d average=%.2f average duration=%.1fs",
		played, stats.Best(), stats.AverageScore(), stats.AverageDuration())
}

// play runs the game and always hands the terminal or window back
func play(scr screen, runner *game.Runner) int {
	defer scr.Close()
	return runner.Run()
}
