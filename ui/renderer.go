package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"neon-snake/game"
	"neon-snake/game/types"
)

const (
	targetFPS     = 60
	fontSmall     = 20
	fontLarge     = 40
	hudPadding    = 10
	glowSpread    = 3
	glowAlpha     = 50.0 / 255.0
	WindowTitle   = "Snake Neon Arcade Deluxe"
	restartPrompt = "Press R to Restart or Q to Quit"
)

// Renderer draws the game in a raylib window. raylib only gathers input while
// frames are being presented, so every blocking call keeps redrawing the last
// scene and queues the keys it sees.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellSize     int32

	last      game.Frame
	hasFrame  bool
	gameOver  *game.GameOverScreen
	queue     []game.Event
	tickStart time.Time
}

func NewRenderer(grid types.Grid) *Renderer {
	rl.InitWindow(int32(grid.Width), int32(grid.Height), WindowTitle)
	rl.SetTargetFPS(targetFPS)

	r := &Renderer{cellSize: int32(grid.CellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}

func (r *Renderer) PollEvents() []game.Event {
	r.collect()
	events := r.queue
	r.queue = nil
	return events
}

func (r *Renderer) Render(frame game.Frame) {
	r.tickStart = time.Now()
	r.last = frame
	r.hasFrame = true
	r.gameOver = nil
	r.present()
}

func (r *Renderer) RenderGameOver(screen game.GameOverScreen) {
	r.gameOver = &screen
	r.present()
}

func (r *Renderer) WaitEvent() game.Event {
	for {
		r.collect()
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue = r.queue[1:]
			return ev
		}
		r.present()
	}
}

// TickDelay waits out the tick that began with the last Render. Every tick
// presents at least once, so the window tops out at targetFPS ticks per second.
func (r *Renderer) TickDelay(ticksPerSecond int) {
	start := r.tickStart
	if start.IsZero() {
		start = time.Now()
	}
	deadline := tickDeadline(start, ticksPerSecond)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if !fitsFrame(remaining) {
			time.Sleep(remaining)
			r.collect()
			return
		}
		r.present()
		r.collect()
	}
}

const frameTime = time.Second / targetFPS

func tickDeadline(start time.Time, ticksPerSecond int) time.Time {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return start.Add(time.Second / time.Duration(ticksPerSecond))
}

// fitsFrame reports whether a full frame can be presented in remaining
func fitsFrame(remaining time.Duration) bool {
	return remaining >= frameTime
}

// collect drains raylib's key queue into ours
func (r *Renderer) collect() {
	if rl.WindowShouldClose() {
		r.queue = append(r.queue, game.EventQuit)
		return
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev := keyToEvent(key); ev != game.EventNone {
			r.queue = append(r.queue, ev)
		}
	}
}

func keyToEvent(key int32) game.Event {
	switch key {
	case rl.KeyUp:
		return game.EventUp
	case rl.KeyDown:
		return game.EventDown
	case rl.KeyLeft:
		return game.EventLeft
	case rl.KeyRight:
		return game.EventRight
	case rl.KeyR:
		return game.EventRestart
	case rl.KeyQ:
		return game.EventExit
	default:
		return game.EventNone
	}
}

func (r *Renderer) present() {
	r.UpdateDimensions()
	rl.BeginDrawing()
	switch {
	case r.gameOver != nil:
		r.drawGameOver(*r.gameOver)
	case r.hasFrame:
		r.drawFrame(r.last)
	default:
		rl.ClearBackground(rl.Black)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawFrame(f game.Frame) {
	rl.DrawRectangleGradientV(0, 0, r.screenWidth, r.screenHeight,
		toRL(game.Background[0]), toRL(game.Background[1]))

	for _, seg := range f.Segments {
		r.drawSegment(seg)
	}

	rl.DrawRectangle(int32(f.Food.X), int32(f.Food.Y), r.cellSize, r.cellSize, toRL(game.FoodColor))

	for _, p := range f.Particles {
		if p.Radius <= 0 {
			continue
		}
		rl.DrawCircle(int32(p.X), int32(p.Y), float32(int(p.Radius)), toRL(p.Color))
	}

	scoreText := fmt.Sprintf("Score: %d", f.Score)
	levelText := fmt.Sprintf("Level: %d", f.Level)
	rl.DrawText(scoreText, hudPadding, hudPadding, fontSmall, toRL(game.White))
	levelWidth := rl.MeasureText(levelText, fontSmall)
	rl.DrawText(levelText, r.screenWidth-levelWidth-hudPadding, hudPadding, fontSmall, toRL(game.LevelColor))
}

// drawSegment paints a neon square with a translucent halo around it
func (r *Renderer) drawSegment(seg game.Segment) {
	color := toRL(seg.Color)
	x, y := int32(seg.Cell.X), int32(seg.Cell.Y)

	rl.DrawRectangle(x-glowSpread, y-glowSpread, r.cellSize+2*glowSpread, r.cellSize+2*glowSpread,
		rl.Fade(color, glowAlpha))
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawGameOver(s game.GameOverScreen) {
	rl.ClearBackground(rl.Black)

	title := fmt.Sprintf("Game Over! Score: %d", s.Score)
	titleWidth := rl.MeasureText(title, fontLarge)
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, r.screenHeight/3, fontLarge, toRL(game.AlertColor))

	best := fmt.Sprintf("Best: %d", s.Best)
	bestWidth := rl.MeasureText(best, fontSmall)
	rl.DrawText(best, (r.screenWidth-bestWidth)/2, r.screenHeight/3+fontLarge+hudPadding, fontSmall, toRL(game.LevelColor))

	promptWidth := rl.MeasureText(restartPrompt, fontSmall)
	rl.DrawText(restartPrompt, (r.screenWidth-promptWidth)/2, r.screenHeight/2, fontSmall, toRL(game.White))
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
