package ui

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"neon-snake/game"
	"neon-snake/game/types"
)

const (
	cellColumns = 2 // terminal columns per board cell, keeps cells roughly square
	eventBuffer = 100
)

// Terminal draws the game with tcell. Each board cell is two columns wide and
// one row high.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	queue  []game.Event

	done      chan struct{}
	pumpDone  chan struct{}
	closeOnce sync.Once
}

// NewTerminal takes over the controlling terminal
func NewTerminal(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTerminalWithScreen(screen, grid)
}

// NewTerminalWithScreen initialises an existing screen, such as a simulation
// screen in tests
func NewTerminalWithScreen(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events:   make(chan tcell.Event, eventBuffer),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalised or Close is called
func (t *Terminal) pump() {
	defer close(t.pumpDone)
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal and returns once the event goroutine has exited
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
		<-t.pumpDone
	})
	return nil
}

func (t *Terminal) PollEvents() []game.Event {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.queue = append(t.queue, game.EventQuit)
				return t.flush()
			}
			t.handle(ev)
		default:
			return t.flush()
		}
	}
}

func (t *Terminal) WaitEvent() game.Event {
	for len(t.queue) == 0 {
		ev, ok := <-t.events
		if !ok {
			return game.EventQuit
		}
		t.handle(ev)
	}
	ev := t.queue[0]
	t.queue = t.queue[1:]
	return ev
}

func (t *Terminal) TickDelay(ticksPerSecond int) {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	timer := time.NewTimer(time.Second / time.Duration(ticksPerSecond))
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.queue = append(t.queue, game.EventQuit)
				<-timer.C
				return
			}
			t.handle(ev)
		case <-timer.C:
			return
		}
	}
}

func (t *Terminal) flush() []game.Event {
	out := t.queue
	t.queue = nil
	return out
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e := translateKey(ev); e != game.EventNone {
			t.queue = append(t.queue, e)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func translateKey(ev *tcell.EventKey) game.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.EventUp
	case tcell.KeyDown:
		return game.EventDown
	case tcell.KeyLeft:
		return game.EventLeft
	case tcell.KeyRight:
		return game.EventRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return game.EventRestart
		case 'q', 'Q':
			return game.EventExit
		}
	}
	return game.EventNone
}

func (t *Terminal) Render(f game.Frame) {
	t.screen.Clear()
	rows, cols := t.grid.Rows(), t.grid.Cols()

	for row := 0; row < rows; row++ {
		bg := tcellColor(game.GradientAt(row*t.grid.CellSize, t.grid.Height))
		style := tcell.StyleDefault.Background(bg)
		for col := 0; col < cols*cellColumns; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	for i := len(f.Segments) - 1; i >= 0; i-- {
		seg := f.Segments[i]
		t.putCell(seg.Cell, '█', seg.Color)
	}
	t.putCell(f.Food, '█', game.FoodColor)

	for _, p := range f.Particles {
		col := int(math.Floor(p.X / float64(t.grid.CellSize) * cellColumns))
		row := int(math.Floor(p.Y / float64(t.grid.CellSize)))
		if col < 0 || row < 0 || col >= cols*cellColumns || row >= rows {
			continue
		}
		ch := '·'
		if p.Radius >= 2 {
			ch = '*'
		}
		bg := tcellColor(game.GradientAt(row*t.grid.CellSize, t.grid.Height))
		t.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Foreground(tcellColor(p.Color)).Background(bg))
	}

	t.drawText(1, 0, fmt.Sprintf("Score: %d", f.Score), game.White)
	level := fmt.Sprintf("Level: %d", f.Level)
	t.drawText(cols*cellColumns-len(level)-1, 0, level, game.LevelColor)

	t.screen.Show()
}

func (t *Terminal) RenderGameOver(s game.GameOverScreen) {
	t.screen.Clear()
	width := t.grid.Cols() * cellColumns
	height := t.grid.Rows()

	lines := []struct {
		text  string
		row   int
		color types.Color
	}{
		{fmt.Sprintf("Game Over! Score: %d", s.Score), height / 3, game.AlertColor},
		{fmt.Sprintf("Best: %d", s.Best), height/3 + 1, game.LevelColor},
		{restartPrompt, height / 2, game.White},
	}
	for _, l := range lines {
		t.drawText((width-len(l.text))/2, l.row, l.text, l.color)
	}
	t.screen.Show()
}

func (t *Terminal) putCell(c types.Cell, ch rune, color types.Color) {
	if !t.grid.InBounds(c) {
		return
	}
	col := c.X / t.grid.CellSize * cellColumns
	row := c.Y / t.grid.CellSize
	style := tcell.StyleDefault.Foreground(tcellColor(color))
	for i := 0; i < cellColumns; i++ {
		t.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (t *Terminal) drawText(x, y int, text string, color types.Color) {
	style := tcell.StyleDefault.Foreground(tcellColor(color)).Bold(true)
	for i, ch := range []rune(text) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
