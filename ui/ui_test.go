package ui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"neon-snake/game"
	"neon-snake/game/types"
)

func TestKeyToEvent(t *testing.T) {
	tests := []struct {
		key  int32
		want game.Event
	}{
		{rl.KeyUp, game.EventUp},
		{rl.KeyDown, game.EventDown},
		{rl.KeyLeft, game.EventLeft},
		{rl.KeyRight, game.EventRight},
		{rl.KeyR, game.EventRestart},
		{rl.KeyQ, game.EventExit},
		{rl.KeySpace, game.EventNone},
	}
	for _, tt := range tests {
		if got := keyToEvent(tt.key); got != tt.want {
			t.Errorf("keyToEvent(%d) = %s, want %s", tt.key, got, tt.want)
		}
	}
}

func TestTickDeadline(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		tps  int
		want time.Duration
	}{
		{10, 100 * time.Millisecond},
		{100, 10 * time.Millisecond},
		{0, time.Second},
		{-3, time.Second},
	}
	for _, tt := range tests {
		if got := tickDeadline(start, tt.tps).Sub(start); got != tt.want {
			t.Errorf("tickDeadline(%d) = %v, want %v", tt.tps, got, tt.want)
		}
	}
}

func TestFitsFrame(t *testing.T) {
	if !fitsFrame(frameTime) {
		t.Error("Expected a full frame to fit")
	}
	if fitsFrame(frameTime - time.Millisecond) {
		t.Error("Expected less than a frame not to fit")
	}
	// From level 27 on the tick is shorter than a frame
	tps := 10 + 2*26
	if fitsFrame(time.Second / time.Duration(tps)) {
		t.Errorf("Expected a %d ticks/s interval to be shorter than a frame", tps)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Event
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.EventUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.EventDown},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.EventLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.EventRight},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.EventQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.EventQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), game.EventRestart},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), game.EventExit},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.EventNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.ev); got != tt.want {
				t.Errorf("translateKey = %s, want %s", got, tt.want)
			}
		})
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term, err := NewTerminalWithScreen(sim, types.DefaultGrid())
	if err != nil {
		t.Fatalf("NewTerminalWithScreen failed: %v", err)
	}
	sim.SetSize(80, 25)
	t.Cleanup(func() { term.Close() })
	return term, sim
}

func TestTerminalRenderPlacesCells(t *testing.T) {
	term, sim := newSimTerminal(t)

	frame := game.Frame{
		Grid: types.DefaultGrid(),
		Segments: []game.Segment{
			{Cell: types.Cell{X: 100, Y: 100}, Color: game.SegmentColor(0)},
			{Cell: types.Cell{X: 80, Y: 100}, Color: game.SegmentColor(1)},
		},
		Food:  types.Cell{X: 200, Y: 40},
		Score: 3,
		Level: 1,
	}
	term.Render(frame)

	// Cell (100,100) is column 5, row 5, drawn two terminal columns wide
	for _, x := range []int{10, 11, 8, 9} {
		if ch, _, _, _ := sim.GetContent(x, 5); ch != '█' {
			t.Errorf("Expected snake block at (%d,5), got %q", x, ch)
		}
	}
	if ch, _, _, _ := sim.GetContent(20, 2); ch != '█' {
		t.Errorf("Expected food block at (20,2), got %q", ch)
	}

	hud := ""
	for x := 1; x <= 8; x++ {
		ch, _, _, _ := sim.GetContent(x, 0)
		hud += string(ch)
	}
	if hud != "Score: 3" {
		t.Errorf("Expected HUD %q, got %q", "Score: 3", hud)
	}
}

func TestTerminalEvents(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	if ev := term.WaitEvent(); ev != game.EventUp {
		t.Errorf("Expected KEY_UP, got %s", ev)
	}

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	if ev := term.WaitEvent(); ev != game.EventRestart {
		t.Errorf("Expected unknown keys to be skipped and KEY_R returned, got %s", ev)
	}
}

func TestTerminalTickDelayCollectsInput(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	term.TickDelay(5)

	events := term.PollEvents()
	if len(events) != 1 || events[0] != game.EventLeft {
		t.Errorf("Expected [KEY_LEFT], got %v", events)
	}
	if again := term.PollEvents(); len(again) != 0 {
		t.Errorf("Expected queue drained, got %v", again)
	}
}

func TestTerminalCloseWithFullEventBuffer(t *testing.T) {
	term, sim := newSimTerminal(t)

	// Fill our buffer, leave one event held by the pump and the rest queued
	for i := 0; i < eventBuffer+5; i++ {
		sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	deadline := time.Now().Add(2 * time.Second)
	for len(term.events) < eventBuffer {
		if time.Now().After(deadline) {
			t.Fatalf("Event buffer never filled, have %d", len(term.events))
		}
		time.Sleep(time.Millisecond)
	}

	closed := make(chan struct{})
	go func() {
		term.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while the event buffer was full")
	}

	if ev := term.WaitEvent(); ev != game.EventQuit {
		t.Errorf("Expected QUIT once the screen is closed, got %s", ev)
	}
}
