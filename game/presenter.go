package game

import (
	"neon-snake/game/types"
)

// Event is an input event delivered by a Presenter
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventUp
	EventDown
	EventLeft
	EventRight
	EventRestart // R on the game over screen
	EventExit    // Q on the game over screen
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "QUIT"
	case EventUp:
		return "KEY_UP"
	case EventDown:
		return "KEY_DOWN"
	case EventLeft:
		return "KEY_LEFT"
	case EventRight:
		return "KEY_RIGHT"
	case EventRestart:
		return "KEY_R"
	case EventExit:
		return "KEY_Q"
	default:
		return "NONE"
	}
}

// Direction maps arrow events to a direction
func (e Event) Direction() (types.Direction, bool) {
	switch e {
	case EventUp:
		return types.Up, true
	case EventDown:
		return types.Down, true
	case EventLeft:
		return types.Left, true
	case EventRight:
		return types.Right, true
	default:
		return 0, false
	}
}

// Presenter is the rendering and input boundary of the game loop.
// All calls come from the loop goroutine.
type Presenter interface {
	// PollEvents returns the events gathered since the last call without blocking
	PollEvents() []Event
	Render(frame Frame)
	RenderGameOver(screen GameOverScreen)
	// WaitEvent blocks until the next event
	WaitEvent() Event
	// TickDelay blocks for 1/ticksPerSecond seconds, still collecting input
	TickDelay(ticksPerSecond int)
}

// Pilot steers the snake in place of a player
type Pilot interface {
	Steer(s *Session) (types.Direction, bool)
	Observe(s *Session, res TickResult)
}

// Recorder keeps the history of finished sessions
type Recorder interface {
	Record(summary Summary)
	Best() int
}
