package game

import (
	"io"
	"log"
	"time"

	"golang.org/x/exp/rand"
)

type outcome int

const (
	outcomeGameOver outcome = iota
	outcomeQuit
)

// Runner owns the game loop: one Session at a time, a fresh one on restart,
// and a normal return when the player quits.
type Runner struct {
	Presenter Presenter
	Config    Config
	Pilot     Pilot    // optional
	Recorder  Recorder // optional
	Logger    *log.Logger

	rng      *rand.Rand
	sessions int
}

func NewRunner(p Presenter, cfg Config) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Runner{
		Presenter: p,
		Config:    cfg,
		Logger:    log.New(io.Discard, "", 0),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Run plays sessions until the player quits or MaxSessions is reached.
// It returns the number of sessions started.
func (r *Runner) Run() int {
	for {
		cfg := r.Config
		cfg.Seed = r.rng.Uint64() | 1
		s := NewSession(cfg)
		r.sessions++
		r.Logger.Printf("session %s started (seed %d)", s.ID, cfg.Seed)

		if r.play(s) == outcomeQuit {
			r.Logger.Printf("session %s quit at score %d", s.ID, s.Score())
			return r.sessions
		}

		summary := s.Summary()
		r.Logger.Printf("session %s over: score=%d level=%d ticks=%d collision=%s",
			s.ID, summary.Score, summary.Level, summary.Ticks, summary.Collision)
		if r.Recorder != nil {
			r.Recorder.Record(summary)
		}

		if r.Config.MaxSessions > 0 && r.sessions >= r.Config.MaxSessions {
			r.showGameOver(s)
			return r.sessions
		}
		if !r.promptRestart(s) {
			return r.sessions
		}
	}
}

func (r *Runner) play(s *Session) outcome {
	for {
		for _, ev := range r.Presenter.PollEvents() {
			if ev == EventQuit {
				return outcomeQuit
			}
			if dir, ok := ev.Direction(); ok {
				s.Steer(dir)
			}
		}

		if r.Pilot != nil {
			if dir, ok := r.Pilot.Steer(s); ok {
				s.Steer(dir)
			}
		}

		res := s.Tick()
		if r.Pilot != nil {
			r.Pilot.Observe(s, res)
		}
		if res.State == GameOver {
			return outcomeGameOver
		}

		r.Presenter.Render(s.Frame())
		r.Presenter.TickDelay(s.Speed())
	}
}

func (r *Runner) showGameOver(s *Session) {
	best := s.Score()
	if r.Recorder != nil && r.Recorder.Best() > best {
		best = r.Recorder.Best()
	}
	r.Presenter.RenderGameOver(GameOverScreen{
		Score:     s.Score(),
		Level:     s.Level(),
		Best:      best,
		Collision: s.Collision().String(),
	})
}

// promptRestart shows the game over screen and reports whether to start again
func (r *Runner) promptRestart(s *Session) bool {
	r.showGameOver(s)

	if r.Pilot != nil {
		if ms := r.Config.AutoRestartMs; ms > 0 {
			tps := 1000 / ms
			if tps < 1 {
				tps = 1
			}
			r.Presenter.TickDelay(tps)
		}
		for _, ev := range r.Presenter.PollEvents() {
			if ev == EventQuit || ev == EventExit {
				return false
			}
		}
		return true
	}

	for {
		switch r.Presenter.WaitEvent() {
		case EventQuit, EventExit:
			return false
		case EventRestart:
			return true
		}
	}
}
