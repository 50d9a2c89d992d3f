package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"neon-snake/game/entity"
	"neon-snake/game/manager"
	"neon-snake/game/types"
)

type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GAME_OVER"
	}
	return "RUNNING"
}

// TickResult describes what happened during one Tick
type TickResult struct {
	Grew      bool
	LevelUp   bool
	Collision manager.CollisionType
	State     State
}

// Summary is the record of a finished session
type Summary struct {
	ID        uuid.UUID
	Score     int
	Level     int
	Ticks     int
	Collision manager.CollisionType
	StartTime time.Time
	EndTime   time.Time
}

// Session is one game from the first tick to the collision that ends it
type Session struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time

	cfg       Config
	grid      types.Grid
	rng       *rand.Rand
	snake     *entity.Snake
	direction types.Direction
	pending   types.Direction
	state     State
	ticks     int
	collision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	particleMgr  *manager.ParticleManager
	stateMgr     *manager.StateManager
}

func NewSession(cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	snake := entity.NewSnake(cfg.StartHead, cfg.StartDir, cfg.StartLength, cfg.Grid.CellSize)
	collisionMgr := manager.NewCollisionManager(cfg.Grid)

	return &Session{
		ID:           uuid.New(),
		StartTime:    time.Now(),
		cfg:          cfg,
		grid:         cfg.Grid,
		rng:          rng,
		snake:        snake,
		direction:    cfg.StartDir,
		pending:      cfg.StartDir,
		state:        Running,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, collisionMgr, cfg.SafeFood, snake),
		particleMgr:  manager.NewParticleManager(cfg.Grid, rng),
		stateMgr:     manager.NewStateManager(cfg.BaseSpeed, cfg.SpeedStep),
	}
}

// Steer queues a direction change for the next tick. The latest call wins;
// a reversal of the current direction is ignored.
func (s *Session) Steer(dir types.Direction) {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return
	}
	s.pending = dir
}

// Tick runs one simulation step. After GameOver it is a no-op.
func (s *Session) Tick() TickResult {
	if s.state == GameOver {
		return TickResult{Collision: s.collision, State: GameOver}
	}
	s.ticks++

	if s.pending != s.direction.Opposite() {
		s.direction = s.pending
	}

	newHead := s.snake.PeekNextHead(s.direction)

	var res TickResult
	res.Grew = s.foodMgr.IsEaten(newHead)
	if res.Grew {
		food := s.foodMgr.Food()
		res.LevelUp = s.stateMgr.RecordFood()
		s.particleMgr.SpawnBurst(food, s.cfg.BurstSize)
	}

	s.snake.Advance(newHead, res.Grew)
	if res.Grew {
		// after Advance, so safe food also avoids the new head
		s.foodMgr.Relocate(s.snake)
	}

	if c := s.collisionMgr.CheckCollision(newHead, s.snake); c != manager.NoCollision {
		s.state = GameOver
		s.collision = c
		s.EndTime = time.Now()
		res.Collision = c
		res.State = GameOver
		return res
	}

	s.particleMgr.AdvanceAll()
	res.State = Running
	return res
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Score() int {
	return s.stateMgr.Score()
}

func (s *Session) Level() int {
	return s.stateMgr.Level()
}

// Speed is the current tick rate in ticks per second
func (s *Session) Speed() int {
	return s.stateMgr.Speed()
}

func (s *Session) Ticks() int {
	return s.ticks
}

func (s *Session) Direction() types.Direction {
	return s.direction
}

func (s *Session) Grid() types.Grid {
	return s.grid
}

func (s *Session) Food() types.Cell {
	return s.foodMgr.Food()
}

// Snake exposes the snake for read-only inspection
func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Particles() []entity.Particle {
	return s.particleMgr.Particles()
}

func (s *Session) Collision() manager.CollisionType {
	return s.collision
}

func (s *Session) Summary() Summary {
	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return Summary{
		ID:        s.ID,
		Score:     s.Score(),
		Level:     s.Level(),
		Ticks:     s.ticks,
		Collision: s.collision,
		StartTime: s.StartTime,
		EndTime:   end,
	}
}
