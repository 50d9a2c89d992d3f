package manager

// Scoring rules
const (
	PointsPerLevel   = 5
	DefaultBaseSpeed = 10 // ticks per second at level 1
	DefaultSpeedStep = 2  // ticks per second added per level
)

// StateManager tracks score, level and speed for one session
type StateManager struct {
	score     int
	level     int
	speed     int
	speedStep int
}

func NewStateManager(baseSpeed, speedStep int) *StateManager {
	return &StateManager{
		score:     0,
		level:     1,
		speed:     baseSpeed,
		speedStep: speedStep,
	}
}

// RecordFood adds a point and reports whether a new level was reached
func (sm *StateManager) RecordFood() bool {
	sm.score++
	if sm.score%PointsPerLevel != 0 {
		return false
	}
	sm.level = sm.score/PointsPerLevel + 1
	sm.speed += sm.speedStep
	return true
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Level() int {
	return sm.level
}

// Speed is the current tick rate in ticks per second
func (sm *StateManager) Speed() int {
	return sm.speed
}
