package ai

import (
	"math"
	"testing"

	"neon-snake/game"
	"neon-snake/game/types"
)

func TestStateIndexIsUnique(t *testing.T) {
	seen := make(map[int]State)
	for fx := -1; fx <= 1; fx++ {
		for fy := -1; fy <= 1; fy++ {
			for bits := 0; bits < 16; bits++ {
				s := State{FoodDir: [2]int{fx, fy}}
				for i := 0; i < 4; i++ {
					s.Danger[i] = bits&(1<<i) != 0
				}
				idx := s.Index()
				if idx < 0 || idx >= NumStates {
					t.Fatalf("Index %d out of range for %+v", idx, s)
				}
				if prev, dup := seen[idx]; dup {
					t.Fatalf("Index %d shared by %+v and %+v", idx, prev, s)
				}
				seen[idx] = s
			}
		}
	}
	if len(seen) != NumStates {
		t.Errorf("Expected %d states, got %d", NumStates, len(seen))
	}
}

func TestSense(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	cfg.StartHead = types.Cell{X: 0, Y: 40}
	cfg.StartDir = types.Down
	s := game.NewSession(cfg)

	st := Sense(s)

	wantDanger := [4]bool{true, false, true, false} // up: body, down: free, left: wall, right: free
	if st.Danger != wantDanger {
		t.Errorf("Expected danger %v, got %v", wantDanger, st.Danger)
	}

	food := s.Food()
	if st.FoodDir[0] != sign(food.X-0) || st.FoodDir[1] != sign(food.Y-40) {
		t.Errorf("Food direction %v does not point at %v", st.FoodDir, food)
	}
	if want := (food.X + abs(food.Y-40)) / 20; st.FoodDistance != want {
		t.Errorf("Expected distance %d, got %d", want, st.FoodDistance)
	}
}

func TestUpdateRewards(t *testing.T) {
	near := State{FoodDir: [2]int{1, 0}, FoodDistance: 3}
	nearer := State{FoodDir: [2]int{1, 0}, FoodDistance: 2}
	farther := State{FoodDir: [2]int{1, 0}, FoodDistance: 4}

	tests := []struct {
		name   string
		next   State
		ate    bool
		died   bool
		reward float64
		wantQ  float64
	}{
		{"food", nearer, true, false, rewardFood, 0.1},
		{"death", nearer, false, true, rewardDeath, -0.1},
		{"closer", nearer, false, false, rewardCloser, 0.05},
		{"farther", farther, false, false, rewardFarther, -0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQLearning(1)
			r := q.Update(near, types.Right, tt.next, tt.ate, tt.died)
			if r != tt.reward {
				t.Errorf("Expected reward %v, got %v", tt.reward, r)
			}
			if got := q.Value(near, types.Right); math.Abs(got-tt.wantQ) > 1e-9 {
				t.Errorf("Expected Q %v, got %v", tt.wantQ, got)
			}
			if q.Value(near, types.Left) != 0 {
				t.Error("Expected other actions untouched")
			}
		})
	}
}

func TestUpdateBootstrapsFromNextState(t *testing.T) {
	q := NewQLearning(1)
	s := State{FoodDistance: 5}
	next := State{FoodDistance: 5, FoodDir: [2]int{0, 1}}
	q.setValue(next, types.Down, 1.0)

	q.Update(s, types.Up, next, false, false)

	// 0 + 0.1 * (0 + 0.9*1 - 0)
	if got := q.Value(s, types.Up); math.Abs(got-0.09) > 1e-9 {
		t.Errorf("Expected Q 0.09, got %v", got)
	}
}

func TestBestActionPrefersSafeOnTie(t *testing.T) {
	q := NewQLearning(1)
	s := State{Danger: [4]bool{true, true, false, false}}

	if got := q.BestAction(s); got != types.Left {
		t.Errorf("Expected first safe action LEFT on tie, got %s", got)
	}

	q.setValue(s, types.Right, 0.5)
	if got := q.BestAction(s); got != types.Right {
		t.Errorf("Expected RIGHT with highest value, got %s", got)
	}
}

func TestGreedyActionWithoutExploration(t *testing.T) {
	q := NewQLearning(1)
	q.Epsilon = 0
	s := State{}
	q.setValue(s, types.Down, 2)

	for i := 0; i < 20; i++ {
		if got := q.GetAction(s); got != types.Down {
			t.Fatalf("Expected DOWN, got %s", got)
		}
	}
}

type nullPresenter struct{}

func (nullPresenter) PollEvents() []game.Event { return nil }
func (nullPresenter) Render(game.Frame) {}
func (nullPresenter) RenderGameOver(game.GameOverScreen) {}
func (nullPresenter) WaitEvent() game.Event { return game.EventQuit }
func (nullPresenter) TickDelay(int) {}

func TestPilotDrivesRunner(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 2024
	cfg.MaxSessions = 5
	cfg.AutoRestartMs = 0
	cfg.Grid = types.Grid{Width: 200, Height: 200, CellSize: 20}
	cfg.StartHead = types.Cell{X: 100, Y: 100}

	pilot := NewQLearning(3)
	r := game.NewRunner(nullPresenter{}, cfg)
	r.Pilot = pilot

	if n := r.Run(); n != 5 {
		t.Fatalf("Expected 5 sessions, got %d", n)
	}
	if pilot.GamesPlayed != 5 {
		t.Errorf("Expected 5 games played, got %d", pilot.GamesPlayed)
	}
	if pilot.TotalReward == 0 {
		t.Error("Expected the pilot to have collected rewards")
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	if q := NewQLearning(7); q.Seed != 7 {
		t.Errorf("Expected explicit seed 7, got %d", q.Seed)
	}
	if q := NewQLearning(0); q.Seed == 0 {
		t.Error("Expected seed 0 to be replaced by a clock seed")
	}
}
