package manager

import (
	"golang.org/x/exp/rand"

	"neon-snake/game/entity"
	"neon-snake/game/types"
)

// BurstSize is the number of particles thrown out per eaten food
const BurstSize = 20

type ParticleManager struct {
	grid      types.Grid
	rng       *rand.Rand
	particles []entity.Particle
}

func NewParticleManager(grid types.Grid, rng *rand.Rand) *ParticleManager {
	return &ParticleManager{
		grid:      grid,
		rng:       rng,
		particles: make([]entity.Particle, 0, BurstSize),
	}
}

// SpawnBurst appends count particles centred on origin
func (pm *ParticleManager) SpawnBurst(origin types.Cell, count int) {
	for i := 0; i < count; i++ {
		pm.particles = append(pm.particles, entity.NewParticle(pm.grid, origin, pm.rng))
	}
}

// AdvanceAll moves every particle and drops the expired ones.
// Removal swaps with the last element, so order is not preserved.
func (pm *ParticleManager) AdvanceAll() {
	for i := 0; i < len(pm.particles); {
		pm.particles[i].Move()
		if pm.particles[i].Alive() {
			i++
			continue
		}
		last := len(pm.particles) - 1
		pm.particles[i] = pm.particles[last]
		pm.particles = pm.particles[:last]
	}
}

func (pm *ParticleManager) Len() int {
	return len(pm.particles)
}

// Particles returns a snapshot of the live particles
func (pm *ParticleManager) Particles() []entity.Particle {
	out := make([]entity.Particle, len(pm.particles))
	copy(out, pm.particles)
	return out
}
