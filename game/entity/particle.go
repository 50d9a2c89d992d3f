package entity

import (
	"math"

	"golang.org/x/exp/rand"

	"neon-snake/game/types"
)

// Particle tuning
const (
	MinParticleRadius = 2
	MaxParticleRadius = 4
	MinParticleLife   = 20
	MaxParticleLife   = 30
	MinParticleSpeed  = 1.0
	MaxParticleSpeed  = 3.0
	RadiusDecay       = 0.1
)

// Particle is a short-lived spark thrown out when food is eaten
type Particle struct {
	X, Y   float64
	Radius float64
	Life   int
	Angle  float64
	Speed  float64
}

// NewParticle places a particle at the centre of origin with a random heading
func NewParticle(grid types.Grid, origin types.Cell, rng *rand.Rand) Particle {
	x, y := grid.Center(origin)
	return Particle{
		X:      x,
		Y:      y,
		Radius: float64(MinParticleRadius + rng.Intn(MaxParticleRadius-MinParticleRadius+1)),
		Life:   MinParticleLife + rng.Intn(MaxParticleLife-MinParticleLife+1),
		Angle:  rng.Float64() * 2 * math.Pi,
		Speed:  MinParticleSpeed + rng.Float64()*(MaxParticleSpeed-MinParticleSpeed),
	}
}

// Move advances the particle by one tick
func (p *Particle) Move() {
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle) * p.Speed
	p.Life--
	p.Radius = math.Max(0, p.Radius-RadiusDecay)
}

func (p Particle) Alive() bool {
	return p.Life > 0
}
