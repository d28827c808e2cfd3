package sim

import (
	"cmp"

	"github.com/meghashyamc/vect2d/geometry"
	"github.com/meghashyamc/vect2d/logger"
)

const defaultMaxParticles = 256

// Bounds is an axis aligned box in world units.
type Bounds struct {
	Min geometry.Vector2D
	Max geometry.Vector2D
}

func (b Bounds) Contains(p geometry.Vector2D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

type Particle struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

// World is a fixed-step particle box. It is not safe for concurrent use.
type World struct {
	bounds       Bounds
	gravity      geometry.Vector2D
	restitution  float64
	maxParticles int
	particles    []Particle
	logger       logger.Logger
}

type Option func(*World)

// WithRestitution sets the fraction of normal speed kept after hitting a wall.
func WithRestitution(e float64) Option {
	return func(w *World) {
		w.restitution = e
	}
}

func WithMaxParticles(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.maxParticles = n
		}
	}
}

func NewWorld(bounds Bounds, gravity geometry.Vector2D, log logger.Logger, opts ...Option) *World {
	w := &World{
		bounds:       bounds,
		gravity:      gravity,
		restitution:  1,
		maxParticles: defaultMaxParticles,
		particles:    make([]Particle, 0, 16),
		logger:       log,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.logger.Debug("world created", "min", bounds.Min, "max", bounds.Max, "gravity", gravity, "restitution", w.restitution)
	return w
}

// Spawn adds a particle. When the world is full the oldest particle is dropped.
func (w *World) Spawn(position, velocity geometry.Vector2D) {
	if len(w.particles) >= w.maxParticles {
		w.logger.Debug("particle limit reached, dropping oldest", "limit", w.maxParticles)
		w.particles = w.particles[1:]
	}
	w.particles = append(w.particles, Particle{Position: position, Velocity: velocity})
}

// Step advances the world by dt seconds. Non-positive dt is ignored.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for i := range w.particles {
		p := &w.particles[i]
		p.Velocity.AddInPlace(w.gravity.Scale(dt))
		p.Position.AddInPlace(p.Velocity.Scale(dt))
		w.collide(p)
	}
}

func (w *World) collide(p *Particle) {
	walls := []struct {
		hit    bool
		normal geometry.Vector2D
	}{
		{p.Position.X < w.bounds.Min.X, geometry.New(1, 0)},
		{p.Position.X > w.bounds.Max.X, geometry.New(-1, 0)},
		{p.Position.Y < w.bounds.Min.Y, geometry.New(0, 1)},
		{p.Position.Y > w.bounds.Max.Y, geometry.New(0, -1)},
	}

	for _, wall := range walls {
		if !wall.hit {
			continue
		}
		if p.Velocity.Dot(wall.normal) < 0 {
			p.Velocity = p.Velocity.Reflect(wall.normal)
			// keep only the restitution share of the bounce
			normalPart := p.Velocity.ProjectOnto(wall.normal)
			p.Velocity.SubInPlace(normalPart.Scale(1 - w.restitution))
		}
	}

	p.Position.Set(
		clampValue(p.Position.X, w.bounds.Min.X, w.bounds.Max.X),
		clampValue(p.Position.Y, w.bounds.Min.Y, w.bounds.Max.Y),
	)
}

func (w *World) Particles() []Particle {
	out := make([]Particle, len(w.particles))
	copy(out, w.particles)
	return out
}

func (w *World) Len() int {
	return len(w.particles)
}

func (w *World) Bounds() Bounds {
	return w.bounds
}

func (w *World) Clear() {
	w.particles = w.particles[:0]
}

// Energy is the total kinetic energy, taking every particle to have unit mass.
func (w *World) Energy() float64 {
	total := 0.0
	for _, p := range w.particles {
		total += 0.5 * p.Velocity.MagnitudeSquared()
	}
	return total
}

// Centroid is the mean particle position, or the zero vector for an empty world.
func (w *World) Centroid() geometry.Vector2D {
	var sum geometry.Vector2D
	if len(w.particles) == 0 {
		return sum
	}
	for _, p := range w.particles {
		sum.AddInPlace(p.Position)
	}
	return *sum.DivInPlace(float64(len(w.particles)))
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}
