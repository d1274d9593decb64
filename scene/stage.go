package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	pulseCount   = 12
	particleTTL  = 4 * time.Second
	driftWobble  = 0.6
	baseVelocity = 6.0
)

// Particle is one stage element.
// The ID stays stable for the particle's lifetime so renderers can
// track elements across frames.
type Particle struct {
	ID     ulid.ULID
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Age    time.Duration
}

// Stage holds the scene content the controller mutates.
// It is single-threaded: all access happens on the app loop via the
// controller.
type Stage struct {
	width     float64
	height    float64
	particles []*Particle
	caption   string
	intensity float64
	drift     bool
	rng       *rand.Rand
}

// NewStage creates an empty stage with the given cell dimensions.
func NewStage(width, height int) *Stage {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Stage{
		width:     float64(width),
		height:    float64(height),
		intensity: 50,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Resize updates the stage dimensions.
func (s *Stage) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	s.width = float64(width)
	s.height = float64(height)
}

// Particles returns the live particles.
// The slice is owned by the stage; callers must not retain it.
func (s *Stage) Particles() []*Particle {
	return s.particles
}

// Caption returns the stage caption.
func (s *Stage) Caption() string {
	return s.caption
}

// SetCaption updates the stage caption.
func (s *Stage) SetCaption(caption string) {
	s.caption = caption
}

// Intensity returns the current speed scale.
func (s *Stage) Intensity() float64 {
	return s.intensity
}

// SetIntensity updates the speed scale.
func (s *Stage) SetIntensity(intensity float64) {
	s.intensity = intensity
}

// Drift reports whether ambient drift is on.
func (s *Stage) Drift() bool {
	return s.drift
}

// SetDrift toggles ambient drift.
func (s *Stage) SetDrift(on bool) {
	s.drift = on
}

// Pulse spawns a ring of particles from the stage center.
func (s *Stage) Pulse() {
	cx := s.width / 2
	cy := s.height / 2
	for i := 0; i < pulseCount; i++ {
		angle := 2 * math.Pi * float64(i) / pulseCount
		s.particles = append(s.particles, &Particle{
			ID:    ulid.Make(),
			X:     float64(cx),
			Y:     float64(cy),
			VX:    math.Cos(angle),
			VY:    math.Sin(angle) / 2, // cells are taller than wide
			Glyph: '*',
		})
	}
}

// Scatter randomizes the velocity of every live particle.
func (s *Stage) Scatter() {
	for _, p := range s.particles {
		angle := s.rng.Float64() * 2 * math.Pi
		p.VX = math.Cos(angle)
		p.VY = math.Sin(angle) / 2
		p.Glyph = '+'
	}
}

// Step advances the simulation by delta.
// Velocity scales with intensity; drift adds a slow wobble. Particles
// past their lifetime or outside the stage are removed.
func (s *Stage) Step(delta time.Duration) {
	if delta <= 0 {
		return
	}
	dt := delta.Seconds()
	speed := baseVelocity * (s.intensity / IntensityMax)

	live := s.particles[:0]
	for _, p := range s.particles {
		p.Age += delta
		if p.Age > particleTTL {
			continue
		}
		p.X += p.VX * speed * dt
		p.Y += p.VY * speed * dt
		if s.drift {
			phase := p.Age.Seconds() * 2
			p.X += math.Sin(phase) * driftWobble * dt
			p.Y += math.Cos(phase) * driftWobble * dt / 2
		}
		if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
			continue
		}
		live = append(live, p)
	}
	s.particles = live
}
