package galaxy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/galaxia/internal/body"
)

const (
	// BulgeSeedCount bodies form the warm visual bulge every morphology
	// shares. Not physically load-bearing.
	BulgeSeedCount = 300

	// JetCount bodies stream vertically out of the core.
	JetCount = 20000

	// JetSpeed is the vertical launch speed, either sense.
	JetSpeed = 2.5
)

// ErrInvalidStarCount rejects a non-positive star budget before any
// buffer is allocated.
var ErrInvalidStarCount = errors.New("galaxy: star count must be positive")

// jetColor carries blue above 1.2, the legacy jet tag. Dispatch is on
// body.Kind; the channel value is kept for the renderer's benefit.
var jetColor = body.Color{R: 0.45, G: 0.75, B: 1.55}

var bulgeColor = body.Color{R: 1.00, G: 0.80, B: 0.50}

// Generate builds a complete body store for the morphology: starCount
// recipe bodies plus the bulge-seed and jet populations. Pure arithmetic
// over rng draws; the only failure is a precondition violation.
func Generate(m Morphology, starCount int, rng *rand.Rand) (*body.Store, error) {
	if starCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStarCount, starCount)
	}
	build, ok := recipes[m]
	if !ok {
		return nil, fmt.Errorf("galaxy: unknown morphology %d", int(m))
	}

	pop := build(rng, starCount)

	s := body.NewStore(pop.Len() + BulgeSeedCount + JetCount)
	for i := 0; i < pop.Len(); i++ {
		s.Push(pop.Pos[i], pop.Vel[i], pop.Mass[i], pop.Col[i], body.KindStar)
	}
	appendBulgeSeed(s, rng)
	appendJets(s, rng)
	return s, nil
}

// appendBulgeSeed adds the small-radius, near-static warm core bodies.
func appendBulgeSeed(s *body.Store, rng *rand.Rand) {
	for i := 0; i < BulgeSeedCount; i++ {
		r := 0.08 * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(r, orbitalSoft)*0.2)
		s.Push(pos, vel, starMass(rng), bulgeColor, body.KindStar)
	}
}

// appendJets adds the ballistic jet population: near-zero radius, purely
// vertical velocity, half up and half down.
func appendJets(s *body.Store, rng *rand.Rand) {
	for i := 0; i < JetCount; i++ {
		pos := body.Vec2{
			X: rng.NormFloat64() * 0.01,
			Y: rng.NormFloat64() * 0.01,
		}
		vy := JetSpeed
		if rng.Float64() < 0.5 {
			vy = -JetSpeed
		}
		s.Push(pos, body.Vec2{Y: vy}, 1.0, jetColor, body.KindJet)
	}
}
