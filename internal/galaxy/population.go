package galaxy

import (
	"math"
	"math/rand"

	"github.com/san-kum/galaxia/internal/body"
)

// Population is one recipe's self-contained output: parallel sequences of
// equal length. Recipes never share or reuse another recipe's buffers; the
// engine concatenates populations into the flat body store.
type Population struct {
	Pos  []body.Vec2
	Vel  []body.Vec2
	Mass []float64
	Col  []body.Color
}

func newPopulation(n int) *Population {
	return &Population{
		Pos:  make([]body.Vec2, 0, n),
		Vel:  make([]body.Vec2, 0, n),
		Mass: make([]float64, 0, n),
		Col:  make([]body.Color, 0, n),
	}
}

func (p *Population) push(pos, vel body.Vec2, mass float64, col body.Color) {
	p.Pos = append(p.Pos, pos)
	p.Vel = append(p.Vel, vel)
	p.Mass = append(p.Mass, mass)
	p.Col = append(p.Col, col)
}

func (p *Population) Len() int { return len(p.Pos) }

// OrbitalK is the shared central-mass constant the recipes aim their
// initial circular speeds at. It matches the kernel's CentralMass, so the
// initial condition is already close to the steady state.
const OrbitalK = 3.5

// orbitalSoft is the default softening recipes add under the square root.
const orbitalSoft = 0.02

// circularSpeed approximates the circular orbital speed at radius r with
// an explicit softening term.
func circularSpeed(r, eps float64) float64 {
	return math.Sqrt(OrbitalK / (r + eps))
}

// tangential returns a velocity of the given speed perpendicular to the
// radius vector at pos (counter-clockwise for positive speed).
func tangential(pos body.Vec2, speed float64) body.Vec2 {
	r := pos.Len()
	if r < 1e-9 {
		return body.Vec2{}
	}
	return pos.Perp().Scale(speed / r)
}

// Three-bucket star palette: cool blue / warm yellow / hot red at
// 45/45/10. Star colors keep blue below the jet threshold.
var (
	coolBlue   = body.Color{R: 0.50, G: 0.65, B: 1.00}
	warmYellow = body.Color{R: 1.00, G: 0.85, B: 0.55}
	hotRed     = body.Color{R: 1.00, G: 0.45, B: 0.30}
)

func paletteColor(rng *rand.Rand) body.Color {
	switch u := rng.Float64(); {
	case u < 0.45:
		return coolBlue
	case u < 0.90:
		return warmYellow
	default:
		return hotRed
	}
}

func starMass(rng *rand.Rand) float64 {
	return 0.5 + 1.5*rng.Float64()
}
