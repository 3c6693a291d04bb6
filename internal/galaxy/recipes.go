package galaxy

import (
	"math"
	"math/rand"

	"github.com/san-kum/galaxia/internal/body"
)

// Each recipe places n bodies by sampling a radius and angle from a
// distribution characteristic of the morphology, then aims the initial
// velocity at the local circular speed so the kernel starts near its
// steady state.

var recipes = map[Morphology]func(*rand.Rand, int) *Population{
	Spiral:       buildSpiral,
	Barred:       buildBarred,
	Elliptical:   buildElliptical,
	Lenticular:   buildLenticular,
	Ring:         buildRing,
	Dwarf:        buildDwarf,
	Merger:       buildMerger,
	Fractal:      buildFractal,
	PolarRing:    buildPolarRing,
	LensedVortex: buildLensedVortex,
	Butterfly:    buildButterfly,
	Arc:          buildArc,
	Irregular:    buildIrregular,
}

func buildSpiral(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	arms := 2 + rng.Intn(2)
	for i := 0; i < n; i++ {
		r := 0.12 + 1.0*math.Pow(rng.Float64(), 0.65)
		arm := rng.Intn(arms)
		theta := math.Log(r+0.3)/0.28 +
			float64(arm)*2*math.Pi/float64(arms) +
			rng.NormFloat64()*0.14
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(r, orbitalSoft))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildBarred(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	barLen := 0.35
	for i := 0; i < n; i++ {
		var pos body.Vec2
		if rng.Float64() < 0.30 {
			// bar population: thin box through the center
			pos = body.Vec2{
				X: (rng.Float64()*2 - 1) * barLen,
				Y: rng.NormFloat64() * 0.05,
			}
		} else {
			// arms peel off the bar ends
			r := barLen + 0.8*math.Pow(rng.Float64(), 0.7)
			side := float64(1 - 2*rng.Intn(2))
			theta := side*(math.Pi/2) + (r-barLen)*2.6 + rng.NormFloat64()*0.12
			pos = body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		}
		r := pos.Len()
		vel := tangential(pos, circularSpeed(r, orbitalSoft))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildElliptical(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		r := 0.05 + 1.0*math.Pow(rng.Float64(), 1.8)
		theta := rng.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta) * 0.65}
		// pressure-supported: mostly random orientation, mild net rotation
		speed := circularSpeed(pos.Len(), orbitalSoft)
		ang := rng.Float64() * 2 * math.Pi
		vel := body.Vec2{X: math.Cos(ang), Y: math.Sin(ang)}.Scale(speed * 0.6)
		vel = vel.Add(tangential(pos, speed*0.4))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildLenticular(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		// smooth exponential disk, no arm structure
		r := math.Min(-0.40*math.Log(1-rng.Float64()), 1.25)
		theta := rng.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(r, orbitalSoft))
		pop.push(pos, vel, starMass(rng), warmYellow)
	}
	return pop
}

func buildRing(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		r := 0.7 + 0.2*rng.Float64()
		theta := rng.Float64() * 2 * math.Pi
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		// slightly super-circular so the ring breathes outward at first
		vel := tangential(pos, circularSpeed(r, 0)*1.1)
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildDwarf(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	clumps := 3 + rng.Intn(4)
	centers := make([]body.Vec2, clumps)
	for c := range centers {
		r := 0.5 * rng.Float64()
		theta := rng.Float64() * 2 * math.Pi
		centers[c] = body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	for i := 0; i < n; i++ {
		c := centers[rng.Intn(clumps)]
		pos := c.Add(body.Vec2{X: rng.NormFloat64() * 0.08, Y: rng.NormFloat64() * 0.08})
		vel := tangential(pos, circularSpeed(pos.Len(), orbitalSoft)*0.7)
		vel = vel.Add(body.Vec2{X: rng.NormFloat64(), Y: rng.NormFloat64()}.Scale(0.15))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildMerger(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	offset := body.Vec2{X: 0.45, Y: 0.1}
	for i := 0; i < n; i++ {
		u := rng.Float64()
		if u < 0.90 {
			center := offset
			if u >= 0.45 {
				center = offset.Scale(-1)
			}
			r := 0.05 + 0.35*math.Pow(rng.Float64(), 0.8)
			theta := rng.Float64() * 2 * math.Pi
			local := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
			pos := center.Add(local)
			// orbit the local core, drifting with the pair's rotation
			vel := tangential(local, circularSpeed(r, orbitalSoft)*0.8)
			vel = vel.Add(tangential(center, circularSpeed(center.Len(), orbitalSoft)*0.5))
			pop.push(pos, vel, starMass(rng), paletteColor(rng))
		} else {
			// tidal tails strung between and beyond the pair
			t := rng.Float64()*2 - 1
			pos := offset.Scale(t * 1.8)
			pos = pos.Add(body.Vec2{X: rng.NormFloat64() * 0.06, Y: rng.NormFloat64() * 0.06})
			vel := tangential(pos, circularSpeed(pos.Len(), orbitalSoft)*0.6)
			pop.push(pos, vel, starMass(rng), coolBlue)
		}
	}
	return pop
}

func buildFractal(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		// three nested displacement levels with shrinking scales
		pos := body.Vec2{}
		scale := 0.6
		for level := 0; level < 3; level++ {
			theta := rng.Float64() * 2 * math.Pi
			r := scale * math.Pow(rng.Float64(), 0.5)
			pos = pos.Add(body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
			scale *= 0.35
		}
		vel := tangential(pos, circularSpeed(pos.Len(), orbitalSoft)*0.85)
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildPolarRing(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.6 {
			// host disk
			r := 0.08 + 0.45*math.Pow(rng.Float64(), 0.8)
			theta := rng.Float64() * 2 * math.Pi
			pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
			pop.push(pos, tangential(pos, circularSpeed(r, orbitalSoft)), starMass(rng), warmYellow)
		} else {
			// near-edge-on outer ring crossing the disk plane
			r := 0.75 + 0.2*rng.Float64()
			theta := rng.Float64() * 2 * math.Pi
			pos := body.Vec2{X: r * math.Cos(theta) * 0.22, Y: r * math.Sin(theta)}
			pop.push(pos, tangential(pos, circularSpeed(pos.Len(), orbitalSoft)), starMass(rng), coolBlue)
		}
	}
	return pop
}

func buildLensedVortex(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		// tightly wound shear spiral
		r := 0.1 + 1.0*rng.Float64()
		theta := rng.Float64()*0.5 + r*4.5 + rng.NormFloat64()*0.05
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(r, orbitalSoft))
		pop.push(pos, vel, starMass(rng), body.Color{R: 0.55, G: 0.80, B: 1.10})
	}
	return pop
}

func buildButterfly(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		// two mirrored lobes above and below the plane
		lobe := float64(1 - 2*rng.Intn(2))
		theta := lobe*(math.Pi/2) + rng.NormFloat64()*0.45
		r := math.Abs(rng.NormFloat64())*0.35 + 0.15
		pos := body.Vec2{X: r * math.Cos(theta) * 1.3, Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(pos.Len(), orbitalSoft)*0.8)
		pop.push(pos, vel, starMass(rng), body.Color{R: 0.85, G: 0.55, B: 1.05})
	}
	return pop
}

func buildArc(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		// partial annulus
		theta := 0.3 + rng.Float64()*(math.Pi-0.6)
		r := 0.55 + 0.2*rng.Float64()
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		vel := tangential(pos, circularSpeed(r, orbitalSoft))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}

func buildIrregular(rng *rand.Rand, n int) *Population {
	pop := newPopulation(n)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		r := 0.9 * math.Pow(rng.Float64(), 0.6)
		pos := body.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		pos = pos.Add(body.Vec2{X: rng.NormFloat64() * 0.1, Y: rng.NormFloat64() * 0.1})
		vel := tangential(pos, circularSpeed(pos.Len(), orbitalSoft)*0.5)
		vel = vel.Add(body.Vec2{X: rng.NormFloat64(), Y: rng.NormFloat64()}.Scale(0.2))
		pop.push(pos, vel, starMass(rng), paletteColor(rng))
	}
	return pop
}
