package galaxy

import "math/rand"

// Morphology selects one of the initial distribution recipes. It shapes
// only the starting positions, velocities and colors; the dynamics kernel
// is the same for every morphology.
type Morphology int

const (
	Spiral Morphology = iota
	Barred
	Elliptical
	Lenticular
	Ring
	Dwarf
	Merger
	Fractal
	PolarRing
	LensedVortex
	Butterfly
	Arc
	Irregular

	numMorphologies
)

var morphologyNames = [...]string{
	"spiral", "barred", "elliptical", "lenticular", "ring", "dwarf",
	"merger", "fractal", "polar_ring", "lensed_vortex", "butterfly",
	"arc", "irregular",
}

func (m Morphology) String() string {
	if m < 0 || int(m) >= len(morphologyNames) {
		return "unknown"
	}
	return morphologyNames[m]
}

// All returns every morphology in declaration order.
func All() []Morphology {
	out := make([]Morphology, numMorphologies)
	for i := range out {
		out[i] = Morphology(i)
	}
	return out
}

// ByName resolves a morphology name; ok is false for unknown names.
func ByName(name string) (Morphology, bool) {
	for i, n := range morphologyNames {
		if n == name {
			return Morphology(i), true
		}
	}
	return 0, false
}

// Random draws a morphology uniformly, the way a reset picks one.
func Random(rng *rand.Rand) Morphology {
	return Morphology(rng.Intn(int(numMorphologies)))
}
