package kernel

import (
	"math"

	"github.com/san-kum/galaxia/internal/body"
)

// The kernel carries no random state. Everything that needs to look random
// per body (preferred radius, neighbor picks, jitter direction, jet respawn
// points) is derived from integer hashes of the body index, so a frame is a
// pure function of the store and dt.

func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// unit maps a hash to [0, 1).
func unit(h uint32) float64 {
	return float64(h) / (float64(math.MaxUint32) + 1)
}

// preferredRadius returns body id's personal equilibrium radius in
// [PreferredRMin, PreferredRMax]. Fixed for the body's lifetime.
func preferredRadius(id int, p *Params) float64 {
	u := unit(hash32(uint32(id)*0x9e3779b9 + 0x85ebca6b))
	return p.PreferredRMin + u*(p.PreferredRMax-p.PreferredRMin)
}

// neighborIndex picks a pseudo-random body index for clump sample k of
// body id. Deterministic, no spatial index, O(1).
func neighborIndex(id, k, n int) int {
	h := hash32(uint32(id)*0x01000193 ^ uint32(k)*0x9e3779b9)
	return int(h % uint32(n))
}

// jitterDir derives a unit direction from the body index and its current
// distance, so the per-step jitter decorrelates orbits without any random
// state.
func jitterDir(id int, dist float64) body.Vec2 {
	h := hash32(uint32(id)*0x9e3779b9 ^ math.Float32bits(float32(dist)))
	ang := unit(h) * 2 * math.Pi
	return body.Vec2{X: math.Cos(ang), Y: math.Sin(ang)}
}

// jetRespawn returns the point near the origin where jet id reappears
// after escaping. Irrational multipliers spread respawn points without
// fresh randomness each frame.
func jetRespawn(id int) body.Vec2 {
	fx := math.Mod(float64(id)*0.6180339887498949, 1)  // 1/phi
	fy := math.Mod(float64(id)*0.41421356237309503, 1) // sqrt(2)-1
	return body.Vec2{X: (fx - 0.5) * 0.08, Y: (fy - 0.5) * 0.08}
}
