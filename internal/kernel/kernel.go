package kernel

import (
	"math"

	"github.com/san-kum/galaxia/internal/body"
	"github.com/san-kum/galaxia/internal/compute"
)

// Kernel evaluates the per-body, per-frame update. It is a map over body
// indices: every index reads its own state, the shared dt, and the
// read-only frame-start centroid snapshot, and writes only its own store
// slots and its own three output vertices. No locks, no ordering between
// indices.
type Kernel struct {
	P Params
}

func New(p Params) *Kernel {
	return &Kernel{P: p}
}

// Step advances every body by dt through the given backend and fills out
// with 3*N vertices. snap must be the centroid snapshot taken before the
// call; the clump force samples neighbor positions from it so concurrent
// workers never observe a half-updated frame.
func (k *Kernel) Step(s *body.Store, snap []body.Vec2, dt float64, out []body.Vertex, be compute.Backend) {
	n := s.Len()
	be.Dispatch(n, func(start, end int) {
		for id := start; id < end; id++ {
			k.StepBody(s, snap, id, dt, out)
		}
	})
}

// StepBody runs the full update sequence for one body. Exported so tests
// can drive single bodies through edge cases.
func (k *Kernel) StepBody(s *body.Store, snap []body.Vec2, id int, dt float64, out []body.Vertex) {
	p := &k.P

	// Jet branch: ballistic drift, respawn near the origin on escape.
	// Jets never see the force model and keep their color untouched.
	if s.Kind[id] == body.KindJet {
		s.Translate(id, s.Vel[id].Scale(dt))
		if s.Centroid(id).Len() > p.JetEscapeRadius {
			s.MoveTo(id, jetRespawn(id))
		}
		emit(s, id, s.Col[id], out)
		return
	}

	pos := s.Centroid(id)
	toCenter := pos.Scale(-1)
	dist := pos.Len()

	// Softened central attraction: Keplerian falloff far out, bounded at
	// the origin. The +CentralSoft in the denominator is load-bearing.
	acc := toCenter.Scale(p.CentralMass / math.Pow(dist*dist+p.CentralSoft, 1.5))

	// Halo term: magnitude approaches HaloStrength at large radius, which
	// is what flattens the outer rotation curve.
	acc = acc.Add(toCenter.Scale(p.HaloStrength / (dist + p.HaloCore)))

	// Local radial frame; that is the locally counter-clockwise tangent.
	rhat := body.Vec2{X: 1}
	if dist > 0 {
		rhat = pos.Scale(1 / dist)
	}
	that := rhat.Perp()

	v := s.Vel[id]
	vr := v.Dot(rhat)
	vt := v.Dot(that)

	ramp := clamp((dist-p.RampStart)/p.RampWidth, 0, 1)

	// Rotation-curve steering. The target keeps the sign of the body's
	// current orbital sense; the deadzone leaves small fluctuations alone.
	target := p.VFlat
	if vt < 0 {
		target = -p.VFlat
	}
	verr := target - vt
	switch {
	case verr > p.SteerDeadzone:
		verr -= p.SteerDeadzone
	case verr < -p.SteerDeadzone:
		verr += p.SteerDeadzone
	default:
		verr = 0
	}
	gain := lerp(p.SteerGainInner, p.SteerGainInner*p.SteerGainOuterScale, ramp)
	acc = acc.Add(that.Scale(clamp(verr*gain, -p.SteerMax, p.SteerMax)))

	// Radial damping: bleeds oscillation energy without freezing drift.
	acc = acc.Add(rhat.Scale(-vr * lerp(p.RadialDampInner, p.RadialDampOuter, ramp)))

	// Epicyclic spring toward this body's preferred radius.
	spring := lerp(p.EpicycleKInner, p.EpicycleKOuter, ramp)
	acc = acc.Add(rhat.Scale(-(dist - preferredRadius(id, p)) * spring))

	// Clumping: a handful of hashed neighbor samples against the
	// frame-start snapshot. Statistically noisy local self-gravity at
	// O(1) cost per body.
	n := s.Len()
	for sample := 0; sample < p.ClumpSamples; sample++ {
		j := neighborIndex(id, sample, n)
		if j == id {
			continue
		}
		d := snap[j].Sub(pos)
		sep := d.Len()
		if sep >= p.ClumpRadius {
			continue
		}
		w := 1 - sep/p.ClumpRadius
		acc = acc.Add(d.Scale(p.ClumpStrength * w / math.Pow(d.LenSq()+p.ClumpSoft, 1.5)))
	}

	// Semi-implicit Euler: velocity first, then position. The hashed
	// jitter keeps bodies from phase-locking into identical orbits.
	v = v.Add(acc.Scale(dt))
	v = v.Add(jitterDir(id, dist).Scale(p.JitterAmp * dt))
	s.Vel[id] = v
	s.Translate(id, v.Scale(dt))

	// Escape safety net: partial inelastic reflection of the radial
	// velocity plus a small inward nudge. Rare by construction.
	pos = s.Centroid(id)
	d := pos.Len()
	if d > p.EscapeRadius {
		rh := pos.Scale(1 / d)
		vrOut := s.Vel[id].Dot(rh)
		s.Vel[id] = s.Vel[id].Sub(rh.Scale(p.EscapeReflect*vrOut + p.EscapeNudge))
	}

	emit(s, id, s.Col[id].Scale(1/(d+p.GlowSoft)), out)
}

// emit writes body id's three vertices. Called exactly once per body per
// frame, after that body's physics is finalized.
func emit(s *body.Store, id int, col body.Color, out []body.Vertex) {
	r, g, b := float32(col.R), float32(col.G), float32(col.B)
	for c := 0; c < 3; c++ {
		pt := s.Tri[id*3+c]
		out[id*3+c] = body.Vertex{X: float32(pt.X), Y: float32(pt.Y), R: r, G: g, B: b}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
