// Package stats computes population-level statistics of a body store:
// summary scalars for the CLI and histograms for the terminal plots and
// the reset-idempotence checks.
package stats

import (
	"math"

	"github.com/san-kum/galaxia/internal/body"
)

// Summary holds scalar statistics over the gravitational (star) bodies.
// Jets are counted but excluded from the kinematic aggregates.
type Summary struct {
	Bodies int `json:"bodies"`
	Stars  int `json:"stars"`
	Jets   int `json:"jets"`

	MeanRadius     float64 `json:"mean_radius"`
	MaxRadius      float64 `json:"max_radius"`
	MeanSpeed      float64 `json:"mean_speed"`
	MeanTangential float64 `json:"mean_tangential"`
	MeanRadial     float64 `json:"mean_radial"`
}

// Summarize walks the store once.
func Summarize(s *body.Store) Summary {
	var sum Summary
	sum.Bodies = s.Len()

	for i := 0; i < s.Len(); i++ {
		if s.Kind[i] == body.KindJet {
			sum.Jets++
			continue
		}
		sum.Stars++

		pos := s.Centroid(i)
		r := pos.Len()
		v := s.Vel[i]

		sum.MeanRadius += r
		if r > sum.MaxRadius {
			sum.MaxRadius = r
		}
		sum.MeanSpeed += v.Len()

		if r > 1e-9 {
			rhat := pos.Scale(1 / r)
			sum.MeanTangential += v.Dot(rhat.Perp())
			sum.MeanRadial += v.Dot(rhat)
		}
	}

	if sum.Stars > 0 {
		n := float64(sum.Stars)
		sum.MeanRadius /= n
		sum.MeanSpeed /= n
		sum.MeanTangential /= n
		sum.MeanRadial /= n
	}
	return sum
}

// RadialHistogram bins star radii into bins equal-width buckets over
// [0, max); radii at or beyond max land in the last bucket.
func RadialHistogram(s *body.Store, bins int, max float64) []float64 {
	h := make([]float64, bins)
	for i := 0; i < s.Len(); i++ {
		if s.Kind[i] == body.KindJet {
			continue
		}
		b := int(s.Centroid(i).Len() / max * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		h[b]++
	}
	return h
}

// SpeedHistogram bins star speed magnitudes the same way.
func SpeedHistogram(s *body.Store, bins int, max float64) []float64 {
	h := make([]float64, bins)
	for i := 0; i < s.Len(); i++ {
		if s.Kind[i] == body.KindJet {
			continue
		}
		b := int(s.Vel[i].Len() / max * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		h[b]++
	}
	return h
}

// Distance is the L2 distance between two equal-length histograms,
// normalized by total mass. Used to compare distributions across resets.
func Distance(a, b []float64) float64 {
	var ta, tb, d float64
	for i := range a {
		ta += a[i]
		tb += b[i]
	}
	if ta == 0 || tb == 0 {
		return math.Inf(1)
	}
	for i := range a {
		diff := a[i]/ta - b[i]/tb
		d += diff * diff
	}
	return math.Sqrt(d)
}
