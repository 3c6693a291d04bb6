package stats

import (
	"math"
	"testing"

	"github.com/san-kum/galaxia/internal/body"
)

// circularStore builds four stars on circular orbits at radius 1 plus one
// jet, so every aggregate has a closed-form expectation.
func circularStore() *body.Store {
	s := body.NewStore(5)
	positions := []body.Vec2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for _, pos := range positions {
		vel := pos.Perp().Scale(2.0) // tangential, speed 2
		s.Push(pos, vel, 1.0, body.Color{R: 1, G: 0.8, B: 0.5}, body.KindStar)
	}
	s.Push(body.Vec2{}, body.Vec2{Y: 2.5}, 0.1, body.Color{B: 1.5}, body.KindJet)
	return s
}

func TestSummarize(t *testing.T) {
	sum := Summarize(circularStore())

	if sum.Bodies != 5 || sum.Stars != 4 || sum.Jets != 1 {
		t.Fatalf("bad counts: %+v", sum)
	}
	if math.Abs(sum.MeanRadius-1.0) > 1e-12 {
		t.Errorf("mean radius = %f, want 1", sum.MeanRadius)
	}
	if math.Abs(sum.MaxRadius-1.0) > 1e-12 {
		t.Errorf("max radius = %f, want 1", sum.MaxRadius)
	}
	if math.Abs(sum.MeanSpeed-2.0) > 1e-12 {
		t.Errorf("mean speed = %f, want 2", sum.MeanSpeed)
	}
	if math.Abs(sum.MeanTangential-2.0) > 1e-12 {
		t.Errorf("mean tangential = %f, want 2", sum.MeanTangential)
	}
	if math.Abs(sum.MeanRadial) > 1e-12 {
		t.Errorf("mean radial = %f, want 0", sum.MeanRadial)
	}
}

func TestSummarizeEmptyStore(t *testing.T) {
	sum := Summarize(body.NewStore(0))
	if sum.Bodies != 0 || sum.MeanRadius != 0 || sum.MeanSpeed != 0 {
		t.Errorf("empty store should produce zero summary, got %+v", sum)
	}
}

func TestRadialHistogram(t *testing.T) {
	s := circularStore()
	h := RadialHistogram(s, 4, 2.0)

	// all four stars sit at radius 1, the start of the third bin; the jet
	// at the origin is skipped
	want := []float64{0, 0, 4, 0}
	for i := range h {
		if h[i] != want[i] {
			t.Fatalf("bin %d = %f, want %f", i, h[i], want[i])
		}
	}
}

func TestHistogramOverflowBin(t *testing.T) {
	s := body.NewStore(1)
	s.Push(body.Vec2{X: 50}, body.Vec2{X: 10}, 1.0, body.Color{}, body.KindStar)

	h := RadialHistogram(s, 4, 2.0)
	if h[3] != 1 {
		t.Errorf("out-of-range radius should land in the last bin, got %v", h)
	}

	h = SpeedHistogram(s, 4, 2.0)
	if h[3] != 1 {
		t.Errorf("out-of-range speed should land in the last bin, got %v", h)
	}
}

func TestDistance(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	if d := Distance(a, a); d != 0 {
		t.Errorf("self distance = %f, want 0", d)
	}

	// distance compares shapes, not totals
	scaled := []float64{2, 4, 6, 8}
	if d := Distance(a, scaled); d > 1e-12 {
		t.Errorf("scaled histogram distance = %f, want 0", d)
	}

	b := []float64{4, 3, 2, 1}
	if d := Distance(a, b); d <= 0 {
		t.Errorf("distinct shapes should have positive distance, got %f", d)
	}

	if d := Distance(a, []float64{0, 0, 0, 0}); !math.IsInf(d, 1) {
		t.Errorf("empty histogram distance = %f, want +Inf", d)
	}
}
