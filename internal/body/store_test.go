package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerOffsetsSumToZero(t *testing.T) {
	var sum Vec2
	for _, off := range markerOffsets {
		sum = sum.Add(off)
	}
	assert.InDelta(t, 0, sum.X, 1e-12)
	assert.InDelta(t, 0, sum.Y, 1e-12)
}

func TestPushPlacesCentroidAtPosition(t *testing.T) {
	s := NewStore(4)
	pos := Vec2{X: 0.3, Y: -0.7}
	s.Push(pos, Vec2{X: 1}, 1.0, Color{R: 1}, KindStar)

	c := s.Centroid(0)
	assert.InDelta(t, pos.X, c.X, 1e-12)
	assert.InDelta(t, pos.Y, c.Y, 1e-12)
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Tri, 3)
}

func TestTranslateMovesAllCorners(t *testing.T) {
	s := NewStore(1)
	s.Push(Vec2{}, Vec2{}, 1.0, Color{}, KindStar)

	before := [3]Vec2{s.Tri[0], s.Tri[1], s.Tri[2]}
	d := Vec2{X: 0.1, Y: -0.2}
	s.Translate(0, d)

	for i := 0; i < 3; i++ {
		assert.Equal(t, before[i].Add(d), s.Tri[i])
	}
}

func TestMoveToPreservesShape(t *testing.T) {
	s := NewStore(1)
	s.Push(Vec2{X: 2, Y: 3}, Vec2{}, 1.0, Color{}, KindStar)

	offsets := [3]Vec2{}
	c := s.Centroid(0)
	for i := 0; i < 3; i++ {
		offsets[i] = s.Tri[i].Sub(c)
	}

	target := Vec2{X: -1.5, Y: 0.25}
	s.MoveTo(0, target)

	c = s.Centroid(0)
	assert.InDelta(t, target.X, c.X, 1e-12)
	assert.InDelta(t, target.Y, c.Y, 1e-12)
	for i := 0; i < 3; i++ {
		off := s.Tri[i].Sub(c)
		assert.InDelta(t, offsets[i].X, off.X, 1e-12)
		assert.InDelta(t, offsets[i].Y, off.Y, 1e-12)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewStore(1)
	s.Push(Vec2{X: 1}, Vec2{Y: 2}, 1.5, Color{R: 1}, KindJet)

	c := s.Clone()
	c.Translate(0, Vec2{X: 9})
	c.Vel[0] = Vec2{}

	assert.Equal(t, Vec2{Y: 2}, s.Vel[0])
	assert.InDelta(t, 1.0, s.Centroid(0).X, 1e-12)
	assert.Equal(t, KindJet, c.Kind[0])
}

func TestCentroidsSnapshot(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 3; i++ {
		s.Push(Vec2{X: float64(i)}, Vec2{}, 1.0, Color{}, KindStar)
	}

	snap := s.Centroids(nil)
	assert.Len(t, snap, 3)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(i), snap[i].X, 1e-12)
	}

	// snapshot is decoupled from later mutation
	s.Translate(1, Vec2{X: 100})
	assert.InDelta(t, 1.0, snap[1].X, 1e-12)

	// reuse without reallocation when capacity suffices
	again := s.Centroids(snap)
	assert.InDelta(t, 101.0, again[1].X, 1e-12)
}

func TestIsValid(t *testing.T) {
	s := NewStore(1)
	s.Push(Vec2{}, Vec2{}, 1.0, Color{}, KindStar)
	assert.True(t, s.IsValid())

	s.Vel[0].X = math.NaN()
	assert.False(t, s.IsValid())

	s.Vel[0].X = 0
	s.Tri[1].Y = math.Inf(1)
	assert.False(t, s.IsValid())
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	assert.Equal(t, Vec2{X: 0, Y: 1}, v.Perp(), "perp of +x is +y (counter-clockwise)")
	assert.InDelta(t, 0, v.Dot(v.Perp()), 1e-12)
}
