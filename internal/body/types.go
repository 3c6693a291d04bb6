package body

import "math"

// Vec2 is a 2-D vector in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LenSq() float64       { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Color is an RGB triple. Channels routinely exceed 1.0; the renderer
// blends additively and clamps on output.
type Color struct {
	R, G, B float64
}

func (c Color) Scale(f float64) Color { return Color{c.R * f, c.G * f, c.B * f} }

// Kind discriminates the two body variants. Assigned once at generation
// time and never changed afterwards.
type Kind uint8

const (
	// KindStar bodies follow the full gravitational force model.
	KindStar Kind = iota
	// KindJet bodies move ballistically and respawn near the origin.
	KindJet
)

// Vertex is one corner of a body's render triangle, in the layout the
// renderer consumes: position plus color, three per body per frame.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}
