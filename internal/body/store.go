package body

// MarkerHalfWidth and MarkerHeight define the fixed triangle marker every
// body carries. The shape is rigid: the kernel only ever translates it.
const (
	MarkerHalfWidth = 0.004
	MarkerHeight    = 0.006
)

// markerOffsets are the three corner offsets relative to a body's centroid.
// They sum to zero so the centroid is exactly the mean of the corners.
var markerOffsets = [3]Vec2{
	{0, MarkerHeight * 2.0 / 3.0},
	{-MarkerHalfWidth, -MarkerHeight / 3.0},
	{MarkerHalfWidth, -MarkerHeight / 3.0},
}

// Store holds every simulated body in column-oriented flat slices.
// Tri has three entries per body; Vel, Mass, Col and Kind have one.
// Bodies are created in bulk by a generator and mutated in place by the
// kernel; the only way to add or remove bodies is a full reset.
type Store struct {
	Tri  []Vec2
	Vel  []Vec2
	Mass []float64
	Col  []Color
	Kind []Kind
}

// NewStore allocates a store with capacity for n bodies.
func NewStore(n int) *Store {
	return &Store{
		Tri:  make([]Vec2, 0, n*3),
		Vel:  make([]Vec2, 0, n),
		Mass: make([]float64, 0, n),
		Col:  make([]Color, 0, n),
		Kind: make([]Kind, 0, n),
	}
}

// Len returns the number of bodies.
func (s *Store) Len() int { return len(s.Vel) }

// Push appends one body with its marker triangle centered at pos.
func (s *Store) Push(pos, vel Vec2, mass float64, col Color, kind Kind) {
	for _, off := range markerOffsets {
		s.Tri = append(s.Tri, pos.Add(off))
	}
	s.Vel = append(s.Vel, vel)
	s.Mass = append(s.Mass, mass)
	s.Col = append(s.Col, col)
	s.Kind = append(s.Kind, kind)
}

// Centroid returns the mean of body i's three triangle corners.
func (s *Store) Centroid(i int) Vec2 {
	a, b, c := s.Tri[i*3], s.Tri[i*3+1], s.Tri[i*3+2]
	return Vec2{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// Translate moves all three corners of body i by d.
func (s *Store) Translate(i int, d Vec2) {
	s.Tri[i*3] = s.Tri[i*3].Add(d)
	s.Tri[i*3+1] = s.Tri[i*3+1].Add(d)
	s.Tri[i*3+2] = s.Tri[i*3+2].Add(d)
}

// MoveTo places body i's triangle so its centroid lands on pos, keeping
// the corner offsets intact.
func (s *Store) MoveTo(i int, pos Vec2) {
	s.Translate(i, pos.Sub(s.Centroid(i)))
}

// Centroids writes every body's centroid into dst, growing it if needed,
// and returns the slice. The engine uses this as the frame-start snapshot
// the kernel's neighbor sampling reads against.
func (s *Store) Centroids(dst []Vec2) []Vec2 {
	n := s.Len()
	if cap(dst) < n {
		dst = make([]Vec2, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = s.Centroid(i)
	}
	return dst
}

// Clone deep-copies the store.
func (s *Store) Clone() *Store {
	c := &Store{
		Tri:  make([]Vec2, len(s.Tri)),
		Vel:  make([]Vec2, len(s.Vel)),
		Mass: make([]float64, len(s.Mass)),
		Col:  make([]Color, len(s.Col)),
		Kind: make([]Kind, len(s.Kind)),
	}
	copy(c.Tri, s.Tri)
	copy(c.Vel, s.Vel)
	copy(c.Mass, s.Mass)
	copy(c.Col, s.Col)
	copy(c.Kind, s.Kind)
	return c
}

// IsValid reports whether every position and velocity is finite.
func (s *Store) IsValid() bool {
	for _, p := range s.Tri {
		if !p.IsValid() {
			return false
		}
	}
	for _, v := range s.Vel {
		if !v.IsValid() {
			return false
		}
	}
	return true
}
