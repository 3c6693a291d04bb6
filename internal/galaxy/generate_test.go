package galaxy_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxia/internal/body"
	"github.com/san-kum/galaxia/internal/galaxy"
	"github.com/san-kum/galaxia/internal/stats"
)

var _ = Describe("Generate", func() {
	newRng := func() *rand.Rand { return rand.New(rand.NewSource(42)) }

	It("rejects a non-positive star budget before allocating", func() {
		_, err := galaxy.Generate(galaxy.Spiral, 0, newRng())
		Expect(err).To(MatchError(galaxy.ErrInvalidStarCount))

		_, err = galaxy.Generate(galaxy.Spiral, -5, newRng())
		Expect(err).To(MatchError(galaxy.ErrInvalidStarCount))
	})

	It("appends the bulge seed and jet populations to every morphology", func() {
		for _, m := range galaxy.All() {
			s, err := galaxy.Generate(m, 1000, newRng())
			Expect(err).NotTo(HaveOccurred(), "morphology %s", m)
			Expect(s.Len()).To(Equal(1000+galaxy.BulgeSeedCount+galaxy.JetCount),
				"morphology %s", m)
			Expect(len(s.Tri)).To(Equal(s.Len()*3), "morphology %s", m)
			Expect(s.IsValid()).To(BeTrue(), "morphology %s", m)
		}
	})

	It("tags jets and only jets with blue above the legacy threshold", func() {
		s, err := galaxy.Generate(galaxy.Elliptical, 2000, newRng())
		Expect(err).NotTo(HaveOccurred())

		jets := 0
		for i := 0; i < s.Len(); i++ {
			if s.Kind[i] == body.KindJet {
				jets++
				Expect(s.Col[i].B).To(BeNumerically(">", 1.2))
			} else {
				Expect(s.Col[i].B).To(BeNumerically("<=", 1.2))
			}
		}
		Expect(jets).To(Equal(galaxy.JetCount))
	})

	It("launches jets vertically at the fixed speed, both senses", func() {
		s, err := galaxy.Generate(galaxy.Dwarf, 500, newRng())
		Expect(err).NotTo(HaveOccurred())

		up, down := 0, 0
		for i := 0; i < s.Len(); i++ {
			if s.Kind[i] != body.KindJet {
				continue
			}
			Expect(s.Vel[i].X).To(BeZero())
			Expect(math.Abs(s.Vel[i].Y)).To(Equal(galaxy.JetSpeed))
			Expect(s.Centroid(i).Len()).To(BeNumerically("<", 0.1))
			if s.Vel[i].Y > 0 {
				up++
			} else {
				down++
			}
		}
		Expect(up).To(BeNumerically(">", 0))
		Expect(down).To(BeNumerically(">", 0))
	})

	It("is reproducible under a pinned seed", func() {
		a, err := galaxy.Generate(galaxy.Merger, 3000, newRng())
		Expect(err).NotTo(HaveOccurred())
		b, err := galaxy.Generate(galaxy.Merger, 3000, newRng())
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Len()).To(Equal(a.Len()))
		Expect(b.Tri).To(Equal(a.Tri))
		Expect(b.Vel).To(Equal(a.Vel))
		Expect(b.Col).To(Equal(a.Col))
	})

	It("produces statistically matching populations across seeds", func() {
		a, err := galaxy.Generate(galaxy.Spiral, 20000, rand.New(rand.NewSource(1)))
		Expect(err).NotTo(HaveOccurred())
		b, err := galaxy.Generate(galaxy.Spiral, 20000, rand.New(rand.NewSource(2)))
		Expect(err).NotTo(HaveOccurred())

		ha := stats.RadialHistogram(a, 20, 1.5)
		hb := stats.RadialHistogram(b, 20, 1.5)
		Expect(stats.Distance(ha, hb)).To(BeNumerically("<", 0.05))

		sa := stats.Summarize(a)
		sb := stats.Summarize(b)
		Expect(sb.MeanRadius).To(BeNumerically("~", sa.MeanRadius, 0.03))
	})
})

var _ = Describe("Ring morphology", func() {
	const starCount = 10000

	var s *body.Store

	BeforeEach(func() {
		var err error
		s, err = galaxy.Generate(galaxy.Ring, starCount, rand.New(rand.NewSource(9)))
		Expect(err).NotTo(HaveOccurred())
	})

	It("places every ring body between radius 0.7 and 0.9", func() {
		// recipe bodies come first; bulge and jets follow
		for i := 0; i < starCount; i++ {
			r := s.Centroid(i).Len()
			Expect(r).To(BeNumerically(">=", 0.7-1e-9), "body %d", i)
			Expect(r).To(BeNumerically("<=", 0.9+1e-9), "body %d", i)
		}
	})

	It("launches ring bodies tangentially at sqrt(3.5/r)*1.1", func() {
		for i := 0; i < starCount; i++ {
			pos := s.Centroid(i)
			r := pos.Len()
			v := s.Vel[i]

			want := math.Sqrt(3.5/r) * 1.1
			Expect(v.Len()).To(BeNumerically("~", want, 1e-9), "body %d", i)

			// perpendicular to the radius vector
			Expect(v.Dot(pos) / (v.Len() * r)).To(BeNumerically("~", 0, 1e-9))
		}
	})
})
