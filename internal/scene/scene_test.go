package scene_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wirecube/internal/camera"
	"github.com/san-kum/wirecube/internal/linalg"
	"github.com/san-kum/wirecube/internal/scene"
	"github.com/san-kum/wirecube/internal/transform"
)

func vec(x, y, z float64) linalg.Vector3 { return linalg.NewVector3(x, y, z) }

var _ = Describe("CreateCube", func() {
	It("lays out the eight corners in the documented order", func() {
		cube := scene.CreateCube(0, 0, 0, 10, 10, 10)
		Expect(cube).To(HaveLen(8))
		Expect(cube).To(Equal([8]linalg.Vector3{
			vec(0, 0, 0), vec(10, 0, 0), vec(0, 10, 0), vec(10, 10, 0),
			vec(0, 0, 10), vec(0, 10, 10), vec(10, 0, 10), vec(10, 10, 10),
		}))
	})

	It("offsets and stretches the box", func() {
		cube := scene.CreateCube(-50, -50, -50, 100, 20, 4)
		Expect(cube[0]).To(Equal(vec(-50, -50, -50)))
		Expect(cube[7]).To(Equal(vec(50, -30, -46)))
	})
})

var _ = Describe("Edges", func() {
	It("joins corners that differ along exactly one axis", func() {
		cube := scene.CreateCube(0, 0, 0, 1, 2, 3)
		seen := map[[2]int]bool{}
		for _, e := range scene.Edges {
			a, b := cube[e[0]], cube[e[1]]
			d := a.Sub(b)
			nonZero := 0
			for _, c := range d.Components() {
				if c != 0 {
					nonZero++
				}
			}
			Expect(nonZero).To(Equal(1), "edge %v", e)

			key := [2]int{min(e[0], e[1]), max(e[0], e[1])}
			Expect(seen).NotTo(HaveKey(key))
			seen[key] = true
		}
		Expect(seen).To(HaveLen(12))
	})

	It("touches every corner exactly three times", func() {
		degree := make([]int, scene.Corners)
		for _, e := range scene.Edges {
			degree[e[0]]++
			degree[e[1]]++
		}
		Expect(degree).To(HaveEach(3))
	})
})

var _ = Describe("Clock", func() {
	It("advances by one step per tick and rewinds on reset", func() {
		c := scene.NewClock(1, 0.01)
		Expect(c.Now()).To(Equal(1.0))
		Expect(c.Tick()).To(BeNumerically("~", 1.01, 1e-12))
		Expect(c.Tick()).To(BeNumerically("~", 1.02, 1e-12))
		c.Reset()
		Expect(c.Now()).To(Equal(1.0))
		Expect(c.Step()).To(Equal(0.01))
	})
})

var _ = Describe("Scene.Frame", func() {
	var cube [8]linalg.Vector3

	BeforeEach(func() {
		cube = scene.CreateCube(-50, -50, -50, 100, 100, 100)
	})

	It("flattens z when looking along +z", func() {
		s := scene.New(cube, camera.New(0, 0, 1))
		for _, t := range []float64{0, 1, 1.37, 12} {
			f, err := s.Frame(t)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Time).To(Equal(t))
			Expect(f.Edges).To(Equal(scene.Edges))
			for i, c := range f.Corners {
				Expect(c.Z()).To(BeNumerically("~", 0, 1e-9))
				Expect(f.Points[i]).To(Equal(scene.Point{X: c.X(), Y: c.Y()}))
			}
		}
	})

	It("projects the raw cube with an empty pipeline", func() {
		s := scene.NewWithPipeline(scene.CreateCube(0, 0, 0, 10, 10, 10), camera.New(0, 0, 1), transform.Pipeline{})
		f, err := s.Frame(5)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Points[0]).To(Equal(scene.Point{X: 0, Y: 0}))
		Expect(f.Points[7]).To(Equal(scene.Point{X: 10, Y: 10}))
		Expect(f.Width()).To(Equal(10.0))
	})

	It("keeps every rotated corner on the circumscribed sphere", func() {
		radius := cube[0].Mag()
		s := scene.New(cube, camera.New(0, 0, 1))
		f, err := s.Frame(2.5)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range f.Points {
			Expect(math.Hypot(p.X, p.Y)).To(BeNumerically("<=", radius+1e-9))
		}
	})

	It("reports a degenerate camera as a FrameError", func() {
		s := scene.New(cube, camera.New(0, 0, 0))
		_, err := s.Frame(1)
		Expect(err).To(MatchError(linalg.ErrDegenerateVector))

		var fe *scene.FrameError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Corner).To(Equal(0))
		Expect(fe.Time).To(Equal(1.0))
	})

	It("rejects non-finite coordinates", func() {
		s := scene.New(cube, camera.New(0, 0, 1))
		_, err := s.Frame(-1)
		Expect(err).To(MatchError(scene.ErrNonFinite))
	})
})

var _ = Describe("Frame.Bounds", func() {
	It("spans the projected points", func() {
		s := scene.NewWithPipeline(scene.CreateCube(-2, -3, 0, 4, 9, 1), camera.New(0, 0, 1), nil)
		f, err := s.Frame(0)
		Expect(err).NotTo(HaveOccurred())
		minX, minY, maxX, maxY := f.Bounds()
		Expect([]float64{minX, minY, maxX, maxY}).To(Equal([]float64{-2, -3, 2, 6}))
	})
})

var _ = Describe("Player", func() {
	var (
		buf    *bytes.Buffer
		logger *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		logger = slog.New(slog.NewTextHandler(buf, nil))
	})

	It("ticks the clock once per frame", func() {
		p := scene.NewPlayer(scene.New(scene.CreateCube(-50, -50, -50, 100, 100, 100), camera.New(0, 0, 1)), scene.NewClock(1, 0.01), logger)

		f, ok := p.Next()
		Expect(ok).To(BeTrue())
		Expect(f.Time).To(BeNumerically("~", 1.01, 1e-12))

		frames := p.Frames(9)
		Expect(frames).To(HaveLen(9))
		Expect(p.Clock().Now()).To(BeNumerically("~", 1.10, 1e-9))

		last, ok := p.Last()
		Expect(ok).To(BeTrue())
		Expect(last).To(Equal(frames[8]))
		Expect(p.Skipped()).To(BeZero())
		Expect(buf.String()).To(BeEmpty())
	})

	It("skips and logs frames that fail", func() {
		p := scene.NewPlayer(scene.New(scene.CreateCube(0, 0, 0, 1, 1, 1), camera.New(0, 0, 0)), scene.NewClock(0, 1), logger)

		_, ok := p.Next()
		Expect(ok).To(BeFalse())
		Expect(p.Frames(3)).To(BeEmpty())
		Expect(p.Skipped()).To(Equal(4))
		Expect(buf.String()).To(ContainSubstring("skipping frame"))

		_, ok = p.Last()
		Expect(ok).To(BeFalse())

		p.Reset()
		Expect(p.Skipped()).To(BeZero())
		Expect(p.Clock().Now()).To(BeZero())
	})

	It("recovers once time is valid again", func() {
		p := scene.NewPlayer(scene.New(scene.CreateCube(0, 0, 0, 1, 1, 1), camera.New(0, 0, 1)), scene.NewClock(-1.5, 1), logger)
		frames := p.Frames(3)
		// t=-0.5 fails (sqrt of a negative time), t=0.5 and t=1.5 succeed
		Expect(frames).To(HaveLen(2))
		Expect(p.Skipped()).To(Equal(1))
	})
})
