package nbody_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

var _ = Describe("gravitational force law", func() {
	newPair := func(sep float64) *nbody.System {
		sys, err := nbody.New(nbody.G, []nbody.Body{
			{Mass: 1e10},
			{Mass: 1e10, Position: vec.Vec3{X: sep}},
		})
		Expect(err).NotTo(HaveOccurred())
		return sys
	}

	It("obeys Newton's third law for unequal masses", func() {
		sys, err := nbody.New(nbody.G, []nbody.Body{
			{Mass: 2e9, Position: vec.Vec3{X: -3, Y: 1, Z: 0.5}},
			{Mass: 9e11, Position: vec.Vec3{X: 2, Y: -4, Z: 1}},
		})
		Expect(err).NotTo(HaveOccurred())

		f01 := sys.ForceOn(0)
		f10 := sys.ForceOn(1)
		Expect(f01.Length()).To(BeNumerically("~", f10.Length(), 1e-12*f01.Length()))
		Expect(f01.Add(f10).Length()).To(BeNumerically("<", 1e-12*f01.Length()))
	})

	It("follows the inverse-square scaling", func() {
		near := newPair(1).ForceOn(0).Length()
		far := newPair(2).ForceOn(0).Length()
		Expect(near / far).To(BeNumerically("~", 4, 1e-9))
	})

	It("points along the separation vector", func() {
		sys := newPair(5)
		f := sys.ForceOn(0)
		Expect(f.X).To(BeNumerically(">", 0))
		Expect(f.Y).To(BeZero())
		Expect(f.Z).To(BeZero())
	})

	It("vanishes at large separation", func() {
		Expect(newPair(1e12).ForceOn(0).Length()).To(BeNumerically("<", 1e-12))
	})
})

var _ = Describe("symplectic Euler stepping", func() {
	var sys *nbody.System

	BeforeEach(func() {
		var err error
		sys, err = nbody.New(nbody.G, []nbody.Body{
			{Mass: 1e10, Position: vec.Vec3{}, Color: nbody.Color{R: 1}},
			{Mass: 1e10, Position: vec.Vec3{X: 2}, Velocity: vec.Vec3{Y: 0.5}, Color: nbody.Color{G: 1}},
			{Mass: 1e10, Position: vec.Vec3{Y: 2}, Velocity: vec.Vec3{Y: -0.5}, Color: nbody.Color{B: 1}},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("conserves momentum over many ticks", func() {
		p0 := sys.Momentum()
		for i := 0; i < 2000; i++ {
			Expect(sys.Step(0.005)).To(Succeed())
		}
		Expect(sys.Momentum().Sub(p0).Length()).To(BeNumerically("<", 1e-3))
	})

	It("keeps every component finite", func() {
		for i := 0; i < 2000; i++ {
			Expect(sys.Step(0.01)).To(Succeed())
		}
		Expect(sys.Validate()).To(Succeed())
		for _, b := range sys.Snapshot() {
			Expect(b.IsFinite()).To(BeTrue())
		}
	})

	It("updates position with the post-update velocity", func() {
		Expect(sys.Step(1)).To(Succeed())
		b := sys.Body(0)
		// One tick from rest: p = v_new * dt exactly.
		Expect(b.Position).To(Equal(b.Velocity.Scale(1)))
	})
})
