package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tribody/internal/body"
	"github.com/san-kum/tribody/internal/config"
	"github.com/san-kum/tribody/internal/sim"
)

func mustNew(cfg *config.Config) *sim.Simulation {
	s, err := sim.New(cfg)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Simulation", func() {
	Describe("pause", func() {
		It("makes Step a no-op until unpaused", func() {
			s := mustNew(config.Default())
			s.TogglePause()

			before := s.Bodies()
			acc := s.Accumulated()
			for i := 0; i < 10; i++ {
				s.Step(0.016)
			}

			Expect(s.Bodies()).To(Equal(before))
			Expect(s.Accumulated()).To(Equal(acc))
			Expect(s.Elapsed()).To(BeZero())

			s.TogglePause()
			s.Step(0.016)
			Expect(s.Elapsed()).To(BeNumerically(">", 0))
		})
	})

	Describe("time scale", func() {
		It("rejects non-positive factors", func() {
			s := mustNew(config.Default())
			Expect(s.SetTimeScale(0)).To(MatchError(sim.ErrTimeScale))
			Expect(s.SetTimeScale(-1)).To(MatchError(sim.ErrTimeScale))
			Expect(s.SetTimeScale(math.NaN())).To(MatchError(sim.ErrTimeScale))
			Expect(s.TimeScale()).To(Equal(config.DefaultTimeScale))
		})

		It("scales the simulated time consumed per frame", func() {
			cfg := config.Default()
			s := mustNew(cfg)
			Expect(s.SetTimeScale(2.0)).To(Succeed())

			s.Step(0.1)
			// 0.2s of scaled time at 240Hz sub-steps, capped at 16.
			want := float64(cfg.Step.MaxSubsteps) * cfg.Substep()
			Expect(s.Elapsed()).To(BeNumerically("~", want, 1e-9))
		})

		It("survives a reset", func() {
			s := mustNew(config.Default())
			Expect(s.SetTimeScale(3.0)).To(Succeed())
			s.Reset()
			Expect(s.TimeScale()).To(Equal(3.0))
		})
	})

	Describe("sub-step cap", func() {
		It("bounds work after a pathological frame stall", func() {
			cfg := config.Default()
			s := mustNew(cfg)

			s.Step(1000.0)

			maxAdvance := float64(cfg.Step.MaxSubsteps) * cfg.Substep()
			Expect(s.Elapsed()).To(BeNumerically("~", maxAdvance, 1e-9))
			// Backlog is dropped, not carried into later frames.
			Expect(s.Accumulated()).To(BeNumerically("<", cfg.Substep()))
		})
	})

	Describe("reset", func() {
		It("reproduces identical trajectories for a fixed seed", func() {
			s := mustNew(config.Default())

			run := func() [][]body.Snapshot {
				var frames [][]body.Snapshot
				for i := 0; i < 50; i++ {
					s.Step(0.016)
					frames = append(frames, s.Bodies())
				}
				return frames
			}

			first := run()
			s.Reset()
			second := run()

			Expect(second).To(Equal(first))
		})

		It("returns to running regardless of prior state", func() {
			s := mustNew(config.Default())
			s.TogglePause()
			s.Reset()
			Expect(s.Paused()).To(BeFalse())
		})
	})

	Describe("boundary wrap", func() {
		It("keeps stored positions inside the world extent", func() {
			cfg := config.Default()
			cfg.Spawn.Bodies = []config.BodyConfig{
				{X: 0, Y: 0, VX: 5000, VY: 3000, Mass: 1},
				{X: 150, Y: 0, VX: -4000, VY: 2500, Mass: 1},
				{X: -150, Y: 80, VX: 3000, VY: -6000, Mass: 1},
			}
			s := mustNew(cfg)

			for i := 0; i < 120; i++ {
				s.Step(0.016)
			}

			for _, b := range s.Bodies() {
				Expect(b.Position.X).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<", cfg.World.Width),
				))
				Expect(b.Position.Y).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<", cfg.World.Height),
				))
			}
		})
	})

	Describe("trails", func() {
		It("stay bounded at the configured length", func() {
			cfg := config.Default()
			cfg.TrailLen = 16
			s := mustNew(cfg)

			for i := 0; i < 100; i++ {
				s.Step(0.016)
			}

			for _, b := range s.Bodies() {
				Expect(b.Trail).To(HaveLen(16))
			}
		})
	})

	Describe("collision stop", func() {
		closeCfg := func() *config.Config {
			cfg := config.Default()
			cfg.Spawn.Bodies = []config.BodyConfig{
				{X: 0, Y: 0, Mass: 1},
				{X: 4, Y: 0, Mass: 1},
				{X: 300, Y: 200, Mass: 1},
			}
			return cfg
		}

		It("halts integration when two bodies touch", func() {
			s := mustNew(closeCfg())

			s.Step(0.016)
			Expect(s.Collided()).To(BeTrue())

			frozen := s.Bodies()
			s.Step(0.016)
			Expect(s.Bodies()).To(Equal(frozen))
		})

		It("clears on reset", func() {
			s := mustNew(closeCfg())
			s.Step(0.016)
			Expect(s.Collided()).To(BeTrue())

			s.Reset()
			Expect(s.Collided()).To(BeFalse())
		})
	})

	Describe("binary scenario", func() {
		It("keeps the heavy body pinned while the light pair mirrors", func() {
			cfg := config.GetPreset("binary")
			s := mustNew(cfg)

			cx := cfg.World.Width / 2
			cy := cfg.World.Height / 2

			// 1000 frames of exactly one 0.01s sub-step each.
			for i := 0; i < 1000; i++ {
				s.Step(0.01)
			}

			bodies := s.Bodies()

			heavy := bodies[0].Position
			Expect(math.Hypot(heavy.X-cx, heavy.Y-cy)).To(BeNumerically("<", 1e-6))

			// The light bodies trace opposite arcs about the center.
			p1 := bodies[1].Position
			p2 := bodies[2].Position
			Expect(p1.X - cx).To(BeNumerically("~", -(p2.X - cx), 1e-9))
			Expect(p1.Y - cy).To(BeNumerically("~", -(p2.Y - cy), 1e-9))

			// And they actually moved off their starting points.
			Expect(math.Hypot(p1.X-cx-100, p1.Y-cy)).To(BeNumerically(">", 10))
			Expect(s.Collided()).To(BeFalse())
		})
	})
})

type countingMetric struct {
	count int
	last  float64
}

func (m *countingMetric) Name() string { return "count" }
func (m *countingMetric) Observe(bodies []*body.Body, t float64) {
	m.count++
	m.last = t
}
func (m *countingMetric) Value() float64 { return float64(m.count) }
func (m *countingMetric) Reset()         { m.count = 0 }

var _ = Describe("headless Run", func() {
	It("records one sample per frame", func() {
		s := mustNew(config.Default())
		metric := &countingMetric{}
		s.AddMetric(metric)

		result, err := s.Run(context.Background(), 1.0, 0.02)
		Expect(err).NotTo(HaveOccurred())

		Expect(result.StepsTaken).To(Equal(50))
		Expect(result.Times).To(HaveLen(50))
		Expect(result.States).To(HaveLen(50))
		Expect(result.States[0]).To(HaveLen(12))
		Expect(result.Metrics).To(HaveKeyWithValue("count", 50.0))
	})

	It("validates its arguments", func() {
		s := mustNew(config.Default())
		_, err := s.Run(context.Background(), 0, 0.02)
		Expect(err).To(MatchError(sim.ErrDuration))
		_, err = s.Run(context.Background(), 1.0, 0)
		Expect(err).To(MatchError(sim.ErrFrameDt))
	})

	It("returns the partial result on cancellation", func() {
		s := mustNew(config.Default())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := s.Run(ctx, 1.0, 0.02)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result).NotTo(BeNil())
		Expect(result.StepsTaken).To(BeZero())
	})

	It("stops early on collision", func() {
		cfg := config.Default()
		cfg.Spawn.Bodies = []config.BodyConfig{
			{X: 0, Y: 0, Mass: 1},
			{X: 4, Y: 0, Mass: 1},
			{X: 300, Y: 200, Mass: 1},
		}
		s := mustNew(cfg)

		result, err := s.Run(context.Background(), 10.0, 0.02)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Collided).To(BeTrue())
		Expect(result.StepsTaken).To(Equal(1))
	})
})
