package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/pitwall-dev/pit-strategy-go/log"
)

const (
	baseLapTime     = 90.0 // neutral lap on a fresh tire in clear conditions (s)
	pitStopTime     = 22.0 // full stop: entry, standstill, exit (s)
	safetyCarSaving = 5.0  // reduced pit loss when stopping under safety car (s)
	lapTimeJitter   = 0.3  // bound of the uniform per-lap noise (s)
)

type (
	// Rand is the source of randomness used for lap noise and the safety
	// car draw. Each Simulator owns its source, so callers control seeding
	// and concurrent simulations never share generator state.
	Rand interface {
		Float64() float64
		IntN(n int) int
	}

	Simulator struct {
		rand Rand
		l    *log.Logger
	}

	Option func(*Simulator)
)

func WithRand(r Rand) Option {
	return func(s *Simulator) {
		s.rand = r
	}
}

// WithSeed installs a deterministic source for reproducible runs.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		s.l = l
	}
}

func NewSimulator(opts ...Option) *Simulator {
	ret := &Simulator{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.rand == nil {
		now := uint64(time.Now().UnixNano())
		ret.rand = rand.New(rand.NewPCG(now, now))
	}
	if ret.l == nil {
		ret.l = log.Default().Named("sim")
	}
	return ret
}

// LapTime returns one lap time sample in seconds for the given compound,
// tire age and weather. The result carries a uniform perturbation within
// [-lapTimeJitter, +lapTimeJitter], so repeated calls differ unless the
// Simulator was created with a fixed source.
// Compound and weather must be valid; validation happens at the boundary.
func (s *Simulator) LapTime(compound TireCompound, tireAge int, weather Weather) float64 {
	spec := compound.Spec()
	t := baseLapTime + spec.PaceOffset
	t += float64(tireAge) * spec.DegRate
	t += weatherPenalty(compound, weather)
	t += s.noise()
	return t
}

// weatherPenalty returns the additive penalty for running the compound in
// the given conditions. The branches are mutually exclusive.
func weatherPenalty(compound TireCompound, weather Weather) float64 {
	switch {
	case weather == WeatherWet && !compound.WetCapable():
		return 5.0
	case weather == WeatherMixed:
		switch compound {
		case CompoundIntermediate:
			return 1.0
		case CompoundWet:
			return 2.0
		default:
			return 3.0
		}
	case weather == WeatherDry && compound.WetCapable():
		return 4.0
	default:
		return 0.0
	}
}

func (s *Simulator) noise() float64 {
	return s.rand.Float64()*2*lapTimeJitter - lapTimeJitter
}
