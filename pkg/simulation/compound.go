package simulation

import "fmt"

type (
	// TireCompound identifies one of the five available tire types.
	TireCompound string
	// Weather describes the track condition during a stint.
	Weather string

	// CompoundSpec holds the performance characteristics of a tire compound.
	// OptimalWindow is descriptive metadata; no computation consults it.
	CompoundSpec struct {
		PaceOffset    float64 // additive offset on the base lap time (s)
		DegRate       float64 // lap time lost per lap of tire age (s/lap)
		OptimalWindow [2]int  // advisory tire age range (laps)
	}
)

const (
	CompoundSoft         TireCompound = "soft"
	CompoundMedium       TireCompound = "medium"
	CompoundHard         TireCompound = "hard"
	CompoundIntermediate TireCompound = "intermediate"
	CompoundWet          TireCompound = "wet"
)

const (
	WeatherDry   Weather = "dry"
	WeatherMixed Weather = "mixed"
	WeatherWet   Weather = "wet"
)

var compoundSpecs = map[TireCompound]CompoundSpec{
	CompoundSoft:         {PaceOffset: 0.0, DegRate: 0.05, OptimalWindow: [2]int{1, 15}},
	CompoundMedium:       {PaceOffset: 0.5, DegRate: 0.03, OptimalWindow: [2]int{10, 35}},
	CompoundHard:         {PaceOffset: 1.0, DegRate: 0.02, OptimalWindow: [2]int{25, 50}},
	CompoundIntermediate: {PaceOffset: 3.0, DegRate: 0.04, OptimalWindow: [2]int{1, 30}},
	CompoundWet:          {PaceOffset: 6.0, DegRate: 0.01, OptimalWindow: [2]int{1, 40}},
}

// Spec returns the performance characteristics of the compound.
func (c TireCompound) Spec() CompoundSpec {
	return compoundSpecs[c]
}

func (c TireCompound) Known() bool {
	_, ok := compoundSpecs[c]
	return ok
}

// WetCapable reports whether the compound is designed for a wet track.
func (c TireCompound) WetCapable() bool {
	return c == CompoundIntermediate || c == CompoundWet
}

func (w Weather) Known() bool {
	switch w {
	case WeatherDry, WeatherMixed, WeatherWet:
		return true
	}
	return false
}

func ParseCompound(arg string) (TireCompound, error) {
	c := TireCompound(arg)
	if !c.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCompound, arg)
	}
	return c, nil
}

func ParseWeather(arg string) (Weather, error) {
	w := Weather(arg)
	if !w.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeather, arg)
	}
	return w, nil
}
