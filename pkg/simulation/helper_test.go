package simulation

// stubRand replays scripted values and falls back to defaults that produce
// zero lap noise (Float64 0.5) and the lowest possible draw (IntN 0).
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *stubRand) Float64() float64 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	return 0.5
}

func (r *stubRand) IntN(n int) int {
	if r.ii < len(r.ints) {
		v := r.ints[r.ii] % n
		r.ii++
		return v
	}
	return 0
}

// noiseless returns a simulator whose lap times carry no random perturbation.
func noiseless() *Simulator {
	return NewSimulator(WithRand(&stubRand{}))
}

func sampleState() RaceState {
	return RaceState{
		CurrentLap:      20,
		TotalLaps:       50,
		CurrentPosition: 5,
		GapAhead:        2.5,
		GapBehind:       3.0,
		CurrentTireAge:  15,
		CurrentCompound: CompoundMedium,
		Weather:         WeatherDry,
	}
}
