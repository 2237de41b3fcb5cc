package simulation

import (
	"math"
	"testing"
)

func TestSimulator_SimulateStint(t *testing.T) {
	tests := []struct {
		name         string
		startLap     int
		endLap       int
		startTireAge int
		wantLaps     int
		wantTotal    float64
	}{
		{
			name:     "single lap fresh tires",
			startLap: 1, endLap: 1, startTireAge: 0,
			wantLaps:  1,
			wantTotal: 90.5,
		},
		{
			name:     "five laps fresh tires",
			startLap: 10, endLap: 14, startTireAge: 0,
			wantLaps:  5,
			wantTotal: 5*90.5 + 0.03*(0+1+2+3+4),
		},
		{
			name:     "aged tires",
			startLap: 30, endLap: 32, startTireAge: 12,
			wantLaps:  3,
			wantTotal: 3*90.5 + 0.03*(12+13+14),
		},
		{
			name:     "empty range",
			startLap: 20, endLap: 19, startTireAge: 0,
			wantLaps:  0,
			wantTotal: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := noiseless()
			total, laps := s.SimulateStint(
				tt.startLap, tt.endLap, CompoundMedium, tt.startTireAge, WeatherDry)
			if len(laps) != tt.wantLaps {
				t.Errorf("got %d lap times, want %d", len(laps), tt.wantLaps)
			}
			if math.Abs(total-tt.wantTotal) > 1e-9 {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func TestSimulator_SimulateStint_additivity(t *testing.T) {
	s := NewSimulator(WithSeed(99))
	total, laps := s.SimulateStint(5, 40, CompoundSoft, 3, WeatherMixed)
	sum := 0.0
	for _, lt := range laps {
		sum += lt
	}
	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("total %v does not match lap time sum %v", total, sum)
	}
}
