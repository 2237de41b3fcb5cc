//nolint:funlen // table tests
package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	valid := sampleState()
	tests := []struct {
		name      string
		modify    func(*RaceState)
		scenarios []PitScenario
		wantErr   bool
	}{
		{
			name:   "valid state no scenarios",
			modify: func(s *RaceState) {},
		},
		{
			name:   "current lap below one",
			modify: func(s *RaceState) { s.CurrentLap = 0 },
			// TotalLaps stays valid relative to the bad lap
			wantErr: true,
		},
		{
			name:    "total laps before current lap",
			modify:  func(s *RaceState) { s.TotalLaps = 10 },
			wantErr: true,
		},
		{
			name:    "position below one",
			modify:  func(s *RaceState) { s.CurrentPosition = 0 },
			wantErr: true,
		},
		{
			name:    "negative tire age",
			modify:  func(s *RaceState) { s.CurrentTireAge = -1 },
			wantErr: true,
		},
		{
			name:    "unknown compound",
			modify:  func(s *RaceState) { s.CurrentCompound = "super" },
			wantErr: true,
		},
		{
			name:    "unknown weather",
			modify:  func(s *RaceState) { s.Weather = "foggy" },
			wantErr: true,
		},
		{
			name:      "scenario pit lap before current lap",
			modify:    func(s *RaceState) {},
			scenarios: []PitScenario{{Name: "early", PitLap: 10}},
			wantErr:   true,
		},
		{
			name:      "scenario pit lap zero means pit now",
			modify:    func(s *RaceState) {},
			scenarios: []PitScenario{{Name: "now"}},
		},
		{
			name:      "scenario unknown compound",
			modify:    func(s *RaceState) {},
			scenarios: []PitScenario{{Name: "bad", PitLap: 25, NewCompound: "glass"}},
			wantErr:   true,
		},
		{
			name:      "scenario probability out of range",
			modify:    func(s *RaceState) {},
			scenarios: []PitScenario{{Name: "bad", PitLap: 25, SafetyCarProb: 1.5}},
			wantErr:   true,
		},
		{
			name:   "scenario weather change unknown condition",
			modify: func(s *RaceState) {},
			scenarios: []PitScenario{{
				Name: "bad", PitLap: 25,
				WeatherChange: &WeatherChange{Lap: 30, Condition: "hail"},
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := valid
			tt.modify(&state)
			err := ValidateRequest(state, tt.scenarios)
			if tt.wantErr {
				assert.Error(t, err)
				ve, ok := IsValidationError(err)
				assert.True(t, ok)
				assert.NotEmpty(t, ve.Problems)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseCompound(t *testing.T) {
	got, err := ParseCompound("soft")
	assert.NoError(t, err)
	assert.Equal(t, CompoundSoft, got)

	_, err = ParseCompound("granite")
	assert.ErrorIs(t, err, ErrUnknownCompound)
}

func TestParseWeather(t *testing.T) {
	got, err := ParseWeather("mixed")
	assert.NoError(t, err)
	assert.Equal(t, WeatherMixed, got)

	_, err = ParseWeather("snow")
	assert.ErrorIs(t, err, ErrUnknownWeather)
}
