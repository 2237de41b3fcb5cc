package simulation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCompound = errors.New("unknown tire compound")
	ErrUnknownWeather  = errors.New("unknown weather condition")
)

// ValidationError collects all problems found in a simulation request.
// Inputs are rejected before any simulation work begins.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid simulation input: %s", strings.Join(e.Problems, "; "))
}

// IsValidationError reports whether err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ValidateRequest checks the race state and the candidate scenarios against
// the boundary constraints. A nil return means the input may be simulated.
//
//nolint:cyclop // plain list of checks
func ValidateRequest(state RaceState, scenarios []PitScenario) error {
	problems := []string{}
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if state.CurrentLap < 1 {
		addf("current_lap must be >= 1 (got %d)", state.CurrentLap)
	}
	if state.TotalLaps < state.CurrentLap {
		addf("total_laps %d must be >= current_lap %d", state.TotalLaps, state.CurrentLap)
	}
	if state.CurrentPosition < 1 {
		addf("current_position must be >= 1 (got %d)", state.CurrentPosition)
	}
	if state.CurrentTireAge < 0 {
		addf("current_tire_age must be >= 0 (got %d)", state.CurrentTireAge)
	}
	if !state.CurrentCompound.Known() {
		addf("unknown compound %q", state.CurrentCompound)
	}
	if !state.Weather.Known() {
		addf("unknown weather condition %q", state.Weather)
	}

	for i := range scenarios {
		sc := &scenarios[i]
		if sc.PitLap != 0 && sc.PitLap < state.CurrentLap {
			addf("scenario %q: pit_lap %d must be >= current_lap %d",
				sc.Name, sc.PitLap, state.CurrentLap)
		}
		if sc.NewCompound != "" && !sc.NewCompound.Known() {
			addf("scenario %q: unknown compound %q", sc.Name, sc.NewCompound)
		}
		if sc.SafetyCarProb < 0 || sc.SafetyCarProb > 1 {
			addf("scenario %q: safety_car_probability %f must be within [0,1]",
				sc.Name, sc.SafetyCarProb)
		}
		if wc := sc.WeatherChange; wc != nil && !wc.Condition.Known() {
			addf("scenario %q: unknown weather condition %q", sc.Name, wc.Condition)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
