package simulation

import "github.com/pitwall-dev/pit-strategy-go/log"

// EvaluateScenario computes the projected outcome of a single pit scenario.
// The caller's scenario is copied into the result and never mutated.
//
// The safety car draw is resolved up front: if it fires on a lap before the
// planned stop, the stop is pulled forward to that lap and the reduced pit
// loss applies. This keeps the evaluation a single pass instead of the
// re-entrant evaluation it replaces.
func (s *Simulator) EvaluateScenario(scenario PitScenario, state RaceState) ScenarioResult {
	pitLap := scenario.PitLap
	if pitLap == 0 {
		pitLap = state.CurrentLap
	}
	newCompound := scenario.NewCompound
	if newCompound == "" {
		newCompound = CompoundMedium
	}

	ret := ScenarioResult{
		Scenario: scenario,
		LapTimes: []float64{},
	}

	pitUnderSafetyCar := false
	if scenario.SafetyCarProb > 0 &&
		state.TotalLaps > state.CurrentLap &&
		s.rand.Float64() < scenario.SafetyCarProb {
		scLap := state.CurrentLap + 1 + s.rand.IntN(state.TotalLaps-state.CurrentLap)
		ret.SafetyCarAppeared = true
		ret.SafetyCarLap = scLap
		// a safety car before the planned stop is a cheap pit opportunity
		if scLap < pitLap {
			pitLap = scLap
			pitUnderSafetyCar = true
		}
	}

	// first stint on the current tires
	if pitLap > state.CurrentLap {
		stintTime, lapTimes := s.SimulateStint(
			state.CurrentLap, pitLap-1,
			state.CurrentCompound, state.CurrentTireAge,
			state.Weather)
		ret.TotalRaceTime += stintTime
		ret.LapTimes = append(ret.LapTimes, lapTimes...)
	}

	// pit stop and second stint, unless the scenario stays out
	if pitLap <= state.TotalLaps {
		ret.TotalRaceTime += pitStopTime

		secondStintWeather := state.Weather
		if wc := scenario.WeatherChange; wc != nil && wc.Lap >= pitLap {
			secondStintWeather = wc.Condition
		}
		stintTime, lapTimes := s.SimulateStint(
			pitLap, state.TotalLaps,
			newCompound, 0,
			secondStintWeather)
		ret.TotalRaceTime += stintTime
		ret.LapTimes = append(ret.LapTimes, lapTimes...)
	}

	// Position estimate against the static gaps from the race state. The
	// rival cars are not simulated, so this is an order-of-magnitude
	// approximation, kept for compatibility with the established model.
	if ret.TotalRaceTime-state.GapAhead > 0 {
		ret.PositionDelta++
	}
	if state.GapBehind-ret.TotalRaceTime < 0 {
		ret.PositionDelta--
	}
	ret.FinalPosition = state.CurrentPosition - ret.PositionDelta

	if pitUnderSafetyCar {
		ret.TotalRaceTime -= safetyCarSaving
		s.l.Debug("pit stop pulled forward under safety car",
			log.String("scenario", scenario.Name),
			log.Int("lap", ret.SafetyCarLap))
	}

	return ret
}
