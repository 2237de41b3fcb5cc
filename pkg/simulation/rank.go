package simulation

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/pitwall-dev/pit-strategy-go/log"
)

// ErrNoScenarios signals an empty result set after default substitution.
// This is a programming defect, not a user error.
var ErrNoScenarios = errors.New("no scenarios to rank")

// DefaultScenarios is the candidate set used when the caller supplies none.
func DefaultScenarios(state RaceState) []PitScenario {
	return []PitScenario{
		{Name: "Stay out", PitLap: state.TotalLaps + 1},
		{Name: "Pit now", PitLap: state.CurrentLap, NewCompound: CompoundHard},
		{Name: "Pit in 3 laps", PitLap: state.CurrentLap + 3, NewCompound: CompoundHard},
		{Name: "Pit in 5 laps", PitLap: state.CurrentLap + 5, NewCompound: CompoundHard},
	}
}

// RankScenarios evaluates every candidate scenario and picks the one with
// the lowest projected total race time. Scenarios are independent of each
// other; they are evaluated in the order given.
func (s *Simulator) RankScenarios(
	state RaceState,
	scenarios []PitScenario,
) (*Ranking, error) {
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios(state)
		s.l.Debug("no scenarios supplied, using defaults",
			log.Int("count", len(scenarios)))
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for i := range scenarios {
		results = append(results, s.EvaluateScenario(scenarios[i], state))
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w (candidates: %d)", ErrNoScenarios, len(scenarios))
	}

	best := lo.MinBy(results, func(a, b ScenarioResult) bool {
		return a.TotalRaceTime < b.TotalRaceTime
	})
	worst := lo.MaxBy(results, func(a, b ScenarioResult) bool {
		return a.TotalRaceTime > b.TotalRaceTime
	})

	return &Ranking{
		Results:       results,
		Best:          best,
		PositionDelta: best.PositionDelta,
		TimeDelta:     worst.TotalRaceTime - best.TotalRaceTime,
	}, nil
}
