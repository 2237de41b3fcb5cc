// Package advice defines the boundary to the strategy advice collaborator.
// The production deployment may plug in an external service; the built-in
// implementation derives a recommendation from the race context alone so the
// simulation response is always complete.
package advice

import (
	"context"

	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

type (
	// Advice is the structured answer of the collaborator. KeyFactors are
	// normalized to sum 1.0.
	Advice struct {
		RecommendedStrategy string
		SuccessProbability  float64
		KeyFactors          map[string]float64
	}

	Advisor interface {
		GetAdvice(ctx context.Context, state simulation.RaceState) (*Advice, error)
	}

	heuristicAdvisor struct{}
)

// NewHeuristicAdvisor returns the built-in rule based advisor.
func NewHeuristicAdvisor() Advisor {
	return &heuristicAdvisor{}
}

func (a *heuristicAdvisor) GetAdvice(
	_ context.Context,
	state simulation.RaceState,
) (*Advice, error) {
	ret := &Advice{
		KeyFactors: map[string]float64{
			"tire_age":  2.0,
			"weather":   1.0,
			"track_gap": 1.0,
		},
	}
	remaining := state.TotalLaps - state.CurrentLap

	switch {
	case state.Weather == simulation.WeatherWet && !state.CurrentCompound.WetCapable():
		ret.RecommendedStrategy = "Pit for intermediates - current tires unsuited to conditions"
		ret.SuccessProbability = 0.85
		ret.KeyFactors["weather"] = 4.0
	case pastOptimalWindow(state):
		ret.RecommendedStrategy = "Pit within the next laps - tires past their optimal window"
		ret.SuccessProbability = 0.7
	case remaining <= 5:
		ret.RecommendedStrategy = "Stay out to the flag - not enough laps left to recover a stop"
		ret.SuccessProbability = 0.75
	default:
		ret.RecommendedStrategy = "Hold position and extend the stint"
		ret.SuccessProbability = 0.6
	}

	normalize(ret.KeyFactors)
	return ret, nil
}

func pastOptimalWindow(state simulation.RaceState) bool {
	window := state.CurrentCompound.Spec().OptimalWindow
	return state.CurrentTireAge > window[1]
}

func normalize(factors map[string]float64) {
	sum := 0.0
	for _, w := range factors {
		sum += w
	}
	if sum == 0 {
		return
	}
	for k, w := range factors {
		factors[k] = w / sum
	}
}
