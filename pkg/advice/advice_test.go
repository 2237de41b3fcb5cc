package advice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

func baseState() simulation.RaceState {
	return simulation.RaceState{
		CurrentLap:      20,
		TotalLaps:       50,
		CurrentPosition: 5,
		CurrentTireAge:  10,
		CurrentCompound: simulation.CompoundMedium,
		Weather:         simulation.WeatherDry,
	}
}

func TestHeuristicAdvisor(t *testing.T) {
	advisor := NewHeuristicAdvisor()

	t.Run("wet track on slicks", func(t *testing.T) {
		state := baseState()
		state.Weather = simulation.WeatherWet
		got, err := advisor.GetAdvice(context.Background(), state)
		require.NoError(t, err)
		assert.Contains(t, got.RecommendedStrategy, "intermediates")
	})

	t.Run("worn tires", func(t *testing.T) {
		state := baseState()
		state.CurrentTireAge = 40
		got, err := advisor.GetAdvice(context.Background(), state)
		require.NoError(t, err)
		assert.Contains(t, got.RecommendedStrategy, "optimal window")
	})

	t.Run("race nearly over", func(t *testing.T) {
		state := baseState()
		state.CurrentLap = 47
		got, err := advisor.GetAdvice(context.Background(), state)
		require.NoError(t, err)
		assert.Contains(t, got.RecommendedStrategy, "Stay out")
	})

	t.Run("key factors normalized", func(t *testing.T) {
		got, err := advisor.GetAdvice(context.Background(), baseState())
		require.NoError(t, err)
		sum := 0.0
		for _, w := range got.KeyFactors {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})
}
