package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

const sampleYAML = `
race:
  current_lap: 20
  total_laps: 50
  current_position: 5
  gap_ahead: 2.5
  gap_behind: 3.0
  current_tire_age: 15
  current_compound: medium
  weather_condition: dry
scenarios:
  - name: Stay out
    pit_lap: 51
  - name: Gamble on rain
    pit_lap: 30
    new_compound: intermediate
    safety_car_probability: 0.2
    weather_change:
      lap: 32
      condition: wet
`

func TestFileInputConversion(t *testing.T) {
	var input fileInput
	require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &input))

	state := toRaceState(input.Race)
	assert.Equal(t, 20, state.CurrentLap)
	assert.Equal(t, 50, state.TotalLaps)
	assert.Equal(t, simulation.CompoundMedium, state.CurrentCompound)
	assert.Equal(t, simulation.WeatherDry, state.Weather)

	scenarios := toScenarios(input.Scenarios)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Stay out", scenarios[0].Name)
	assert.Nil(t, scenarios[0].WeatherChange)
	assert.Equal(t, simulation.CompoundIntermediate, scenarios[1].NewCompound)
	require.NotNil(t, scenarios[1].WeatherChange)
	assert.Equal(t, simulation.WeatherWet, scenarios[1].WeatherChange.Condition)
	assert.InDelta(t, 0.2, scenarios[1].SafetyCarProb, 1e-9)

	assert.NoError(t, simulation.ValidateRequest(state, scenarios))
}
