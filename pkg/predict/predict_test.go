package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUndercut(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantProb float64
		wantConf float64
	}{
		{
			name:     "fresh tires and small gap",
			input:    Input{TireDelta: 10, TrackGap: 0},
			wantProb: 0.8,
			wantConf: 0.8,
		},
		{
			name:     "no advantage and large gap",
			input:    Input{TireDelta: 0, TrackGap: 3},
			wantProb: 0.3,
			wantConf: 0.65,
		},
		{
			name:     "neutral",
			input:    Input{TireDelta: 0, TrackGap: 0},
			wantProb: 0.5,
			wantConf: 0.5,
		},
		{
			name:     "inputs beyond normalization are capped",
			input:    Input{TireDelta: 100, TrackGap: 0},
			wantProb: 0.8,
			wantConf: 0.8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Undercut(tt.input)
			assert.InDelta(t, tt.wantProb, got.SuccessProbability, 1e-9)
			assert.InDelta(t, tt.wantConf, got.ConfidenceScore, 1e-9)
			assert.NotEmpty(t, got.RecommendedAction)
			assert.Equal(t, undercutFactors, got.Factors)
		})
	}
}

func TestOvercut(t *testing.T) {
	got := Overcut(Input{TireDelta: 0, TrackGap: 3, TireDegCurve: 2})
	assert.InDelta(t, 0.8, got.SuccessProbability, 1e-9)
	assert.Equal(t, 0.8, got.ConfidenceScore)
	assert.Contains(t, got.RecommendedAction, "overcut")
	assert.Equal(t, overcutFactors, got.Factors)
}

func TestProbabilityClamped(t *testing.T) {
	// even stacked advantages never report certainty
	got := Undercut(Input{TireDelta: 1000, TrackGap: -1000})
	assert.LessOrEqual(t, got.SuccessProbability, 0.95)
	got = Overcut(Input{TireDelta: 1000, TrackGap: -1000, TireDegCurve: -10})
	assert.GreaterOrEqual(t, got.SuccessProbability, 0.05)
}

func TestFactorWeightsSumToOne(t *testing.T) {
	for name, factors := range map[string]map[string]float64{
		"undercut": undercutFactors,
		"overcut":  overcutFactors,
	} {
		sum := 0.0
		for _, w := range factors {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, name)
	}
}
