// Package predict scores undercut and overcut attempts with a closed-form
// heuristic. The factor weight maps describe the relative influence of each
// input on the score and are reported alongside the probability.
package predict

import "fmt"

type (
	// Input describes the duel between the car and its direct rival.
	Input struct {
		TireDelta      float64 // tire age difference to the rival (laps)
		PaceDropoff    float64 // pace loss per lap (s)
		TrackGap       float64 // gap between the cars (s)
		TireDegCurve   float64 // degradation curve factor
		RivalPitWindow int     // expected laps until the rival pits
	}

	Prediction struct {
		SuccessProbability float64
		ConfidenceScore    float64
		RecommendedAction  string
		Factors            map[string]float64
	}

	strategyKind int
)

const (
	undercut strategyKind = iota
	overcut
)

var (
	undercutFactors = map[string]float64{
		"tire_delta":       0.35,
		"pace_dropoff":     0.25,
		"track_gap":        0.20,
		"tire_deg_curve":   0.15,
		"rival_pit_window": 0.05,
	}
	overcutFactors = map[string]float64{
		"tire_delta":       0.30,
		"pace_dropoff":     0.30,
		"track_gap":        0.15,
		"tire_deg_curve":   0.20,
		"rival_pit_window": 0.05,
	}
)

// Undercut estimates the chance that pitting before the rival gains the
// position. Fresher tires help, a large gap hurts.
func Undercut(in Input) Prediction {
	tireAdvantage := min(1.0, in.TireDelta/10)
	gapFactor := min(1.0, in.TrackGap/3)

	p := clamp(0.5 + 0.3*tireAdvantage - 0.2*gapFactor)
	return Prediction{
		SuccessProbability: p,
		ConfidenceScore:    confidence(p),
		RecommendedAction:  recommendation(p, undercut),
		Factors:            undercutFactors,
	}
}

// Overcut estimates the chance that staying out longer than the rival gains
// the position. Tire life and a comfortable gap help.
func Overcut(in Input) Prediction {
	tireAdvantage := min(1.0, in.TireDelta/10)
	gapFactor := min(1.0, in.TrackGap/3)
	degFactor := min(1.0, in.TireDegCurve/2)

	p := clamp(0.5 - 0.2*tireAdvantage + 0.2*gapFactor + 0.1*degFactor)
	return Prediction{
		SuccessProbability: p,
		ConfidenceScore:    confidence(p),
		RecommendedAction:  recommendation(p, overcut),
		Factors:            overcutFactors,
	}
}

func clamp(p float64) float64 {
	return max(0.05, min(0.95, p))
}

// confidence maps the probability to a coarse confidence band; extreme
// probabilities are the easy calls.
func confidence(p float64) float64 {
	switch {
	case p > 0.9 || p < 0.1:
		return 0.95
	case p > 0.75 || p < 0.25:
		return 0.80
	case p > 0.6 || p < 0.4:
		return 0.65
	default:
		return 0.50
	}
}

func recommendation(p float64, kind strategyKind) string {
	switch kind {
	case undercut:
		switch {
		case p > 0.7:
			return "Pit now for undercut attempt - high chance of success"
		case p > 0.5:
			return "Consider undercut - moderate chance of success"
		default:
			return "Stay out - undercut unlikely to succeed"
		}
	case overcut:
		switch {
		case p > 0.7:
			return "Stay out for overcut attempt - high chance of success"
		case p > 0.5:
			return "Consider overcut - moderate chance of success"
		default:
			return "Pit now - overcut unlikely to succeed"
		}
	}
	panic(fmt.Sprintf("unhandled strategy kind %d", kind))
}
