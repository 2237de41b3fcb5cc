package server

import (
	"github.com/samber/lo"

	"github.com/pitwall-dev/pit-strategy-go/pkg/advice"
	"github.com/pitwall-dev/pit-strategy-go/pkg/predict"
	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

// wire types; field names follow the established JSON contract of the
// strategy dashboard

type (
	SimulationRequest struct {
		CurrentLap       int           `json:"current_lap"`
		TotalLaps        int           `json:"total_laps"`
		CurrentPosition  int           `json:"current_position"`
		GapAhead         float64       `json:"gap_ahead"`
		GapBehind        float64       `json:"gap_behind"`
		CurrentTireAge   int           `json:"current_tire_age"`
		CurrentCompound  string        `json:"current_compound"`
		WeatherCondition string        `json:"weather_condition"`
		PitScenarios     []PitScenario `json:"pit_scenarios"`
	}

	PitScenario struct {
		Name                 string         `json:"name"`
		PitLap               int            `json:"pit_lap,omitempty"`
		NewCompound          string         `json:"new_compound,omitempty"`
		WeatherChange        *WeatherChange `json:"weather_change,omitempty"`
		SafetyCarProbability float64        `json:"safety_car_probability,omitempty"`
	}

	WeatherChange struct {
		Lap       int    `json:"lap"`
		Condition string `json:"condition"`
	}

	ScenarioResult struct {
		Name              string    `json:"name"`
		PitLap            int       `json:"pit_lap"`
		NewCompound       string    `json:"new_compound"`
		TotalRaceTime     float64   `json:"total_race_time"`
		PositionDelta     int       `json:"position_delta"`
		LapTimes          []float64 `json:"lap_times"`
		FinalPosition     int       `json:"final_position"`
		SafetyCarAppeared bool      `json:"safety_car_appeared"`
		SafetyCarLap      int       `json:"safety_car_lap,omitempty"`
	}

	StrategyAdvice struct {
		RecommendedStrategy string             `json:"recommended_strategy"`
		SuccessProbability  float64            `json:"success_probability"`
		KeyFactors          map[string]float64 `json:"key_factors"`
	}

	SimulationResponse struct {
		Scenarios         []ScenarioResult `json:"scenarios"`
		BestScenario      ScenarioResult   `json:"best_scenario"`
		RacePositionDelta int              `json:"race_position_delta"`
		TimeDelta         float64          `json:"time_delta"`
		StrategyAdvice    *StrategyAdvice  `json:"strategy_advice,omitempty"`
	}

	PredictionRequest struct {
		TireDelta      float64 `json:"tire_delta"`
		PaceDropoff    float64 `json:"pace_dropoff"`
		TrackGap       float64 `json:"track_gap"`
		TireDegCurve   float64 `json:"tire_deg_curve"`
		RivalPitWindow int     `json:"rival_pit_window"`
	}

	PredictionResponse struct {
		SuccessProbability float64            `json:"success_probability"`
		ConfidenceScore    float64            `json:"confidence_score"`
		RecommendedAction  string             `json:"recommended_action"`
		Factors            map[string]float64 `json:"factors"`
	}

	VersionResponse struct {
		Version string `json:"version"`
	}

	StatusResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error   string   `json:"error"`
		Details []string `json:"details,omitempty"`
	}
)

func (r *SimulationRequest) raceState() simulation.RaceState {
	return simulation.RaceState{
		CurrentLap:      r.CurrentLap,
		TotalLaps:       r.TotalLaps,
		CurrentPosition: r.CurrentPosition,
		GapAhead:        r.GapAhead,
		GapBehind:       r.GapBehind,
		CurrentTireAge:  r.CurrentTireAge,
		CurrentCompound: simulation.TireCompound(r.CurrentCompound),
		Weather:         simulation.Weather(r.WeatherCondition),
	}
}

func (r *SimulationRequest) scenarios() []simulation.PitScenario {
	return lo.Map(r.PitScenarios, func(sc PitScenario, _ int) simulation.PitScenario {
		ret := simulation.PitScenario{
			Name:          sc.Name,
			PitLap:        sc.PitLap,
			NewCompound:   simulation.TireCompound(sc.NewCompound),
			SafetyCarProb: sc.SafetyCarProbability,
		}
		if sc.WeatherChange != nil {
			ret.WeatherChange = &simulation.WeatherChange{
				Lap:       sc.WeatherChange.Lap,
				Condition: simulation.Weather(sc.WeatherChange.Condition),
			}
		}
		return ret
	})
}

func (r *PredictionRequest) input() predict.Input {
	return predict.Input{
		TireDelta:      r.TireDelta,
		PaceDropoff:    r.PaceDropoff,
		TrackGap:       r.TrackGap,
		TireDegCurve:   r.TireDegCurve,
		RivalPitWindow: r.RivalPitWindow,
	}
}

func toScenarioResult(res simulation.ScenarioResult) ScenarioResult {
	return ScenarioResult{
		Name:              res.Scenario.Name,
		PitLap:            res.Scenario.PitLap,
		NewCompound:       string(res.Scenario.NewCompound),
		TotalRaceTime:     res.TotalRaceTime,
		PositionDelta:     res.PositionDelta,
		LapTimes:          res.LapTimes,
		FinalPosition:     res.FinalPosition,
		SafetyCarAppeared: res.SafetyCarAppeared,
		SafetyCarLap:      res.SafetyCarLap,
	}
}

func toSimulationResponse(
	ranking *simulation.Ranking,
	adv *advice.Advice,
) *SimulationResponse {
	ret := &SimulationResponse{
		Scenarios: lo.Map(ranking.Results,
			func(r simulation.ScenarioResult, _ int) ScenarioResult {
				return toScenarioResult(r)
			}),
		BestScenario:      toScenarioResult(ranking.Best),
		RacePositionDelta: ranking.PositionDelta,
		TimeDelta:         ranking.TimeDelta,
	}
	if adv != nil {
		ret.StrategyAdvice = &StrategyAdvice{
			RecommendedStrategy: adv.RecommendedStrategy,
			SuccessProbability:  adv.SuccessProbability,
			KeyFactors:          adv.KeyFactors,
		}
	}
	return ret
}

func toPredictionResponse(p predict.Prediction) *PredictionResponse {
	return &PredictionResponse{
		SuccessProbability: p.SuccessProbability,
		ConfidenceScore:    p.ConfidenceScore,
		RecommendedAction:  p.RecommendedAction,
		Factors:            p.Factors,
	}
}
