// Package simulate provides a one-shot CLI evaluation of pit scenarios,
// useful for trying strategies without running the API server.
package simulate

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pitwall-dev/pit-strategy-go/log"
	"github.com/pitwall-dev/pit-strategy-go/pkg/config"
	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

type (
	raceInput struct {
		CurrentLap       int     `yaml:"current_lap"`
		TotalLaps        int     `yaml:"total_laps"`
		CurrentPosition  int     `yaml:"current_position"`
		GapAhead         float64 `yaml:"gap_ahead"`
		GapBehind        float64 `yaml:"gap_behind"`
		CurrentTireAge   int     `yaml:"current_tire_age"`
		CurrentCompound  string  `yaml:"current_compound"`
		WeatherCondition string  `yaml:"weather_condition"`
	}

	scenarioInput struct {
		Name                 string  `yaml:"name"`
		PitLap               int     `yaml:"pit_lap"`
		NewCompound          string  `yaml:"new_compound"`
		SafetyCarProbability float64 `yaml:"safety_car_probability"`
		WeatherChange        *struct {
			Lap       int    `yaml:"lap"`
			Condition string `yaml:"condition"`
		} `yaml:"weather_change"`
	}

	fileInput struct {
		Race      raceInput       `yaml:"race"`
		Scenarios []scenarioInput `yaml:"scenarios"`
	}
)

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate file",
		Short: "evaluates the pit scenarios described in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulateFile(args[0])
		},
	}
	cmd.Flags().Uint64Var(&config.Seed,
		"seed",
		0,
		"fixed seed for the simulation randomness (0: time based)")
	return cmd
}

func simulateFile(filename string) error {
	l := log.Default().Named("simulate")

	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var input fileInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("could not parse %s: %w", filename, err)
	}

	state := toRaceState(input.Race)
	scenarios := toScenarios(input.Scenarios)
	if err := simulation.ValidateRequest(state, scenarios); err != nil {
		return err
	}

	opts := []simulation.Option{simulation.WithLogger(l)}
	if config.Seed > 0 {
		opts = append(opts, simulation.WithSeed(config.Seed))
	}
	ranking, err := simulation.NewSimulator(opts...).RankScenarios(state, scenarios)
	if err != nil {
		return err
	}

	printRanking(ranking)
	return nil
}

func toRaceState(in raceInput) simulation.RaceState {
	return simulation.RaceState{
		CurrentLap:      in.CurrentLap,
		TotalLaps:       in.TotalLaps,
		CurrentPosition: in.CurrentPosition,
		GapAhead:        in.GapAhead,
		GapBehind:       in.GapBehind,
		CurrentTireAge:  in.CurrentTireAge,
		CurrentCompound: simulation.TireCompound(in.CurrentCompound),
		Weather:         simulation.Weather(in.WeatherCondition),
	}
}

func toScenarios(in []scenarioInput) []simulation.PitScenario {
	ret := make([]simulation.PitScenario, 0, len(in))
	for i := range in {
		sc := simulation.PitScenario{
			Name:          in[i].Name,
			PitLap:        in[i].PitLap,
			NewCompound:   simulation.TireCompound(in[i].NewCompound),
			SafetyCarProb: in[i].SafetyCarProbability,
		}
		if wc := in[i].WeatherChange; wc != nil {
			sc.WeatherChange = &simulation.WeatherChange{
				Lap:       wc.Lap,
				Condition: simulation.Weather(wc.Condition),
			}
		}
		ret = append(ret, sc)
	}
	return ret
}

func printRanking(ranking *simulation.Ranking) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPIT LAP\tCOMPOUND\tTOTAL\tPOS DELTA\tSAFETY CAR")
	for i := range ranking.Results {
		r := &ranking.Results[i]
		sc := "-"
		if r.SafetyCarAppeared {
			sc = fmt.Sprintf("lap %d", r.SafetyCarLap)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%.3fs\t%+d\t%s\n",
			r.Scenario.Name,
			r.Scenario.PitLap,
			r.Scenario.NewCompound,
			r.TotalRaceTime,
			r.PositionDelta,
			sc)
	}
	w.Flush()
	fmt.Printf("\nBest: %s (%.3fs ahead of worst option)\n",
		ranking.Best.Scenario.Name, ranking.TimeDelta)
}
