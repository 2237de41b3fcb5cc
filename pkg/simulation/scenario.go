package simulation

// RaceState is the snapshot of a car's situation when the simulation is
// requested. It is never mutated by the engine.
type RaceState struct {
	CurrentLap      int
	TotalLaps       int
	CurrentPosition int
	GapAhead        float64 // gap to the car ahead (s), <=0 means already ahead
	GapBehind       float64 // gap to the car behind (s)
	CurrentTireAge  int     // laps
	CurrentCompound TireCompound
	Weather         Weather
}

// WeatherChange is an expected change of track condition during the race.
type WeatherChange struct {
	Lap       int
	Condition Weather
}

// PitScenario is one candidate strategy supplied by the caller.
// Optional fields and their defaults:
//   - PitLap 0 means pit at the current lap ("pit now"); a value beyond
//     TotalLaps means no pit stop at all
//   - NewCompound "" defaults to medium
//   - WeatherChange nil means no change expected
//   - SafetyCarProb 0 disables the safety car draw
type PitScenario struct {
	Name          string
	PitLap        int
	NewCompound   TireCompound
	WeatherChange *WeatherChange
	SafetyCarProb float64
}

// ScenarioResult is the outcome of evaluating a single PitScenario.
type ScenarioResult struct {
	Scenario          PitScenario
	TotalRaceTime     float64   // seconds
	PositionDelta     int       // positive means positions gained
	LapTimes          []float64 // chronological, one entry per simulated lap
	FinalPosition     int
	SafetyCarAppeared bool
	SafetyCarLap      int // only meaningful if SafetyCarAppeared
}

// Ranking holds the evaluated scenarios together with the best pick.
type Ranking struct {
	Results       []ScenarioResult
	Best          ScenarioResult
	PositionDelta int     // position delta of the best scenario
	TimeDelta     float64 // spread between worst and best total time (s)
}
