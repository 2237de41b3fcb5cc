package simulation

// SimulateStint runs the laps from startLap to endLap inclusive on one set
// of tires and returns the accumulated time plus the individual lap times.
// Tire age starts at startTireAge and grows by one per lap; the first lap
// uses startTireAge as is. A range with startLap > endLap yields an empty
// result, which happens naturally when a scenario pits on the current lap.
func (s *Simulator) SimulateStint(
	startLap, endLap int,
	compound TireCompound,
	startTireAge int,
	weather Weather,
) (totalTime float64, lapTimes []float64) {
	lapTimes = make([]float64, 0, max(0, endLap-startLap+1))
	tireAge := startTireAge
	for lap := startLap; lap <= endLap; lap++ {
		lapTime := s.LapTime(compound, tireAge, weather)
		totalTime += lapTime
		lapTimes = append(lapTimes, lapTime)
		tireAge++
	}
	return totalTime, lapTimes
}
