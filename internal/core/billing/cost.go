// Package billing derives mission costs from a ship's rates and mission log.
// This is part of the Functional Core - no I/O, only pure functions.
package billing

import "github.com/example/fleet/internal/core/mission"

// RefuelSurchargeFactor multiplies fuel capacity for every refueling.
const RefuelSurchargeFactor = 5

// Rates are the billing parameters of a ship.
type Rates struct {
	DailyRate    float64
	FuelCapacity float64
}

// MissionCost returns the cost of one mission.
// Ongoing missions cost nothing yet. The duration is the raw stardate
// difference in seconds; it is not converted to days.
func MissionCost(r Rates, m mission.Snapshot) float64 {
	if m.Ongoing() {
		return 0
	}
	duration := float64(m.EndStardate - m.StartStardate)
	return r.DailyRate*duration + float64(m.Refuelings)*r.FuelCapacity*RefuelSurchargeFactor
}

// MissionCostAt returns the cost of the mission at index in log.
func MissionCostAt(r Rates, log []mission.Snapshot, index int) float64 {
	return MissionCost(r, log[index])
}

// TotalCost sums the cost of every mission in log order.
func TotalCost(r Rates, log []mission.Snapshot) float64 {
	var total float64
	for i := range log {
		total += MissionCostAt(r, log, i)
	}
	return total
}
