// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no ship matches a lookup.
var ErrNotFound = errors.New("not found")

// FleetRepository defines the secondary port for the fleet registry.
// Ships are kept in insertion order and are never removed.
type FleetRepository interface {
	// Create appends a new ship with an empty mission log and assigns its Seq.
	// Ship IDs are not required to be unique.
	Create(ctx context.Context, ship *ShipRecord) error

	// FindByShipID returns the first ship in insertion order with the given ID,
	// with its missions loaded in log order. Returns ErrNotFound if none match.
	FindByShipID(ctx context.Context, shipID int) (*ShipRecord, error)

	// AppendMission appends a mission to the log of the ship at seq.
	AppendMission(ctx context.Context, seq int64, mission *MissionRecord) error

	// UpdateLastMission overwrites the last mission in the log of the ship at seq.
	UpdateLastMission(ctx context.Context, seq int64, mission *MissionRecord) error
}

// ShipRecord represents a ship as stored in the registry.
type ShipRecord struct {
	Seq          int64 // Registry position, assigned by Create (1-based)
	ShipID       int
	Name         string
	DailyRate    float64
	FuelCapacity float64
	Missions     []*MissionRecord
}

// MissionRecord represents one mission as stored in the registry.
type MissionRecord struct {
	HoursSpent    float64
	Refuelings    int
	StartStardate int64
	EndStardate   int64 // 0 while the mission is ongoing
}
