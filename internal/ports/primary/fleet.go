// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"errors"
)

// ErrShipNotFound is returned when no ship has the requested ID.
var ErrShipNotFound = errors.New("starship not found")

// FleetService defines the primary port for fleet and mission operations.
// Implementations live in the application layer, adapters in the CLI layer.
type FleetService interface {
	// CreateShip registers a new ship with an empty mission log.
	CreateShip(ctx context.Context, req CreateShipRequest) (*CreateShipResponse, error)

	// StartMission opens a new mission for the ship.
	StartMission(ctx context.Context, shipID int) (*MissionEvent, error)

	// EndMission closes the ship's ongoing mission.
	EndMission(ctx context.Context, shipID int) (*MissionEvent, error)

	// Refuel records a refueling against the ship's ongoing mission.
	Refuel(ctx context.Context, shipID int) (*MissionEvent, error)

	// GetMissionLog returns the ship's missions with their costs.
	GetMissionLog(ctx context.Context, shipID int) (*MissionLog, error)
}

// CreateShipRequest contains parameters for creating a ship.
type CreateShipRequest struct {
	ShipID       int
	Name         string
	DailyRate    float64
	FuelCapacity float64
}

// CreateShipResponse contains the result of creating a ship.
type CreateShipResponse struct {
	Ship *Ship
}

// Ship represents a ship at the port boundary.
type Ship struct {
	ShipID       int
	Name         string
	DailyRate    float64
	FuelCapacity float64
}

// MissionEvent is the outcome of a lifecycle operation on a ship's last mission.
type MissionEvent struct {
	ShipID        int
	StartStardate int64
	EndStardate   int64
	Refuelings    int
}

// MissionLog is a ship's mission history with costs.
type MissionLog struct {
	ShipID    int
	Entries   []MissionLogEntry
	TotalCost float64
}

// MissionLogEntry is one mission in a MissionLog.
type MissionLogEntry struct {
	Number        int // 1-based
	StartStardate int64
	EndStardate   int64
	Ongoing       bool
	Refuelings    int
	Cost          float64 // 0 while ongoing
}
