// Package memory contains in-process implementations of repository interfaces.
package memory

import (
	"context"
	"fmt"

	"github.com/example/fleet/internal/ports/secondary"
)

// FleetRepository implements secondary.FleetRepository over an ordered slice.
// Lookup is a linear scan, first match wins.
type FleetRepository struct {
	ships []*secondary.ShipRecord
}

// NewFleetRepository creates an empty registry.
func NewFleetRepository() *FleetRepository {
	return &FleetRepository{}
}

// Create appends a new ship.
func (r *FleetRepository) Create(ctx context.Context, ship *secondary.ShipRecord) error {
	stored := copyShip(ship)
	stored.Seq = int64(len(r.ships) + 1)
	stored.Missions = nil
	r.ships = append(r.ships, stored)

	ship.Seq = stored.Seq
	return nil
}

// FindByShipID returns a copy of the first ship with the given ID.
func (r *FleetRepository) FindByShipID(ctx context.Context, shipID int) (*secondary.ShipRecord, error) {
	for _, ship := range r.ships {
		if ship.ShipID == shipID {
			return copyShip(ship), nil
		}
	}
	return nil, fmt.Errorf("ship %d: %w", shipID, secondary.ErrNotFound)
}

// AppendMission appends a mission to the ship at seq.
func (r *FleetRepository) AppendMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	ship, err := r.bySeq(seq)
	if err != nil {
		return err
	}
	m := *mission
	ship.Missions = append(ship.Missions, &m)
	return nil
}

// UpdateLastMission overwrites the last mission of the ship at seq.
func (r *FleetRepository) UpdateLastMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	ship, err := r.bySeq(seq)
	if err != nil {
		return err
	}
	if len(ship.Missions) == 0 {
		return fmt.Errorf("ship seq %d has no missions", seq)
	}
	m := *mission
	ship.Missions[len(ship.Missions)-1] = &m
	return nil
}

func (r *FleetRepository) bySeq(seq int64) (*secondary.ShipRecord, error) {
	if seq < 1 || seq > int64(len(r.ships)) {
		return nil, fmt.Errorf("ship seq %d: %w", seq, secondary.ErrNotFound)
	}
	return r.ships[seq-1], nil
}

func copyShip(ship *secondary.ShipRecord) *secondary.ShipRecord {
	c := *ship
	c.Missions = make([]*secondary.MissionRecord, len(ship.Missions))
	for i, m := range ship.Missions {
		mc := *m
		c.Missions[i] = &mc
	}
	return &c
}

// Ensure FleetRepository implements the interface
var _ secondary.FleetRepository = (*FleetRepository)(nil)
