package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/fleet/internal/clock"
	"github.com/example/fleet/internal/core/billing"
	coremission "github.com/example/fleet/internal/core/mission"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

// FleetServiceImpl implements the FleetService interface.
type FleetServiceImpl struct {
	fleetRepo secondary.FleetRepository
	clk       clock.Clock
	logger    *slog.Logger
}

// NewFleetService creates a new FleetService with injected dependencies.
func NewFleetService(fleetRepo secondary.FleetRepository, clk clock.Clock, logger *slog.Logger) *FleetServiceImpl {
	return &FleetServiceImpl{
		fleetRepo: fleetRepo,
		clk:       clk,
		logger:    logger,
	}
}

// CreateShip registers a new ship. Duplicate ship IDs are accepted.
func (s *FleetServiceImpl) CreateShip(ctx context.Context, req primary.CreateShipRequest) (*primary.CreateShipResponse, error) {
	record := &secondary.ShipRecord{
		ShipID:       req.ShipID,
		Name:         req.Name,
		DailyRate:    req.DailyRate,
		FuelCapacity: req.FuelCapacity,
	}

	if err := s.fleetRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}

	s.logger.DebugContext(ctx, "ship created", "ship_id", record.ShipID, "seq", record.Seq, "name", record.Name)

	return &primary.CreateShipResponse{
		Ship: s.recordToShip(record),
	}, nil
}

// StartMission opens a new mission for the ship.
func (s *FleetServiceImpl) StartMission(ctx context.Context, shipID int) (*primary.MissionEvent, error) {
	// 1. Fetch ship
	ship, err := s.findShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	// 2. Check guard
	if result := coremission.CanStartMission(stateContext(ship)); !result.Allowed {
		s.logRejected(ctx, "start", ship, result)
		return nil, result.Error()
	}

	// 3. Apply transition and persist
	started := coremission.StartTransition(s.clk.Now())
	if err := s.fleetRepo.AppendMission(ctx, ship.Seq, snapshotToRecord(started)); err != nil {
		return nil, fmt.Errorf("failed to start mission: %w", err)
	}

	s.logger.DebugContext(ctx, "mission started", "ship_id", ship.ShipID, "seq", ship.Seq, "stardate", started.StartStardate)

	return missionEvent(ship.ShipID, started), nil
}

// EndMission closes the ship's ongoing mission.
func (s *FleetServiceImpl) EndMission(ctx context.Context, shipID int) (*primary.MissionEvent, error) {
	ship, err := s.findShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	if result := coremission.CanEndMission(stateContext(ship)); !result.Allowed {
		s.logRejected(ctx, "end", ship, result)
		return nil, result.Error()
	}

	last := len(ship.Missions) - 1
	ended := coremission.EndTransition(recordToSnapshot(ship.Missions[last]), s.clk.Now())
	if err := s.fleetRepo.UpdateLastMission(ctx, ship.Seq, snapshotToRecord(ended)); err != nil {
		return nil, fmt.Errorf("failed to end mission: %w", err)
	}

	s.logger.DebugContext(ctx, "mission ended", "ship_id", ship.ShipID, "seq", ship.Seq, "stardate", ended.EndStardate)

	return missionEvent(ship.ShipID, ended), nil
}

// Refuel records a refueling against the ship's ongoing mission.
func (s *FleetServiceImpl) Refuel(ctx context.Context, shipID int) (*primary.MissionEvent, error) {
	ship, err := s.findShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	if result := coremission.CanRefuel(stateContext(ship)); !result.Allowed {
		s.logRejected(ctx, "refuel", ship, result)
		return nil, result.Error()
	}

	last := len(ship.Missions) - 1
	refueled := coremission.RefuelTransition(recordToSnapshot(ship.Missions[last]))
	if err := s.fleetRepo.UpdateLastMission(ctx, ship.Seq, snapshotToRecord(refueled)); err != nil {
		return nil, fmt.Errorf("failed to refuel: %w", err)
	}

	s.logger.DebugContext(ctx, "ship refueled", "ship_id", ship.ShipID, "seq", ship.Seq, "refuelings", refueled.Refuelings)

	return missionEvent(ship.ShipID, refueled), nil
}

// GetMissionLog returns the ship's missions with per-mission and total cost.
func (s *FleetServiceImpl) GetMissionLog(ctx context.Context, shipID int) (*primary.MissionLog, error) {
	ship, err := s.findShip(ctx, shipID)
	if err != nil {
		return nil, err
	}

	rates := billing.Rates{DailyRate: ship.DailyRate, FuelCapacity: ship.FuelCapacity}
	snapshots := make([]coremission.Snapshot, len(ship.Missions))
	for i, m := range ship.Missions {
		snapshots[i] = recordToSnapshot(m)
	}

	entries := make([]primary.MissionLogEntry, len(snapshots))
	for i, m := range snapshots {
		entries[i] = primary.MissionLogEntry{
			Number:        i + 1,
			StartStardate: m.StartStardate,
			EndStardate:   m.EndStardate,
			Ongoing:       m.Ongoing(),
			Refuelings:    m.Refuelings,
			Cost:          billing.MissionCostAt(rates, snapshots, i),
		}
	}

	return &primary.MissionLog{
		ShipID:    ship.ShipID,
		Entries:   entries,
		TotalCost: billing.TotalCost(rates, snapshots),
	}, nil
}

// Helper methods

func (s *FleetServiceImpl) findShip(ctx context.Context, shipID int) (*secondary.ShipRecord, error) {
	record, err := s.fleetRepo.FindByShipID(ctx, shipID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("ship %d: %w", shipID, primary.ErrShipNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ship: %w", err)
	}
	return record, nil
}

func (s *FleetServiceImpl) logRejected(ctx context.Context, op string, ship *secondary.ShipRecord, result coremission.GuardResult) {
	s.logger.InfoContext(ctx, "mission transition rejected", "op", op, "ship_id", ship.ShipID, "seq", ship.Seq, "reason", result.Reason)
}

func (s *FleetServiceImpl) recordToShip(r *secondary.ShipRecord) *primary.Ship {
	return &primary.Ship{
		ShipID:       r.ShipID,
		Name:         r.Name,
		DailyRate:    r.DailyRate,
		FuelCapacity: r.FuelCapacity,
	}
}

func stateContext(ship *secondary.ShipRecord) coremission.StateContext {
	ctx := coremission.StateContext{
		ShipID:       ship.ShipID,
		MissionCount: len(ship.Missions),
	}
	if n := len(ship.Missions); n > 0 {
		ctx.LastEndStardate = ship.Missions[n-1].EndStardate
	}
	return ctx
}

func recordToSnapshot(r *secondary.MissionRecord) coremission.Snapshot {
	return coremission.Snapshot{
		HoursSpent:    r.HoursSpent,
		Refuelings:    r.Refuelings,
		StartStardate: r.StartStardate,
		EndStardate:   r.EndStardate,
	}
}

func snapshotToRecord(m coremission.Snapshot) *secondary.MissionRecord {
	return &secondary.MissionRecord{
		HoursSpent:    m.HoursSpent,
		Refuelings:    m.Refuelings,
		StartStardate: m.StartStardate,
		EndStardate:   m.EndStardate,
	}
}

func missionEvent(shipID int, m coremission.Snapshot) *primary.MissionEvent {
	return &primary.MissionEvent{
		ShipID:        shipID,
		StartStardate: m.StartStardate,
		EndStardate:   m.EndStardate,
		Refuelings:    m.Refuelings,
	}
}

// Ensure FleetServiceImpl implements the interface
var _ primary.FleetService = (*FleetServiceImpl)(nil)
