// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/fleet/internal/ports/secondary"
)

// FleetRepository implements secondary.FleetRepository with SQLite.
type FleetRepository struct {
	db *sql.DB
}

// NewFleetRepository creates a new SQLite fleet repository.
func NewFleetRepository(db *sql.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

// Create persists a new ship. Seq comes from the ships rowid.
func (r *FleetRepository) Create(ctx context.Context, ship *secondary.ShipRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO ships (ship_id, name, daily_rate, fuel_capacity) VALUES (?, ?, ?, ?)",
		ship.ShipID, ship.Name, ship.DailyRate, ship.FuelCapacity,
	)
	if err != nil {
		return fmt.Errorf("failed to create ship: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read ship seq: %w", err)
	}
	ship.Seq = seq

	return nil
}

// FindByShipID retrieves the earliest ship with the given ID and its missions.
func (r *FleetRepository) FindByShipID(ctx context.Context, shipID int) (*secondary.ShipRecord, error) {
	record := &secondary.ShipRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT seq, ship_id, name, daily_rate, fuel_capacity FROM ships WHERE ship_id = ? ORDER BY seq LIMIT 1",
		shipID,
	).Scan(&record.Seq, &record.ShipID, &record.Name, &record.DailyRate, &record.FuelCapacity)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ship %d: %w", shipID, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}

	missions, err := r.missions(ctx, record.Seq)
	if err != nil {
		return nil, err
	}
	record.Missions = missions

	return record, nil
}

// AppendMission appends a mission at the next position in the ship's log.
func (r *FleetRepository) AppendMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	if err := r.ensureShip(ctx, seq); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO missions (ship_seq, position, hours_spent, refuelings, start_stardate, end_stardate)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM missions WHERE ship_seq = ?), ?, ?, ?, ?)`,
		seq, seq, mission.HoursSpent, mission.Refuelings, mission.StartStardate, mission.EndStardate,
	)
	if err != nil {
		return fmt.Errorf("failed to append mission: %w", err)
	}

	return nil
}

// UpdateLastMission overwrites the highest-positioned mission of the ship.
func (r *FleetRepository) UpdateLastMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE missions
		SET hours_spent = ?, refuelings = ?, start_stardate = ?, end_stardate = ?
		WHERE ship_seq = ? AND position = (SELECT MAX(position) FROM missions WHERE ship_seq = ?)`,
		mission.HoursSpent, mission.Refuelings, mission.StartStardate, mission.EndStardate, seq, seq,
	)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("ship seq %d has no missions", seq)
	}

	return nil
}

func (r *FleetRepository) missions(ctx context.Context, seq int64) ([]*secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT hours_spent, refuelings, start_stardate, end_stardate FROM missions WHERE ship_seq = ? ORDER BY position",
		seq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	missions := []*secondary.MissionRecord{}
	for rows.Next() {
		m := &secondary.MissionRecord{}
		if err := rows.Scan(&m.HoursSpent, &m.Refuelings, &m.StartStardate, &m.EndStardate); err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return missions, nil
}

func (r *FleetRepository) ensureShip(ctx context.Context, seq int64) error {
	var exists int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ships WHERE seq = ?", seq).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check ship: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("ship seq %d: %w", seq, secondary.ErrNotFound)
	}
	return nil
}

// Ensure FleetRepository implements the interface
var _ secondary.FleetRepository = (*FleetRepository)(nil)
