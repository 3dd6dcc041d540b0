package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/example/fleet/internal/adapters/memory"
	"github.com/example/fleet/internal/clock"
	coremission "github.com/example/fleet/internal/core/mission"
	"github.com/example/fleet/internal/ports/primary"
	"github.com/example/fleet/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFleetRepository implements secondary.FleetRepository for testing.
type mockFleetRepository struct {
	ships     []*secondary.ShipRecord
	createErr error
	findErr   error
	appendErr error
	updateErr error

	appendCalls int
	updateCalls int
}

func (m *mockFleetRepository) Create(ctx context.Context, ship *secondary.ShipRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	ship.Seq = int64(len(m.ships) + 1)
	m.ships = append(m.ships, ship)
	return nil
}

func (m *mockFleetRepository) FindByShipID(ctx context.Context, shipID int) (*secondary.ShipRecord, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, s := range m.ships {
		if s.ShipID == shipID {
			return s, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockFleetRepository) AppendMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	m.appendCalls++
	if m.appendErr != nil {
		return m.appendErr
	}
	ship := m.ships[seq-1]
	ship.Missions = append(ship.Missions, mission)
	return nil
}

func (m *mockFleetRepository) UpdateLastMission(ctx context.Context, seq int64, mission *secondary.MissionRecord) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	ship := m.ships[seq-1]
	ship.Missions[len(ship.Missions)-1] = mission
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

var testEpoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestFleetService(repo secondary.FleetRepository) (*FleetServiceImpl, *clock.ManualClock) {
	clk := clock.NewManualClock(testEpoch)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFleetService(repo, clk, logger), clk
}

func createVoyager(t *testing.T, svc *FleetServiceImpl) {
	t.Helper()
	_, err := svc.CreateShip(context.Background(), primary.CreateShipRequest{
		ShipID:       1,
		Name:         "Voyager",
		DailyRate:    100,
		FuelCapacity: 10,
	})
	if err != nil {
		t.Fatalf("CreateShip failed: %v", err)
	}
}

func requireGuardError(t *testing.T, err error, wantReason string) {
	t.Helper()
	var guardErr *coremission.GuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("expected *GuardError, got %v", err)
	}
	if guardErr.Reason != wantReason {
		t.Errorf("expected reason %q, got %q", wantReason, guardErr.Reason)
	}
}

// ============================================================================
// CreateShip / Lookup Tests
// ============================================================================

func TestCreateShip_Success(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())

	resp, err := svc.CreateShip(context.Background(), primary.CreateShipRequest{
		ShipID:       7,
		Name:         "Defiant",
		DailyRate:    50,
		FuelCapacity: 4,
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Ship.ShipID != 7 || resp.Ship.Name != "Defiant" {
		t.Errorf("unexpected ship: %+v", resp.Ship)
	}
	if resp.Ship.DailyRate != 50 || resp.Ship.FuelCapacity != 4 {
		t.Errorf("unexpected rates: %+v", resp.Ship)
	}
}

func TestCreateShip_RepositoryError(t *testing.T) {
	repo := &mockFleetRepository{createErr: errors.New("disk on fire")}
	svc, _ := newTestFleetService(repo)

	_, err := svc.CreateShip(context.Background(), primary.CreateShipRequest{ShipID: 1})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStartMission_NotFound(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())

	_, err := svc.StartMission(context.Background(), 404)

	if !errors.Is(err, primary.ErrShipNotFound) {
		t.Errorf("expected ErrShipNotFound, got %v", err)
	}
}

func TestGetMissionLog_DuplicateIDsUseFirst(t *testing.T) {
	svc, clk := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()

	for _, rate := range []float64{1, 1000} {
		if _, err := svc.CreateShip(ctx, primary.CreateShipRequest{ShipID: 1, Name: "Enterprise", DailyRate: rate}); err != nil {
			t.Fatalf("CreateShip failed: %v", err)
		}
	}

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	clk.Advance(2 * time.Second)
	if _, err := svc.EndMission(ctx, 1); err != nil {
		t.Fatalf("EndMission failed: %v", err)
	}

	log, err := svc.GetMissionLog(ctx, 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}
	if log.TotalCost != 2 {
		t.Errorf("expected the first ship's rate to apply (total 2), got %v", log.TotalCost)
	}
}

func TestGetMissionLog_RepositoryError(t *testing.T) {
	repo := &mockFleetRepository{findErr: errors.New("connection reset")}
	svc, _ := newTestFleetService(repo)

	_, err := svc.GetMissionLog(context.Background(), 1)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, primary.ErrShipNotFound) {
		t.Error("repository failure must not be reported as not found")
	}
}

// ============================================================================
// Lifecycle Tests
// ============================================================================

func TestStartThenEnd_SingleMission(t *testing.T) {
	svc, clk := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()
	createVoyager(t, svc)

	started, err := svc.StartMission(ctx, 1)
	if err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	if started.StartStardate != testEpoch.Unix() {
		t.Errorf("expected start stardate %d, got %d", testEpoch.Unix(), started.StartStardate)
	}
	if started.ShipID != 1 {
		t.Errorf("expected ship 1, got %d", started.ShipID)
	}

	clk.Advance(3 * time.Second)
	ended, err := svc.EndMission(ctx, 1)
	if err != nil {
		t.Fatalf("EndMission failed: %v", err)
	}
	if ended.EndStardate < ended.StartStardate {
		t.Errorf("end %d before start %d", ended.EndStardate, ended.StartStardate)
	}

	log, err := svc.GetMissionLog(ctx, 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}
	if len(log.Entries) != 1 {
		t.Fatalf("expected exactly one mission, got %d", len(log.Entries))
	}
	if log.Entries[0].Refuelings != 0 {
		t.Errorf("expected 0 refuelings, got %d", log.Entries[0].Refuelings)
	}
}

func TestStartMission_AlreadyInProgress(t *testing.T) {
	repo := memory.NewFleetRepository()
	svc, _ := newTestFleetService(repo)
	ctx := context.Background()
	createVoyager(t, svc)

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}

	_, err := svc.StartMission(ctx, 1)
	requireGuardError(t, err, "Mission already in progress. End the current mission first.")

	log, err := svc.GetMissionLog(ctx, 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}
	if len(log.Entries) != 1 {
		t.Errorf("expected mission log length 1, got %d", len(log.Entries))
	}
	if len(log.Entries) > 0 && !log.Entries[0].Ongoing {
		t.Error("expected the first mission to stay ongoing")
	}
}

func TestEndMission_NoMissions(t *testing.T) {
	repo := &mockFleetRepository{}
	svc, _ := newTestFleetService(repo)
	createVoyager(t, svc)

	_, err := svc.EndMission(context.Background(), 1)

	requireGuardError(t, err, "No ongoing mission to end.")
	if repo.updateCalls != 0 {
		t.Errorf("expected no repository writes, got %d", repo.updateCalls)
	}
	if len(repo.ships[0].Missions) != 0 {
		t.Errorf("expected empty log, got %d missions", len(repo.ships[0].Missions))
	}
}

func TestEndMission_AfterEnded(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()
	createVoyager(t, svc)

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	if _, err := svc.EndMission(ctx, 1); err != nil {
		t.Fatalf("EndMission failed: %v", err)
	}

	_, err := svc.EndMission(ctx, 1)
	requireGuardError(t, err, "No ongoing mission to end.")
}

func TestRefuel_NoMissions(t *testing.T) {
	repo := &mockFleetRepository{}
	svc, _ := newTestFleetService(repo)
	createVoyager(t, svc)

	_, err := svc.Refuel(context.Background(), 1)

	requireGuardError(t, err, "No ongoing mission to refuel.")
	if repo.updateCalls != 0 {
		t.Errorf("expected no repository writes, got %d", repo.updateCalls)
	}
}

func TestRefuel_CountsUp(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()
	createVoyager(t, svc)

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}

	for want := 1; want <= 3; want++ {
		ev, err := svc.Refuel(ctx, 1)
		if err != nil {
			t.Fatalf("Refuel failed: %v", err)
		}
		if ev.Refuelings != want {
			t.Errorf("expected %d refuelings, got %d", want, ev.Refuelings)
		}
	}
}

func TestLifecycle_ShipNotFound(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()

	ops := map[string]func() error{
		"start":  func() error { _, err := svc.StartMission(ctx, 9); return err },
		"end":    func() error { _, err := svc.EndMission(ctx, 9); return err },
		"refuel": func() error { _, err := svc.Refuel(ctx, 9); return err },
		"log":    func() error { _, err := svc.GetMissionLog(ctx, 9); return err },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, primary.ErrShipNotFound) {
				t.Errorf("expected ErrShipNotFound, got %v", err)
			}
		})
	}
}

func TestStartMission_RepositoryError(t *testing.T) {
	repo := &mockFleetRepository{appendErr: errors.New("write failed")}
	svc, _ := newTestFleetService(repo)
	createVoyager(t, svc)

	_, err := svc.StartMission(context.Background(), 1)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var guardErr *coremission.GuardError
	if errors.As(err, &guardErr) {
		t.Error("repository failure must not be reported as a guard error")
	}
}

// ============================================================================
// Mission Log / Cost Tests
// ============================================================================

func TestGetMissionLog_VoyagerScenario(t *testing.T) {
	svc, clk := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()
	createVoyager(t, svc)

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.Refuel(ctx, 1); err != nil {
			t.Fatalf("Refuel failed: %v", err)
		}
	}
	clk.Advance(5 * time.Second)
	if _, err := svc.EndMission(ctx, 1); err != nil {
		t.Fatalf("EndMission failed: %v", err)
	}

	log, err := svc.GetMissionLog(ctx, 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}

	if log.Entries[0].Cost != 600 {
		t.Errorf("expected mission cost 600, got %v", log.Entries[0].Cost)
	}
	if log.TotalCost != 600 {
		t.Errorf("expected total cost 600, got %v", log.TotalCost)
	}
}

func TestGetMissionLog_OngoingMissionCostsNothing(t *testing.T) {
	svc, clk := newTestFleetService(memory.NewFleetRepository())
	ctx := context.Background()
	createVoyager(t, svc)

	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	clk.Advance(10 * time.Second)
	if _, err := svc.EndMission(ctx, 1); err != nil {
		t.Fatalf("EndMission failed: %v", err)
	}
	if _, err := svc.StartMission(ctx, 1); err != nil {
		t.Fatalf("StartMission failed: %v", err)
	}
	if _, err := svc.Refuel(ctx, 1); err != nil {
		t.Fatalf("Refuel failed: %v", err)
	}

	log, err := svc.GetMissionLog(ctx, 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}

	if len(log.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log.Entries))
	}
	second := log.Entries[1]
	if !second.Ongoing || second.Cost != 0 {
		t.Errorf("expected ongoing mission with zero cost, got %+v", second)
	}
	if second.Number != 2 {
		t.Errorf("expected mission number 2, got %d", second.Number)
	}
	if log.TotalCost != 1000 {
		t.Errorf("expected total 1000, got %v", log.TotalCost)
	}
}

func TestGetMissionLog_Empty(t *testing.T) {
	svc, _ := newTestFleetService(memory.NewFleetRepository())
	createVoyager(t, svc)

	log, err := svc.GetMissionLog(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetMissionLog failed: %v", err)
	}

	if len(log.Entries) != 0 || log.TotalCost != 0 {
		t.Errorf("expected empty log, got %+v", log)
	}
	if log.ShipID != 1 {
		t.Errorf("expected ship 1, got %d", log.ShipID)
	}
}
