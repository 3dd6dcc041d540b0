// Package repotest holds behaviour tests every secondary.FleetRepository must pass.
package repotest

import (
	"context"
	"errors"
	"testing"

	"github.com/example/fleet/internal/ports/secondary"
)

// RunFleetRepositoryContract runs the registry contract against repositories
// produced by newRepo. Each subtest gets a fresh, empty repository.
func RunFleetRepositoryContract(t *testing.T, newRepo func(t *testing.T) secondary.FleetRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("Create assigns seq in insertion order", func(t *testing.T) {
		repo := newRepo(t)

		first := &secondary.ShipRecord{ShipID: 1, Name: "Voyager", DailyRate: 100, FuelCapacity: 10}
		second := &secondary.ShipRecord{ShipID: 2, Name: "Defiant", DailyRate: 50, FuelCapacity: 4}
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := repo.Create(ctx, second); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if first.Seq != 1 || second.Seq != 2 {
			t.Errorf("expected seq 1 and 2, got %d and %d", first.Seq, second.Seq)
		}
	})

	t.Run("FindByShipID returns stored fields", func(t *testing.T) {
		repo := newRepo(t)
		mustCreate(t, repo, &secondary.ShipRecord{ShipID: 42, Name: "Enterprise NCC-1701", DailyRate: 12.5, FuelCapacity: 7.25})

		got, err := repo.FindByShipID(ctx, 42)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		if got.Name != "Enterprise NCC-1701" {
			t.Errorf("expected name 'Enterprise NCC-1701', got %q", got.Name)
		}
		if got.DailyRate != 12.5 || got.FuelCapacity != 7.25 {
			t.Errorf("unexpected rates: %v / %v", got.DailyRate, got.FuelCapacity)
		}
		if len(got.Missions) != 0 {
			t.Errorf("expected empty mission log, got %d missions", len(got.Missions))
		}
	})

	t.Run("FindByShipID missing ship returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		mustCreate(t, repo, &secondary.ShipRecord{ShipID: 1, Name: "Voyager"})

		_, err := repo.FindByShipID(ctx, 99)
		if !errors.Is(err, secondary.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate ship IDs resolve to the first created", func(t *testing.T) {
		repo := newRepo(t)
		mustCreate(t, repo, &secondary.ShipRecord{ShipID: 1, Name: "First"})
		mustCreate(t, repo, &secondary.ShipRecord{ShipID: 1, Name: "Second"})

		got, err := repo.FindByShipID(ctx, 1)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		if got.Name != "First" || got.Seq != 1 {
			t.Errorf("expected first ship (seq 1), got %q (seq %d)", got.Name, got.Seq)
		}
	})

	t.Run("lookup is repeatable", func(t *testing.T) {
		repo := newRepo(t)
		mustCreate(t, repo, &secondary.ShipRecord{ShipID: 3, Name: "Reliant", DailyRate: 1})

		a, errA := repo.FindByShipID(ctx, 3)
		b, errB := repo.FindByShipID(ctx, 3)
		if errA != nil || errB != nil {
			t.Fatalf("FindByShipID failed: %v / %v", errA, errB)
		}
		if a.Seq != b.Seq || a.Name != b.Name || len(a.Missions) != len(b.Missions) {
			t.Errorf("expected equivalent results, got %+v and %+v", a, b)
		}
	})

	t.Run("missions append and update in log order", func(t *testing.T) {
		repo := newRepo(t)
		ship := &secondary.ShipRecord{ShipID: 5, Name: "Excelsior"}
		mustCreate(t, repo, ship)

		if err := repo.AppendMission(ctx, ship.Seq, &secondary.MissionRecord{StartStardate: 100, EndStardate: 110}); err != nil {
			t.Fatalf("AppendMission failed: %v", err)
		}
		if err := repo.AppendMission(ctx, ship.Seq, &secondary.MissionRecord{StartStardate: 200}); err != nil {
			t.Fatalf("AppendMission failed: %v", err)
		}
		if err := repo.UpdateLastMission(ctx, ship.Seq, &secondary.MissionRecord{StartStardate: 200, Refuelings: 3}); err != nil {
			t.Fatalf("UpdateLastMission failed: %v", err)
		}

		got, err := repo.FindByShipID(ctx, 5)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		if len(got.Missions) != 2 {
			t.Fatalf("expected 2 missions, got %d", len(got.Missions))
		}
		if got.Missions[0].StartStardate != 100 || got.Missions[0].EndStardate != 110 {
			t.Errorf("first mission changed: %+v", got.Missions[0])
		}
		if got.Missions[1].Refuelings != 3 || got.Missions[1].EndStardate != 0 {
			t.Errorf("last mission not updated: %+v", got.Missions[1])
		}
	})

	t.Run("missions attach to the ship at seq, not every ship with the ID", func(t *testing.T) {
		repo := newRepo(t)
		first := &secondary.ShipRecord{ShipID: 1, Name: "First"}
		second := &secondary.ShipRecord{ShipID: 1, Name: "Second"}
		mustCreate(t, repo, first)
		mustCreate(t, repo, second)

		if err := repo.AppendMission(ctx, second.Seq, &secondary.MissionRecord{StartStardate: 10}); err != nil {
			t.Fatalf("AppendMission failed: %v", err)
		}

		got, err := repo.FindByShipID(ctx, 1)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		if len(got.Missions) != 0 {
			t.Errorf("expected first ship to have no missions, got %d", len(got.Missions))
		}
	})

	t.Run("UpdateLastMission on empty log fails", func(t *testing.T) {
		repo := newRepo(t)
		ship := &secondary.ShipRecord{ShipID: 8, Name: "Yamato"}
		mustCreate(t, repo, ship)

		if err := repo.UpdateLastMission(ctx, ship.Seq, &secondary.MissionRecord{EndStardate: 5}); err == nil {
			t.Error("expected error updating empty mission log")
		}
	})

	t.Run("AppendMission unknown seq fails", func(t *testing.T) {
		repo := newRepo(t)

		if err := repo.AppendMission(ctx, 12, &secondary.MissionRecord{StartStardate: 1}); err == nil {
			t.Error("expected error for unknown seq")
		}
	})

	t.Run("returned records are copies", func(t *testing.T) {
		repo := newRepo(t)
		ship := &secondary.ShipRecord{ShipID: 9, Name: "Stargazer"}
		mustCreate(t, repo, ship)
		if err := repo.AppendMission(ctx, ship.Seq, &secondary.MissionRecord{StartStardate: 1}); err != nil {
			t.Fatalf("AppendMission failed: %v", err)
		}

		got, err := repo.FindByShipID(ctx, 9)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		got.Name = "Changed"
		got.Missions[0].Refuelings = 50
		got.Missions = append(got.Missions, &secondary.MissionRecord{})

		again, err := repo.FindByShipID(ctx, 9)
		if err != nil {
			t.Fatalf("FindByShipID failed: %v", err)
		}
		if again.Name != "Stargazer" || len(again.Missions) != 1 || again.Missions[0].Refuelings != 0 {
			t.Errorf("registry changed through returned record: %+v", again)
		}
	})
}

func mustCreate(t *testing.T, repo secondary.FleetRepository, ship *secondary.ShipRecord) {
	t.Helper()
	if err := repo.Create(context.Background(), ship); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
}
