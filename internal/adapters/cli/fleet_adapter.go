// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	coremission "github.com/example/fleet/internal/core/mission"
	"github.com/example/fleet/internal/ports/primary"
)

// Console messages.
const (
	MsgShipCreated  = "Starship created."
	MsgShipNotFound = "Starship not found."
	MsgNoMissions   = "No missions logged for this ship."
)

const costPrecision = 6

// FleetAdapter is a thin adapter that translates shell operations to FleetService calls.
// It depends only on the FleetService interface, enabling easy testing with mocks.
//
// Expected outcomes (not found, rejected transitions) are printed and reported
// as success; only unexpected failures are returned.
type FleetAdapter struct {
	service primary.FleetService
	out     io.Writer

	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

// NewFleetAdapter creates a new FleetAdapter with the given service.
func NewFleetAdapter(service primary.FleetService, out io.Writer) *FleetAdapter {
	return &FleetAdapter{
		service: service,
		out:     out,
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
}

// Create registers a new ship.
func (a *FleetAdapter) Create(ctx context.Context, req primary.CreateShipRequest) error {
	if _, err := a.service.CreateShip(ctx, req); err != nil {
		return fmt.Errorf("failed to create starship: %w", err)
	}

	a.ok.Fprintln(a.out, MsgShipCreated)
	return nil
}

// Start starts a mission for the ship.
func (a *FleetAdapter) Start(ctx context.Context, shipID int) error {
	ev, err := a.service.StartMission(ctx, shipID)
	if err != nil {
		return a.expected(err)
	}

	a.ok.Fprintf(a.out, "Mission started at stardate %d\n", ev.StartStardate)
	return nil
}

// End ends the ship's ongoing mission.
func (a *FleetAdapter) End(ctx context.Context, shipID int) error {
	ev, err := a.service.EndMission(ctx, shipID)
	if err != nil {
		return a.expected(err)
	}

	a.ok.Fprintf(a.out, "Mission ended at stardate %d\n", ev.EndStardate)
	return nil
}

// Refuel records a refueling for the ship's ongoing mission.
func (a *FleetAdapter) Refuel(ctx context.Context, shipID int) error {
	ev, err := a.service.Refuel(ctx, shipID)
	if err != nil {
		return a.expected(err)
	}

	a.ok.Fprintf(a.out, "Starship refueled %d times.\n", ev.Refuelings)
	return nil
}

// ViewLog prints the ship's mission log and total cost.
func (a *FleetAdapter) ViewLog(ctx context.Context, shipID int) error {
	log, err := a.service.GetMissionLog(ctx, shipID)
	if err != nil {
		return a.expected(err)
	}

	if len(log.Entries) == 0 {
		fmt.Fprintln(a.out, MsgNoMissions)
		return nil
	}

	for _, m := range log.Entries {
		fmt.Fprintf(a.out, "Mission %d:\n", m.Number)
		fmt.Fprintf(a.out, "  Start Stardate: %d\n", m.StartStardate)
		if m.Ongoing {
			fmt.Fprintf(a.out, "  End Stardate: %s\n", "Ongoing")
		} else {
			fmt.Fprintf(a.out, "  End Stardate: %d\n", m.EndStardate)
		}
		fmt.Fprintf(a.out, "  Refuelings: %d\n", m.Refuelings)
		if !m.Ongoing {
			fmt.Fprintf(a.out, "  Cost: %s\n", FormatCost(m.Cost))
		}
	}
	fmt.Fprintf(a.out, "Total Cost: %s\n", FormatCost(log.TotalCost))

	return nil
}

// Fail prints an unexpected error.
func (a *FleetAdapter) Fail(err error) {
	a.fail.Fprintf(a.out, "Error: %v\n", err)
}

// FormatCost renders a cost with six significant digits, switching to
// exponent form for large amounts (600, 12.346, 1.5e+06).
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'g', costPrecision, 64)
}

// expected prints not-found and guard errors and swallows them.
func (a *FleetAdapter) expected(err error) error {
	if errors.Is(err, primary.ErrShipNotFound) {
		a.warn.Fprintln(a.out, MsgShipNotFound)
		return nil
	}

	var guardErr *coremission.GuardError
	if errors.As(err, &guardErr) {
		a.warn.Fprintln(a.out, guardErr.Reason)
		return nil
	}

	return err
}
