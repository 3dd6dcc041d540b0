// Package mission contains the pure business logic for mission operations.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

// Status represents the lifecycle state of a ship, derived from its mission log.
type Status string

const (
	// StatusIdle means the ship has no missions or its last mission has ended.
	StatusIdle Status = "idle"
	// StatusActive means the last mission in the ship's log is still ongoing.
	StatusActive Status = "active"
)

// Guard reasons are shown to the user verbatim.
const (
	ReasonAlreadyInProgress = "Mission already in progress. End the current mission first."
	ReasonNoMissionToEnd    = "No ongoing mission to end."
	ReasonNoMissionToRefuel = "No ongoing mission to refuel."
)

// StateContext provides context for state-based mission guards.
// Populated by the caller from the ship's mission log.
type StateContext struct {
	ShipID          int
	MissionCount    int
	LastEndStardate int64 // End stardate of the last mission (ignored when MissionCount is 0)
}

// Status derives the ship's lifecycle state.
func (c StateContext) Status() Status {
	if c.MissionCount > 0 && c.LastEndStardate == OngoingStardate {
		return StatusActive
	}
	return StatusIdle
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// GuardError is returned by GuardResult.Error for a rejected transition.
type GuardError struct {
	Reason string
}

func (e *GuardError) Error() string {
	return e.Reason
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &GuardError{Reason: r.Reason}
}

// CanStartMission evaluates whether a new mission can be started.
// Rule: only one mission may be ongoing, so the ship must be idle.
func CanStartMission(ctx StateContext) GuardResult {
	if ctx.Status() == StatusActive {
		return GuardResult{Allowed: false, Reason: ReasonAlreadyInProgress}
	}
	return GuardResult{Allowed: true}
}

// CanEndMission evaluates whether the ongoing mission can be ended.
// Rule: the ship must be active.
func CanEndMission(ctx StateContext) GuardResult {
	if ctx.Status() != StatusActive {
		return GuardResult{Allowed: false, Reason: ReasonNoMissionToEnd}
	}
	return GuardResult{Allowed: true}
}

// CanRefuel evaluates whether the ship can be refueled.
// Rule: refueling is only recorded against an ongoing mission.
func CanRefuel(ctx StateContext) GuardResult {
	if ctx.Status() != StatusActive {
		return GuardResult{Allowed: false, Reason: ReasonNoMissionToRefuel}
	}
	return GuardResult{Allowed: true}
}
