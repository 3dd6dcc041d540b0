// Package mission contains the pure business logic for mission operations.
// This is part of the Functional Core - no I/O, only pure functions.
package mission

import "time"

// OngoingStardate is the end stardate of a mission that has not ended yet.
const OngoingStardate int64 = 0

// Snapshot holds the values of one mission.
type Snapshot struct {
	HoursSpent    float64 // never computed; kept for record compatibility
	Refuelings    int
	StartStardate int64
	EndStardate   int64
}

// Ongoing reports whether the mission has not ended.
func (s Snapshot) Ongoing() bool {
	return s.EndStardate == OngoingStardate
}

// Stardate converts a wall-clock time to a stardate (seconds since the epoch).
func Stardate(t time.Time) int64 {
	return t.Unix()
}

// StartTransition returns the values of a freshly started mission.
// The caller should pass the current time to enable testing.
func StartTransition(now time.Time) Snapshot {
	return Snapshot{
		StartStardate: Stardate(now),
		EndStardate:   OngoingStardate,
	}
}

// EndTransition closes the mission at now.
func EndTransition(m Snapshot, now time.Time) Snapshot {
	m.EndStardate = Stardate(now)
	return m
}

// RefuelTransition records one more refueling.
func RefuelTransition(m Snapshot) Snapshot {
	m.Refuelings++
	return m
}
