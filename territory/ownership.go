package territory

import (
	"time"

	"github.com/turfwars/api-go/models"
)

// OwnershipResolver decides which team controls a location.
//
// Check-in accumulation recomputes a rolling leaderboard over the visit
// window on every accepted check-in; direct capture is an immediate,
// unconditional transfer. Both must run with the location row locked so
// concurrent requests cannot observe the pre-transfer state and double-log
// the change.
type OwnershipResolver struct {
	Window time.Duration
	Ledger CaptureLedger
}

// TeamVisitCount is one team's visit total for a location within the window.
type TeamVisitCount struct {
	TeamID uint
	Visits int64
}

// ResolveCheckIn recomputes the leaderboard for loc after a new visit and
// transfers ownership when the leading team differs from the incumbent.
// It mutates loc in place to reflect the outcome and reports whether a
// transfer occurred. loc must be the row-locked copy.
func (or OwnershipResolver) ResolveCheckIn(tx TxStore, loc *models.Location, actorID uint, now time.Time) (bool, error) {
	counts, err := tx.TeamVisitCounts(loc.ID, now.Add(-or.Window))
	if err != nil {
		return false, err
	}

	leader := leadingTeam(counts, loc.OwnerTeamID)
	if leader == nil || sameTeam(leader, loc.OwnerTeamID) {
		return false, nil
	}

	if err := tx.SetOwner(loc.ID, leader, now); err != nil {
		return false, err
	}
	if err := or.Ledger.Append(tx, loc.ID, actorID, leader, now); err != nil {
		return false, err
	}
	loc.OwnerTeamID = leader
	loc.LastOwnershipChangeAt = &now
	return true, nil
}

// Capture transfers ownership to the actor's team immediately. It rejects a
// no-op transfer: when the actor's team already owns the location (including
// a teamless actor re-capturing an unowned one), ErrAlreadyOwned is
// returned. loc must be the row-locked copy.
func (or OwnershipResolver) Capture(tx TxStore, loc *models.Location, actorID uint, teamID *uint, now time.Time) error {
	if sameTeam(loc.OwnerTeamID, teamID) {
		return ErrAlreadyOwned
	}
	if err := tx.SetOwner(loc.ID, teamID, now); err != nil {
		return err
	}
	if err := or.Ledger.Append(tx, loc.ID, actorID, teamID, now); err != nil {
		return err
	}
	loc.OwnerTeamID = teamID
	loc.LastOwnershipChangeAt = &now
	return nil
}

// leadingTeam picks the team with the most visits in the window. Ties are
// broken deterministically: the incumbent retains ownership when it is among
// the tied leaders, otherwise the lowest team id wins. Returns nil when no
// team has any visits.
func leadingTeam(counts []TeamVisitCount, incumbent *uint) *uint {
	var best *TeamVisitCount
	for i := range counts {
		c := &counts[i]
		switch {
		case best == nil || c.Visits > best.Visits:
			best = c
		case c.Visits == best.Visits:
			if incumbent != nil && c.TeamID == *incumbent {
				best = c
			} else if best.TeamID != teamOrZero(incumbent) && c.TeamID < best.TeamID {
				best = c
			}
		}
	}
	if best == nil {
		return nil
	}
	id := best.TeamID
	return &id
}

func sameTeam(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func teamOrZero(t *uint) uint {
	if t == nil {
		return 0
	}
	return *t
}
