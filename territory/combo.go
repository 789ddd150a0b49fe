package territory

import (
	"context"
	"time"
)

// ComboEvaluator decides whether the squad bonus applies to a visit.
//
// The rule: count distinct teammates (excluding the actor) whose last
// presence heartbeat is within Window of now and who have a known position.
// When that count reaches MinActiveTeammates, the bonus multiplier applies —
// i.e. with the default threshold of 2, three or more members of the team
// are active at once, counting the actor.
//
// Presence data is owned and written by the client heartbeat path; this is
// strictly a read.
type ComboEvaluator struct {
	Window             time.Duration
	MinActiveTeammates int
	Bonus              float64
}

// Multiplier returns the reward multiplier for a visit by the actor.
// Actors without a team never qualify.
func (c ComboEvaluator) Multiplier(ctx context.Context, presence PresenceReader, actorID uint, teamID *uint, now time.Time) (float64, error) {
	if teamID == nil {
		return 1.0, nil
	}
	active, err := presence.CountActiveTeammates(ctx, actorID, *teamID, now.Add(-c.Window))
	if err != nil {
		return 0, err
	}
	if active >= int64(c.MinActiveTeammates) {
		return c.Bonus, nil
	}
	return 1.0, nil
}
