package territory

import "time"

// RateLimiter enforces a minimum interval between accepted check-ins by the
// same actor at the same location.
//
// A plain check-then-insert is not race-safe on its own: two concurrent
// requests could both pass the check. Allow therefore must run inside the
// request transaction, after the location row has been locked FOR UPDATE.
// The row lock serializes every check-in at the location, so at most one of
// two concurrent requests can observe an empty cooldown window.
type RateLimiter struct {
	Cooldown time.Duration
}

// Allow reports whether the actor may check in at the location at `now`.
// When denied, retryAfter is the remaining cooldown.
func (rl RateLimiter) Allow(tx TxStore, actorID, locationID uint, now time.Time) (retryAfter time.Duration, ok bool, err error) {
	last, err := tx.LastVisitSince(locationID, actorID, now.Add(-rl.Cooldown))
	if err != nil {
		return 0, false, err
	}
	if last == nil {
		return 0, true, nil
	}
	remaining := rl.Cooldown - now.Sub(*last)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, false, nil
}
