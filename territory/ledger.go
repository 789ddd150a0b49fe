package territory

import (
	"context"
	"time"
)

// CaptureLedger is the append-only audit log of ownership changes. One entry
// per change, in the order changes occurred; there is no deletion API.
type CaptureLedger struct{}

// Append records an ownership change inside the request transaction.
func (CaptureLedger) Append(tx TxStore, locationID, actorID uint, teamID *uint, now time.Time) error {
	return tx.AppendCaptureEvent(locationID, actorID, teamID, now)
}

// Recent returns the latest ownership changes, newest first, joined with
// location, actor and team names for the activity feed.
func (CaptureLedger) Recent(ctx context.Context, s Store, limit int) ([]CaptureFeedItem, error) {
	return s.RecentCaptures(ctx, limit)
}
