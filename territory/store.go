package territory

import (
	"context"
	"time"

	"github.com/turfwars/api-go/models"
)

// PresenceReader exposes the externally-maintained teammate presence data
// ComboEvaluator needs. activeSince is the oldest heartbeat that still
// counts; teammates without a known position never count.
type PresenceReader interface {
	CountActiveTeammates(ctx context.Context, actorID, teamID uint, activeSince time.Time) (int64, error)
}

// TxStore is the mutating surface handed to the engine inside a request
// transaction. Every method operates on the transaction the callback
// received from Store.Transact, so the whole request commits or rolls back
// as one unit.
type TxStore interface {
	// LockLocation reads the location row with an exclusive row lock
	// (SELECT ... FOR UPDATE), serializing all concurrent requests that
	// target the same location. Returns nil when the location is unknown.
	LockLocation(id uint) (*models.Location, error)

	// LastVisitSince returns the timestamp of the actor's most recent
	// visit at the location at or after `since`, or nil when there is none.
	LastVisitSince(locationID, actorID uint, since time.Time) (*time.Time, error)

	InsertVisit(v *models.VisitRecord) error

	// IncrementWeeklyVisitCount bumps the location's rolling counter with
	// an atomic in-database increment.
	IncrementWeeklyVisitCount(locationID uint) error

	// TeamVisitCounts aggregates visits at the location since `since`,
	// grouped by team. Visits by teamless actors are excluded.
	TeamVisitCounts(locationID uint, since time.Time) ([]TeamVisitCount, error)

	SetOwner(locationID uint, teamID *uint, at time.Time) error

	AppendCaptureEvent(locationID, actorID uint, teamID *uint, occurredAt time.Time) error

	// AddPoints applies the granted amounts to the actor's balance counters
	// as atomic in-database increments, never read-modify-write.
	AddPoints(actorID uint, r Reward) error
}

// CaptureFeedItem is one row of the recent-captures activity feed.
type CaptureFeedItem struct {
	LocationName string    `json:"locationName"`
	ActorName    string    `json:"actorName"`
	TeamName     *string   `json:"teamName"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// Store is the persistence boundary of the engine.
type Store interface {
	PresenceReader

	// GetLocation reads a location without locking it. Returns nil when
	// the id is unknown.
	GetLocation(ctx context.Context, id uint) (*models.Location, error)

	// CurrentTeam resolves the actor's team membership, nil when the actor
	// has no team.
	CurrentTeam(ctx context.Context, actorID uint) (*uint, error)

	// RecentCaptures returns the newest ownership changes first.
	RecentCaptures(ctx context.Context, limit int) ([]CaptureFeedItem, error)

	// Transact runs fn inside a single storage transaction. Any error from
	// fn rolls the transaction back and is returned unchanged.
	Transact(ctx context.Context, fn func(tx TxStore) error) error
}
