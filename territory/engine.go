package territory

import (
	"context"
	"time"

	"github.com/turfwars/api-go/models"
)

// Config carries the policy knobs of the engine. Everything here is tunable
// via environment configuration; see config.Load.
type Config struct {
	CheckInRadiusMeters float64
	CaptureRadiusMeters float64
	CheckInCooldown     time.Duration
	PresenceWindow      time.Duration
	ComboMinTeammates   int
	ComboMultiplier     float64
	LeaderboardWindow   time.Duration
	CheckInReward       Reward
	CaptureReward       Reward
}

// DefaultConfig mirrors the production tuning.
func DefaultConfig() Config {
	return Config{
		CheckInRadiusMeters: 200,
		CaptureRadiusMeters: 100,
		CheckInCooldown:     60 * time.Second,
		PresenceWindow:      5 * time.Minute,
		ComboMinTeammates:   2,
		ComboMultiplier:     1.5,
		LeaderboardWindow:   7 * 24 * time.Hour,
		CheckInReward:       Reward{Fuel: 10, Respect: 5, XP: 20},
		CaptureReward:       Reward{Fuel: 0, Respect: 50, XP: 100},
	}
}

// Engine runs the territory control flows. A single inbound request maps to
// a single storage transaction: rate-limit check, visit insert, counter
// increment, ownership recompute and reward grant commit or fail together.
type Engine struct {
	store    Store
	cfg      Config
	limiter  RateLimiter
	combo    ComboEvaluator
	issuer   RewardIssuer
	resolver OwnershipResolver
	ledger   CaptureLedger
}

// NewEngine wires the engine components from one config.
func NewEngine(store Store, cfg Config) *Engine {
	ledger := CaptureLedger{}
	return &Engine{
		store:   store,
		cfg:     cfg,
		limiter: RateLimiter{Cooldown: cfg.CheckInCooldown},
		combo: ComboEvaluator{
			Window:             cfg.PresenceWindow,
			MinActiveTeammates: cfg.ComboMinTeammates,
			Bonus:              cfg.ComboMultiplier,
		},
		issuer:   RewardIssuer{},
		resolver: OwnershipResolver{Window: cfg.LeaderboardWindow, Ledger: ledger},
		ledger:   ledger,
	}
}

// CheckInResult is the outcome of an accepted check-in.
type CheckInResult struct {
	Location             *models.Location
	Reward               Reward
	Multiplier           float64
	OwnershipTransferred bool
	DistanceMeters       float64
}

// CaptureResult is the outcome of an accepted direct capture.
type CaptureResult struct {
	Location       *models.Location
	Reward         Reward
	DistanceMeters float64
}

// CheckIn validates and applies a check-in by actorID at locationID from the
// submitted position. Failure modes: ErrLocationNotFound, *TooFarError,
// *RateLimitedError, or a wrapped storage error (in which case nothing was
// committed).
func (e *Engine) CheckIn(ctx context.Context, actorID uint, locationID uint, position Coordinate, now time.Time) (*CheckInResult, error) {
	loc, err := e.store.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}

	distance := DistanceMeters(position, Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude})
	if distance > e.cfg.CheckInRadiusMeters {
		return nil, &TooFarError{DistanceMeters: distance, RadiusMeters: e.cfg.CheckInRadiusMeters}
	}

	teamID, err := e.store.CurrentTeam(ctx, actorID)
	if err != nil {
		return nil, err
	}

	// Presence is externally maintained and frequently updated; reading it
	// outside the transaction keeps the locked section short.
	multiplier, err := e.combo.Multiplier(ctx, e.store, actorID, teamID, now)
	if err != nil {
		return nil, err
	}

	result := &CheckInResult{Multiplier: multiplier, DistanceMeters: distance}
	err = e.store.Transact(ctx, func(tx TxStore) error {
		locked, err := tx.LockLocation(locationID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrLocationNotFound
		}

		retryAfter, ok, err := e.limiter.Allow(tx, actorID, locationID, now)
		if err != nil {
			return err
		}
		if !ok {
			return &RateLimitedError{RetryAfter: retryAfter}
		}

		visit := &models.VisitRecord{
			LocationID: locationID,
			ActorID:    actorID,
			TeamID:     teamID,
			Latitude:   position.Latitude,
			Longitude:  position.Longitude,
			CreatedAt:  now,
		}
		if err := tx.InsertVisit(visit); err != nil {
			return err
		}
		if err := tx.IncrementWeeklyVisitCount(locationID); err != nil {
			return err
		}
		locked.WeeklyVisitCount++

		transferred, err := e.resolver.ResolveCheckIn(tx, locked, actorID, now)
		if err != nil {
			return err
		}
		result.OwnershipTransferred = transferred

		granted, err := e.issuer.Grant(tx, actorID, e.cfg.CheckInReward, multiplier)
		if err != nil {
			return err
		}
		result.Reward = granted
		result.Location = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Capture validates and applies an immediate ownership transfer to the
// actor's team. Failure modes: ErrLocationNotFound, *TooFarError,
// ErrAlreadyOwned, or a wrapped storage error.
func (e *Engine) Capture(ctx context.Context, actorID uint, locationID uint, position Coordinate, now time.Time) (*CaptureResult, error) {
	loc, err := e.store.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}

	distance := DistanceMeters(position, Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude})
	if distance > e.cfg.CaptureRadiusMeters {
		return nil, &TooFarError{DistanceMeters: distance, RadiusMeters: e.cfg.CaptureRadiusMeters}
	}

	teamID, err := e.store.CurrentTeam(ctx, actorID)
	if err != nil {
		return nil, err
	}

	result := &CaptureResult{DistanceMeters: distance}
	err = e.store.Transact(ctx, func(tx TxStore) error {
		locked, err := tx.LockLocation(locationID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrLocationNotFound
		}

		if err := e.resolver.Capture(tx, locked, actorID, teamID, now); err != nil {
			return err
		}

		granted, err := e.issuer.Grant(tx, actorID, e.cfg.CaptureReward, 1.0)
		if err != nil {
			return err
		}
		result.Reward = granted
		result.Location = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecentCaptures returns the latest ownership changes for the activity feed,
// newest first.
func (e *Engine) RecentCaptures(ctx context.Context, limit int) ([]CaptureFeedItem, error) {
	return e.ledger.Recent(ctx, e.store, limit)
}
