package territory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/turfwars/api-go/models"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates the PostgreSQL-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetLocation(ctx context.Context, id uint) (*models.Location, error) {
	var loc models.Location
	err := s.db.WithContext(ctx).First(&loc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &loc, nil
}

func (s *gormStore) CurrentTeam(ctx context.Context, actorID uint) (*uint, error) {
	var member models.TeamMember
	err := s.db.WithContext(ctx).Where("user_id = ?", actorID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve team membership: %w", err)
	}
	teamID := member.TeamID
	return &teamID, nil
}

func (s *gormStore) CountActiveTeammates(ctx context.Context, actorID, teamID uint, activeSince time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id = ?", teamID).
		Where("users.id <> ?", actorID).
		Where("users.last_heartbeat >= ?", activeSince).
		Where("users.last_latitude IS NOT NULL AND users.last_longitude IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active teammates: %w", err)
	}
	return count, nil
}

func (s *gormStore) RecentCaptures(ctx context.Context, limit int) ([]CaptureFeedItem, error) {
	var feed []CaptureFeedItem
	err := s.db.WithContext(ctx).Table("capture_events").
		Select("locations.name AS location_name, users.username AS actor_name, teams.name AS team_name, capture_events.occurred_at").
		Joins("JOIN locations ON locations.id = capture_events.location_id").
		Joins("JOIN users ON users.id = capture_events.actor_id").
		Joins("LEFT JOIN teams ON teams.id = capture_events.team_id").
		Order("capture_events.occurred_at DESC, capture_events.id DESC").
		Limit(limit).
		Scan(&feed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent captures: %w", err)
	}
	return feed, nil
}

func (s *gormStore) Transact(ctx context.Context, fn func(tx TxStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) LockLocation(id uint) (*models.Location, error) {
	var loc models.Location
	// SELECT ... FOR UPDATE serializes every concurrent request touching
	// this location for the rest of the transaction.
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&loc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock location: %w", err)
	}
	return &loc, nil
}

func (t *gormTx) LastVisitSince(locationID, actorID uint, since time.Time) (*time.Time, error) {
	var visit models.VisitRecord
	err := t.db.Where("location_id = ? AND actor_id = ? AND created_at >= ?", locationID, actorID, since).
		Order("created_at DESC").
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check recent visits: %w", err)
	}
	return &visit.CreatedAt, nil
}

func (t *gormTx) InsertVisit(v *models.VisitRecord) error {
	if err := t.db.Create(v).Error; err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (t *gormTx) IncrementWeeklyVisitCount(locationID uint) error {
	err := t.db.Model(&models.Location{}).
		Where("id = ?", locationID).
		Update("weekly_visit_count", gorm.Expr("weekly_visit_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment visit count: %w", err)
	}
	return nil
}

func (t *gormTx) TeamVisitCounts(locationID uint, since time.Time) ([]TeamVisitCount, error) {
	var counts []TeamVisitCount
	err := t.db.Model(&models.VisitRecord{}).
		Select("team_id, COUNT(*) AS visits").
		Where("location_id = ? AND created_at >= ? AND team_id IS NOT NULL", locationID, since).
		Group("team_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate team visits: %w", err)
	}
	return counts, nil
}

func (t *gormTx) SetOwner(locationID uint, teamID *uint, at time.Time) error {
	err := t.db.Model(&models.Location{}).
		Where("id = ?", locationID).
		Updates(map[string]interface{}{
			"owner_team_id":            teamID,
			"last_ownership_change_at": at,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to transfer ownership: %w", err)
	}
	return nil
}

func (t *gormTx) AppendCaptureEvent(locationID, actorID uint, teamID *uint, occurredAt time.Time) error {
	event := models.CaptureEvent{
		LocationID: locationID,
		ActorID:    actorID,
		TeamID:     teamID,
		OccurredAt: occurredAt,
	}
	if err := t.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to append capture event: %w", err)
	}
	return nil
}

func (t *gormTx) AddPoints(actorID uint, r Reward) error {
	result := t.db.Model(&models.User{}).
		Where("id = ?", actorID).
		Updates(map[string]interface{}{
			"fuel_points":    gorm.Expr("fuel_points + ?", r.Fuel),
			"respect_points": gorm.Expr("respect_points + ?", r.Respect),
			"xp":             gorm.Expr("xp + ?", r.XP),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to grant points: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to grant points: actor %d not found", actorID)
	}
	return nil
}
