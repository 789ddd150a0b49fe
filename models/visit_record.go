package models

import "time"

// VisitRecord is one accepted check-in. Rows are immutable once written;
// CreatedAt is server-assigned. The 7-day ownership leaderboard and the
// rate limiter both read this table, so it carries a composite index on
// (location_id, actor_id, created_at).
type VisitRecord struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LocationID uint      `json:"locationId" gorm:"not null;index:idx_visits_loc_actor_time,priority:1"`
	ActorID    uint      `json:"actorId" gorm:"not null;index:idx_visits_loc_actor_time,priority:2"`
	TeamID     *uint     `json:"teamId" gorm:"index"`
	Latitude   float64   `json:"latitude" gorm:"type:decimal(10,8)"`
	Longitude  float64   `json:"longitude" gorm:"type:decimal(11,8)"`
	CreatedAt  time.Time `json:"createdAt" gorm:"index:idx_visits_loc_actor_time,priority:3"`
}
