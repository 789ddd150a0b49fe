package models

import "time"

// CaptureEvent is the append-only audit record of an ownership change.
// Exactly one row is written per change, in the order changes occurred.
// TeamID is the new owner and may be nil when a teamless actor clears
// ownership via direct capture.
type CaptureEvent struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LocationID uint      `json:"locationId" gorm:"not null;index"`
	ActorID    uint      `json:"actorId" gorm:"not null"`
	TeamID     *uint     `json:"teamId"`
	OccurredAt time.Time `json:"occurredAt" gorm:"not null;index"`
}
