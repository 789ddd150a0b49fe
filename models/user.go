package models

import (
	"time"

	"gorm.io/gorm"
)

// User holds the actor identity plus the three balance counters this service
// increments. Account management (registration, passwords, profile editing)
// lives in the account service; rows here are read-only except for the
// counters, which are only ever incremented atomically.
//
// The presence fields (LastHeartbeat, LastLatitude, LastLongitude) are
// written by the mobile client's position heartbeat, not by this service.
// ComboEvaluator reads them to detect teammates active nearby.
type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Avatar        string         `json:"avatar"`
	FuelPoints    int            `gorm:"not null;default:0" json:"fuel_points"`
	RespectPoints int            `gorm:"not null;default:0" json:"respect_points"`
	XP            int            `gorm:"not null;default:0" json:"xp"`
	LastHeartbeat *time.Time     `json:"last_heartbeat"`
	LastLatitude  *float64       `gorm:"type:decimal(10,8)" json:"last_latitude"`
	LastLongitude *float64       `gorm:"type:decimal(11,8)" json:"last_longitude"`
}
