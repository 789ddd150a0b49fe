package models

import (
	"time"

	"github.com/lib/pq"
)

// Location is a fixed real-world point of interest that can be controlled by
// a team. Latitude/longitude are set at import time and never change; the
// ownership fields are the only columns this service mutates.
type Location struct {
	ID                    uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                  string         `json:"name" gorm:"not null"`
	Description           string         `json:"description" gorm:"type:text"`
	Categories            pq.StringArray `json:"categories" gorm:"type:text[]"`
	Address               string         `json:"address"`
	Phone                 string         `json:"phone"`
	Website               string         `json:"website"`
	LogoURL               string         `json:"logoUrl"`
	Latitude              float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude             float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	IsPartner             bool           `json:"isPartner" gorm:"default:false"`
	OwnerTeamID           *uint          `json:"ownerTeamId" gorm:"index"`
	WeeklyVisitCount      int            `json:"weeklyVisitCount" gorm:"not null;default:0"`
	LastOwnershipChangeAt *time.Time     `json:"lastOwnershipChangeAt"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	Distance              float64        `json:"distance,omitempty" gorm:"-"`
}
