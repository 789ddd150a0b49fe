package types

import (
	"time"

	"github.com/turfwars/api-go/territory"
)

type CheckInRequest struct {
	LocationID uint     `json:"locationId" binding:"required"`
	Latitude   *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type CaptureRequest struct {
	LocationID uint     `json:"locationId" binding:"required"`
	Latitude   *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

type CheckInResponse struct {
	Accepted             bool             `json:"accepted"`
	Reward               territory.Reward `json:"reward"`
	Multiplier           float64          `json:"multiplier"`
	OwnershipTransferred bool             `json:"ownershipTransferred"`
	Message              string           `json:"message"`
}

type CaptureResponse struct {
	Accepted bool             `json:"accepted"`
	Reward   territory.Reward `json:"reward"`
	Message  string           `json:"message"`
}

type LocationsQuery struct {
	Latitude  float64 `form:"latitude"`
	Longitude float64 `form:"longitude"`
	Radius    float64 `form:"radius"`
	Category  string  `form:"category"`
	Limit     int     `form:"limit"`
}

type LocationMarker struct {
	ID               uint     `json:"id" gorm:"column:id"`
	Name             string   `json:"name" gorm:"column:name"`
	Latitude         float64  `json:"latitude" gorm:"column:latitude"`
	Longitude        float64  `json:"longitude" gorm:"column:longitude"`
	OwnerTeamID      *uint    `json:"ownerTeamId" gorm:"column:owner_team_id"`
	OwnerTeamName    *string  `json:"ownerTeamName" gorm:"column:owner_team_name"`
	WeeklyVisitCount int      `json:"weeklyVisitCount" gorm:"column:weekly_visit_count"`
	Distance         *float64 `json:"distance,omitempty" gorm:"column:distance"`
}

type TeamStanding struct {
	TeamID   uint   `json:"teamId" gorm:"column:team_id"`
	TeamName string `json:"teamName" gorm:"column:team_name"`
	Visits   int64  `json:"visits" gorm:"column:visits"`
}

type StandingsResponse struct {
	LocationID  uint           `json:"locationId"`
	OwnerTeamID *uint          `json:"ownerTeamId"`
	WindowStart time.Time      `json:"windowStart"`
	Standings   []TeamStanding `json:"standings"`
}
