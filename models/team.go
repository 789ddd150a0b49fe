package models

import "time"

// Team is a named group of actors ("clan" in the product). Team CRUD and
// membership management belong to the clan service; this service only reads
// these tables to resolve an actor's current team and teammates.
type Team struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"unique;not null"`
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMember maps an actor to their team. An actor belongs to at most one
// team at a time, enforced by the unique index on user_id.
type TeamMember struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}
