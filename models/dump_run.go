package models

import "time"

// Dump run status values.
const (
	RunStatusActive    = "active"
	RunStatusCompleted = "completed"
	RunStatusCancelled = "cancelled"
)

type DumpRun struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	Location        string    `gorm:"size:255;not null" json:"location"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	Date            time.Time `gorm:"not null" json:"date"`
	DumpSiteID      *uint     `json:"dumpSiteId,omitempty"`
	OrganizerID     uint      `gorm:"index;not null" json:"organizerId"`
	MaxParticipants int       `gorm:"not null;default:3" json:"maxParticipants"`
	Status          string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`

	Participants []DumpRunParticipant `gorm:"constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Messages     []ChatMessage        `gorm:"constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}
