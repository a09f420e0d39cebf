package models

import "time"

// Participant status values.
const (
	ParticipantPending  = "pending"
	ParticipantApproved = "approved"
	ParticipantRejected = "rejected"
)

type DumpRunParticipant struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	DumpRunID       uint      `gorm:"index;not null" json:"dumpRunId"`
	UserID          uint      `gorm:"index;not null" json:"userId"`
	Status          string    `gorm:"size:20;not null;default:pending" json:"status"`
	ItemSize        string    `gorm:"size:20" json:"itemSize,omitempty"`
	ItemDescription string    `gorm:"size:500" json:"itemDescription,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
