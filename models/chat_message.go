package models

import "time"

// ChatMessage is one entry in a dump run's chat thread. Messages are
// append-only; ids increase in insertion order.
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	DumpRunID uint      `gorm:"index;not null" json:"dumpRunId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
