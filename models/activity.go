package models

import "time"

// Activity feed entry types.
const (
	ActivityRequestReceived = "request_received"
	ActivityRequestApproved = "request_approved"
	ActivityRequestRejected = "request_rejected"
)

type Activity struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"userId"`
	Type              string    `gorm:"size:40;not null" json:"type"`
	Content           string    `gorm:"size:500;not null" json:"content"`
	RelatedEntityID   uint      `json:"relatedEntityId,omitempty"`
	RelatedEntityType string    `gorm:"size:40" json:"relatedEntityType,omitempty"`
	IsRead            bool      `json:"isRead"`
	CreatedAt         time.Time `json:"createdAt"`
}
