package models

import "time"

type PickupRequest struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	UserID              uint      `gorm:"index;not null" json:"userId"`
	Address             string    `gorm:"size:255;not null" json:"address"`
	Date                time.Time `gorm:"not null" json:"date"`
	TimeSlot            string    `gorm:"size:20;not null" json:"timeSlot"`
	ItemSize            string    `gorm:"size:20;not null" json:"itemSize"`
	ItemDescription     string    `gorm:"size:500" json:"itemDescription,omitempty"`
	SpecialInstructions string    `gorm:"size:500" json:"specialInstructions,omitempty"`
	Status              string    `gorm:"size:20;not null;default:pending" json:"status"`
	EstimatedPrice      int       `json:"estimatedPrice,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
