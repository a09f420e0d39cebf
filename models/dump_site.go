package models

import "time"

type DumpSite struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	Name                  string    `gorm:"size:200;not null" json:"name"`
	Address               string    `gorm:"size:255;not null" json:"address"`
	Latitude              float64   `json:"latitude,omitempty"`
	Longitude             float64   `json:"longitude,omitempty"`
	Phone                 string    `gorm:"size:40" json:"phone,omitempty"`
	OperatingHours        string    `gorm:"size:255" json:"operatingHours,omitempty"`
	MinFee                int       `json:"minFee,omitempty"`
	FeePerTon             int       `json:"feePerTon,omitempty"`
	AcceptsElectronics    bool      `json:"acceptsElectronics"`
	AcceptsHazardousWaste bool      `json:"acceptsHazardousWaste"`
	CreatedAt             time.Time `json:"createdAt"`
}
