package models

import (
	"log"

	"gorm.io/gorm"
)

// SeedDumpSites inserts the starter disposal sites when the table is empty.
func SeedDumpSites(db *gorm.DB) error {
	var count int64
	if err := db.Model(&DumpSite{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sites := []DumpSite{
		{
			Name:               "Cedar Hills Disposal Site",
			Address:            "16645 W Sunset Hwy, Seattle, WA 98106",
			Latitude:           47.581707,
			Longitude:          -122.359238,
			Phone:              "(555) 123-4567",
			OperatingHours:     "Mon-Fri: 8:00 AM - 5:00 PM, Sat-Sun: 9:00 AM - 4:00 PM",
			MinFee:             25,
			FeePerTon:          120,
			AcceptsElectronics: true,
		},
		{
			Name:                  "Riverside Waste Management",
			Address:               "8761 River Road, Portland, OR 97203",
			Latitude:              45.590208,
			Longitude:             -122.721381,
			Phone:                 "(555) 987-6543",
			OperatingHours:        "Mon-Sat: 7:00 AM - 6:30 PM, Sun: 8:00 AM - 4:30 PM",
			MinFee:                20,
			FeePerTon:             95,
			AcceptsElectronics:    true,
			AcceptsHazardousWaste: true,
		},
		{
			Name:               "Greenfield Disposal Center",
			Address:            "6234 Meadow Lane, Vancouver, WA 98665",
			Latitude:           45.638729,
			Longitude:          -122.661096,
			Phone:              "(555) 456-7890",
			OperatingHours:     "Mon-Fri: 7:30 AM - 5:30 PM, Sat: 8:00 AM - 4:00 PM",
			MinFee:             22,
			FeePerTon:          105,
			AcceptsElectronics: true,
		},
	}

	if err := db.Create(&sites).Error; err != nil {
		return err
	}
	log.Printf("[seed] inserted %d dump sites", len(sites))
	return nil
}
