package models

import (
	"log"

	"gorm.io/gorm"
)

// Services the studio opens with. Only inserted into an empty table;
// afterwards the services are managed directly in the database.
var defaultServices = []Service{
	{NameEn: "Haircut", NameSq: "Qethje", Price: 10.00},
	{NameEn: "Beard trim", NameSq: "Rregullim mjekre", Price: 5.00},
	{NameEn: "Hair wash", NameSq: "Larje flokësh", Price: 3.00},
	{NameEn: "Hair styling", NameSq: "Stilim flokësh", Price: 8.00},
	{NameEn: "Hair coloring", NameSq: "Lyerje flokësh", Price: 25.00},
}

// SeedServices inserts the default service list on first boot.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	svcs := make([]Service, len(defaultServices))
	copy(svcs, defaultServices)
	if err := db.Create(&svcs).Error; err != nil {
		return err
	}
	log.Printf("seeded %d services", len(svcs))
	return nil
}
