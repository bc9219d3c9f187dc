package models

import (
	"redihair-backend/i18n"
)

// Service is an offered treatment with a bilingual display name.
type Service struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	NameEn string  `gorm:"size:120;not null" json:"nameEn"`
	NameSq string  `gorm:"size:120;not null" json:"nameSq"`
	Price  float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	// RESTRICT on delete keeps a service around while appointments
	// still reference it.
	Appointments []Appointment `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT" json:"-"`
}

// DisplayName picks the name variant for the given language.
func (s Service) DisplayName(lang i18n.Lang) string {
	if lang == i18n.Albanian {
		return s.NameSq
	}
	return s.NameEn
}
