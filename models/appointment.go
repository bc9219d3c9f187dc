package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a single reserved slot. A slot is the (date, time) pair —
// it has no duration, and the composite unique index is what makes a slot
// reservable exactly once even under racing submissions.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`

	ServiceID uint    `gorm:"index;not null" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceID" json:"-"`

	FullName string `gorm:"size:120;not null" json:"fullName"`
	Phone    string `gorm:"size:40;not null" json:"phone"`
	Email    string `gorm:"size:254" json:"email"`
	Notes    string `gorm:"size:255" json:"notes"`

	// Time is the canonical "HH:MM" start time, normalized before any
	// lookup or insert so the unique key has a single spelling.
	Date time.Time `gorm:"type:date;not null;uniqueIndex:unique_booking_slot,priority:1" json:"date"`
	Time string    `gorm:"size:5;not null;uniqueIndex:unique_booking_slot,priority:2" json:"time"`

	CreatedAt time.Time `json:"createdAt"`
}

// Assign the customer-facing reference before insert.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Reference == uuid.Nil {
		a.Reference = uuid.New()
	}
	return nil
}
