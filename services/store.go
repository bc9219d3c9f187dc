package services

import (
	"context"
	"errors"
	"time"

	"redihair-backend/models"
)

var (
	// ErrServiceNotFound means the service id did not resolve.
	ErrServiceNotFound = errors.New("service not found")
	// ErrSlotTaken means the (date, time) uniqueness constraint rejected
	// the insert. The losing side of a booking race sees this.
	ErrSlotTaken = errors.New("slot already booked")
)

// Store is the slice of persistence the validators depend on. The booking
// correctness guarantee lives behind CreateAppointment: it must insert
// atomically and return ErrSlotTaken when the slot's unique constraint
// rejects the row.
type Store interface {
	ServiceByID(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)

	// SlotExists is the advisory pre-check for a friendly rejection in the
	// non-racing case. It is not what prevents double booking.
	SlotExists(ctx context.Context, date time.Time, clock string) (bool, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment) error

	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
}
