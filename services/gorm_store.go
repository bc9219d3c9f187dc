package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"redihair-backend/models"
)

// GormStore implements Store on a gorm Postgres connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (s *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var svcs []models.Service
	if err := s.db.WithContext(ctx).Order("id").Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

func (s *GormStore) SlotExists(ctx context.Context, date time.Time, clock string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("date = ? AND time = ?", date.Format("2006-01-02"), clock).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAppointment inserts the slot inside a single transaction. A unique
// violation on (date, time) means a concurrent request won the race; the
// transaction rolls back and the conflict comes back as ErrSlotTaken.
func (s *GormStore) CreateAppointment(ctx context.Context, appt *models.Appointment) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(appt).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (s *GormStore) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

// isUniqueViolation matches SQLSTATE 23505 from the Postgres driver, plus
// gorm's translated form for configurations with TranslateError on.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
