package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"redihair-backend/i18n"
	"redihair-backend/models"
	"redihair-backend/utils"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Schedule describes when the studio takes bookings: the weekly closure day
// and the inclusive [Open, Close] window a slot's start time must fall in.
// Close is the last minute a booking may start at, which coincides with the
// shop's closing moment.
type Schedule struct {
	Open      string // "HH:MM"
	Close     string // "HH:MM"
	ClosedDay time.Weekday
	Location  *time.Location
}

// BookingInput is the raw form input for one booking request.
type BookingInput struct {
	ServiceID string
	Date      string
	Time      string
	FullName  string
	Phone     string
	Email     string
	Notes     string
}

// BookingService decides whether a candidate slot request is acceptable
// and, if so, commits it exactly once.
type BookingService struct {
	store    Store
	schedule Schedule
	openMin  int
	closeMin int
	validate *validator.Validate
	now      func() time.Time
}

func NewBookingService(store Store, schedule Schedule) (*BookingService, error) {
	openMin, err := minuteOfDay(schedule.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", schedule.Open, err)
	}
	closeMin, err := minuteOfDay(schedule.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", schedule.Close, err)
	}
	if closeMin < openMin {
		return nil, fmt.Errorf("closing time %s before opening time %s", schedule.Close, schedule.Open)
	}
	if schedule.Location == nil {
		schedule.Location = time.Local
	}
	return &BookingService{
		store:    store,
		schedule: schedule,
		openMin:  openMin,
		closeMin: closeMin,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

// Book runs the whole validation sequence and commits the slot. On
// rejection it returns a *ValidationError; any other error is a storage
// fault the caller treats as fatal. No side effects happen on rejection,
// and the only side effect on success is the single insert.
func (s *BookingService) Book(ctx context.Context, in BookingInput) (*models.Appointment, error) {
	verr := &ValidationError{}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		verr.add(KindMissingField, "full_name",
			i18n.T("Please enter your full name.", "Ju lutem shkruani emrin tuaj të plotë."))
	}
	phone := utils.NormalizePhone(in.Phone)
	if phone == "" {
		verr.add(KindMissingField, "phone",
			i18n.T("Please enter your phone number.", "Ju lutem shkruani numrin e telefonit."))
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && s.validate.Var(email, "email") != nil {
		verr.add(KindInvalidEmail, "email",
			i18n.T("Enter a valid email address.", "Shkruani një adresë emaili të vlefshme."))
	}

	var svc *models.Service
	if id, err := strconv.ParseUint(strings.TrimSpace(in.ServiceID), 10, 32); err != nil {
		verr.add(KindMalformedInput, "service",
			i18n.T("Select a valid service.", "Zgjidhni një shërbim të vlefshëm."))
	} else {
		svc, err = s.store.ServiceByID(ctx, uint(id))
		switch {
		case err == nil:
		case errors.Is(err, ErrServiceNotFound):
			verr.add(KindReferenceNotFound, "service",
				i18n.T("Select a valid service.", "Zgjidhni një shërbim të vlefshëm."))
		default:
			return nil, err
		}
	}

	date, dateErr := time.ParseInLocation(DateLayout, strings.TrimSpace(in.Date), s.schedule.Location)
	if dateErr != nil {
		verr.add(KindMalformedInput, "date",
			i18n.T("Please choose a valid date.", "Ju lutem zgjidhni një datë të vlefshme."))
	}
	clock, minutes, timeOK := parseClock(in.Time)
	if !timeOK {
		verr.add(KindMalformedInput, "time",
			i18n.T("Please choose a valid time.", "Ju lutem zgjidhni një orar të vlefshëm."))
	}

	// Business rules need a well-formed slot; field errors already cover
	// the malformed case.
	if dateErr == nil && timeOK {
		if f := s.validateSlot(date, minutes); f != nil {
			verr.Failures = append(verr.Failures, *f)
		} else {
			taken, err := s.store.SlotExists(ctx, date, clock)
			if err != nil {
				return nil, err
			}
			if taken {
				verr.add(KindSlotTaken, "", slotTakenText())
			}
		}
	}

	if !verr.empty() {
		return nil, verr
	}

	appt := &models.Appointment{
		ServiceID: svc.ID,
		FullName:  fullName,
		Phone:     phone,
		Email:     email,
		Notes:     strings.TrimSpace(in.Notes),
		Date:      date,
		Time:      clock,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			// A concurrent request won the race between the advisory
			// check and the insert. Same rejection as the pre-check.
			verr.add(KindSlotTaken, "", slotTakenText())
			return nil, verr
		}
		return nil, err
	}
	return appt, nil
}

// validateSlot is the pure business-rule pass over a well-formed slot:
// future instant first, then the weekly closure day, then operating hours.
// It returns the first failing check.
func (s *BookingService) validateSlot(date time.Time, minutes int) *Failure {
	slot := time.Date(date.Year(), date.Month(), date.Day(),
		minutes/60, minutes%60, 0, 0, s.schedule.Location)

	if !slot.After(s.now()) {
		return &Failure{Kind: KindPastSlot, Text: i18n.T(
			"You can't book a time in the past.",
			"Nuk mund të rezervoni një orar në të kaluarën.")}
	}
	if slot.Weekday() == s.schedule.ClosedDay {
		day := i18n.WeekdayName(s.schedule.ClosedDay)
		return &Failure{Kind: KindClosedDay, Text: i18n.T(
			fmt.Sprintf("We are closed on %s.", day.En),
			fmt.Sprintf("%s jemi mbyllur.", day.Sq))}
	}
	if minutes < s.openMin || minutes > s.closeMin {
		return &Failure{Kind: KindOutOfHours, Text: i18n.T(
			fmt.Sprintf("Please choose a time between %s and %s.", s.schedule.Open, s.schedule.Close),
			fmt.Sprintf("Ju lutem zgjidhni një orar midis %s dhe %s.", s.schedule.Open, s.schedule.Close))}
	}
	return nil
}

// SlotChoices lists the selectable start times: half-hour steps from
// opening, plus the closing minute itself since the window is inclusive.
func (s *BookingService) SlotChoices() []string {
	var out []string
	for m := s.openMin; m <= s.closeMin; m += 30 {
		out = append(out, clockString(m))
	}
	if len(out) > 0 && out[len(out)-1] != clockString(s.closeMin) {
		out = append(out, clockString(s.closeMin))
	}
	return out
}

// Schedule returns the configured booking window.
func (s *BookingService) Schedule() Schedule { return s.schedule }

func slotTakenText() i18n.Text {
	return i18n.T(
		"That time is already booked. Please choose another slot.",
		"Ky orar është i zënë. Ju lutem zgjidhni një orar tjetër.")
}

// parseClock normalizes a submitted time to canonical "HH:MM" and the
// minute of day, at minute granularity.
func parseClock(s string) (string, int, bool) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", 0, false
	}
	return t.Format(TimeLayout), t.Hour()*60 + t.Minute(), true
}

func minuteOfDay(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
