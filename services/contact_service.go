package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"redihair-backend/i18n"
	"redihair-backend/models"
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

// ContactInput is the raw contact form input.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactService validates and persists inbound inquiries. Single-shot
// validate-then-insert, no deduplication.
type ContactService struct {
	store    Store
	validate *validator.Validate
}

func NewContactService(store Store) *ContactService {
	return &ContactService{store: store, validate: validator.New()}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	verr := &ValidationError{}

	name := strings.TrimSpace(in.Name)
	if utf8.RuneCountInString(name) < minNameLen {
		verr.add(KindTooShortName, "name",
			i18n.T("Please enter your full name.", "Ju lutem shkruani emrin tuaj të plotë."))
	}

	email := strings.TrimSpace(in.Email)
	if s.validate.Var(email, "required,email") != nil {
		verr.add(KindInvalidEmail, "email",
			i18n.T("Enter a valid email address.", "Shkruani një adresë emaili të vlefshme."))
	}

	message := strings.TrimSpace(in.Message)
	if utf8.RuneCountInString(message) < minMessageLen {
		verr.add(KindTooShortMessage, "message",
			i18n.T("Message must be at least 10 characters.", "Mesazhi duhet të ketë të paktën 10 karaktere."))
	}

	if !verr.empty() {
		return nil, verr
	}

	msg := &models.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.store.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
