package services

import (
	"strings"

	"redihair-backend/i18n"
)

// Kind identifies why a submission was rejected.
type Kind string

const (
	KindReferenceNotFound Kind = "ReferenceNotFound"
	KindPastSlot          Kind = "PastSlot"
	KindClosedDay         Kind = "ClosedDay"
	KindOutOfHours        Kind = "OutOfHours"
	KindSlotTaken         Kind = "SlotTaken"

	KindTooShortName    Kind = "TooShortName"
	KindTooShortMessage Kind = "TooShortMessage"
	KindInvalidEmail    Kind = "InvalidEmail"

	KindMissingField   Kind = "MissingField"
	KindMalformedInput Kind = "MalformedInput"
)

// Failure is one rejected check. Field is set for input errors attributable
// to a single form field and empty for form-level business-rule failures
// (past slot, closed day, out of hours, slot taken).
type Failure struct {
	Kind  Kind
	Field string
	Text  i18n.Text
}

// ValidationError collects every failure of a submission. All failures are
// expected, user-correctable conditions; the caller re-renders the form and
// waits for a new submission.
type ValidationError struct {
	Failures []Failure
}

func (e *ValidationError) Error() string {
	kinds := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		kinds[i] = string(f.Kind)
	}
	return "validation failed: " + strings.Join(kinds, ", ")
}

func (e *ValidationError) add(kind Kind, field string, text i18n.Text) {
	e.Failures = append(e.Failures, Failure{Kind: kind, Field: field, Text: text})
}

func (e *ValidationError) empty() bool { return len(e.Failures) == 0 }

// Has reports whether any failure has the given kind.
func (e *ValidationError) Has(kind Kind) bool {
	for _, f := range e.Failures {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// FieldMessages returns the localized field-level messages keyed by field name.
func (e *ValidationError) FieldMessages(lang i18n.Lang) map[string][]string {
	out := make(map[string][]string)
	for _, f := range e.Failures {
		if f.Field != "" {
			out[f.Field] = append(out[f.Field], f.Text.In(lang))
		}
	}
	return out
}

// FormMessages returns the localized form-level messages in check order.
func (e *ValidationError) FormMessages(lang i18n.Lang) []string {
	var out []string
	for _, f := range e.Failures {
		if f.Field == "" {
			out = append(out, f.Text.In(lang))
		}
	}
	return out
}
