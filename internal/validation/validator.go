package validation

import (
	"regexp"
	"strings"

	"eldersafe/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStartSessionRequest validates a request to start a quiz session.
// ClientID is optional but bounded when present.
func (v *Validator) ValidateStartSessionRequest(kind string, count int, clientID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(kind) == "" {
		errors = append(errors, domain.NewMissingFieldError("kind"))
	} else if !domain.Kind(kind).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("kind", kind))
	}

	if count < 0 || count > 50 {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 0, 50))
	}

	if len(clientID) > 64 {
		errors = append(errors, domain.NewOutOfRangeError("clientId", len(clientID), 0, 64))
	}

	return errors
}

// ValidateSessionID validates a session identifier path parameter.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateGuidanceRequest validates a guidance question.
func (v *Validator) ValidateGuidanceRequest(question string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(question) > 1000 {
		errors = append(errors, domain.NewOutOfRangeError("question", len(question), 1, 1000))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
