package auth

import (
	"strings"
	"unicode/utf8"

	"kindwall/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MaxMessageLength bounds a message in characters, not bytes, so
// non-ASCII text gets the same budget as ASCII.
const MaxMessageLength = 500

type SubmitRequest struct {
	Message     string `json:"message" validate:"required"`
	CountryCode string `json:"countryCode" validate:"omitempty,max=8"`
}

// ValidateSubmit rejects empty (after trimming) and oversized
// messages. The country code is only bounded in length, never parsed.
func ValidateSubmit(req SubmitRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(req.Message)
	if trimmed == "" {
		return errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return errors.ErrMessageTooLong
	}
	return nil
}
