package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/adeelur/riderledger/internal/models"
)

var (
	ErrMissingFields         = errors.New("missing required fields")
	ErrNameTooLong           = errors.New("name too long")
	ErrNameInvalidCharset    = errors.New("name has invalid characters")
	ErrInvalidEmploymentType = errors.New("invalid employment type")
)

var nameCharsetRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateDisplayName enforces the 20-character, alphanumeric-plus-spaces
// display name rule.
func ValidateDisplayName(name string) error {
	if len([]rune(name)) > 20 {
		return ErrNameTooLong
	}
	if !nameCharsetRegex.MatchString(name) {
		return ErrNameInvalidCharset
	}
	return nil
}

func ValidateEmploymentType(employmentType string) error {
	if !models.ValidEmploymentType(employmentType) {
		return ErrInvalidEmploymentType
	}
	return nil
}
