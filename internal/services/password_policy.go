package services

import "errors"

var (
	ErrPasswordTooShort    = errors.New("password too short")
	ErrPasswordComposition = errors.New("password composition invalid")
)

func isPasswordSpecial(char rune) bool {
	switch char {
	case '!', '@', '#', '$', '%', '^', '&', '*':
		return true
	default:
		return false
	}
}

// ValidatePasswordStrength requires at least 8 characters with at least
// one letter and one digit, drawn only from letters, digits and !@#$%^&*.
func ValidatePasswordStrength(password string) error {
	runes := []rune(password)
	if len(runes) < 8 {
		return ErrPasswordTooShort
	}

	hasLetter := false
	hasDigit := false
	for _, char := range runes {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
			hasLetter = true
		case char >= '0' && char <= '9':
			hasDigit = true
		case isPasswordSpecial(char):
		default:
			return ErrPasswordComposition
		}
	}

	if !hasLetter || !hasDigit {
		return ErrPasswordComposition
	}
	return nil
}
