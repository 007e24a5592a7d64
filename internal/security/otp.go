package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// GenerateOTP returns a cryptographically secure six-digit one-time code,
// uniformly distributed over [100000, 999999].
func GenerateOTP() (string, error) {
	offset, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(otpMin+offset.Int64(), 10), nil
}
