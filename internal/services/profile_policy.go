package services

import (
	"errors"
	"strings"
)

const MaxProfilePictureBytes = 5 * 1024 * 1024

var (
	ErrInvalidProfilePicture  = errors.New("invalid profile picture")
	ErrProfilePictureTooLarge = errors.New("profile picture too large")
	ErrNoProfilePicture       = errors.New("no profile picture set")
)

// ValidateProfilePicture checks the embedded-image contract: a data URI
// with an image MIME prefix whose decoded payload stays within 5MB.
func ValidateProfilePicture(dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return ErrInvalidProfilePicture
	}
	if decodedProfilePictureSize(dataURI) > MaxProfilePictureBytes {
		return ErrProfilePictureTooLarge
	}
	return nil
}

func decodedProfilePictureSize(dataURI string) int {
	payload := dataURI
	if index := strings.Index(dataURI, ","); index >= 0 {
		payload = dataURI[index+1:]
	}
	padding := 0
	for i := len(payload) - 1; i >= 0 && payload[i] == '='; i-- {
		padding++
	}
	return len(payload)*3/4 - padding
}
