package api

import (
	"errors"

	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service sentinel errors to an HTTP status and wire
// message. Ownership failures deliberately read the same as missing
// records. A zero status means the error is a downstream failure the
// caller reports itself.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		return fiber.StatusBadRequest, "All fields are required"
	case errors.Is(err, services.ErrNameTooLong):
		return fiber.StatusBadRequest, "Name must be 20 characters or less"
	case errors.Is(err, services.ErrNameInvalidCharset):
		return fiber.StatusBadRequest, "Name can only contain alphabets, numbers, or spaces"
	case errors.Is(err, services.ErrPasswordTooShort):
		return fiber.StatusBadRequest, "Password must be at least 8 characters"
	case errors.Is(err, services.ErrPasswordComposition):
		return fiber.StatusBadRequest, "Password must contain at least one alphabet and one number"
	case errors.Is(err, services.ErrInvalidEmploymentType):
		return fiber.StatusBadRequest, "Invalid employment type. Must be 'PartTimer' or 'FullTimer'"
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict, "User already exists with this email"
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, services.ErrAccountNotVerified):
		return fiber.StatusUnauthorized, "Account is not verified"
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found"
	case errors.Is(err, services.ErrInvalidOTP):
		return fiber.StatusBadRequest, "Invalid OTP"
	case errors.Is(err, services.ErrOTPExpired):
		return fiber.StatusBadRequest, "OTP has expired"
	case errors.Is(err, services.ErrPasswordsDoNotMatch):
		return fiber.StatusBadRequest, "Passwords do not match"
	case errors.Is(err, services.ErrNoChanges):
		return fiber.StatusBadRequest, "No changes provided"
	case errors.Is(err, services.ErrOldPasswordRequired):
		return fiber.StatusBadRequest, "Current password is required to set a new password"
	case errors.Is(err, services.ErrOldPasswordIncorrect):
		return fiber.StatusUnauthorized, "Current password is incorrect"
	case errors.Is(err, services.ErrInvalidProfilePicture):
		return fiber.StatusBadRequest, "Profile picture must be a base64 image data URI"
	case errors.Is(err, services.ErrProfilePictureTooLarge):
		return fiber.StatusBadRequest, "Profile picture size must be 5MB or less"
	case errors.Is(err, services.ErrNoProfilePicture):
		return fiber.StatusBadRequest, "No profile picture to remove"
	case errors.Is(err, services.ErrEmailMismatch):
		return fiber.StatusUnauthorized, "Email does not match your account"
	case errors.Is(err, services.ErrPasswordIncorrect):
		return fiber.StatusUnauthorized, "Incorrect password"
	case errors.Is(err, services.ErrRecordFieldsRequired):
		return fiber.StatusBadRequest, "Date and work status are required"
	case errors.Is(err, services.ErrInvalidWorkStatus):
		return fiber.StatusBadRequest, "Work status must be 'On' or 'Off'"
	case errors.Is(err, services.ErrInvalidDayQuality):
		return fiber.StatusBadRequest, "Invalid day quality"
	case errors.Is(err, services.ErrNegativeAmounts):
		return fiber.StatusBadRequest, "Deliveries, tips, and expenses cannot be negative"
	case errors.Is(err, services.ErrDateOutOfBounds):
		return fiber.StatusBadRequest, "Date must be between account creation and today"
	case errors.Is(err, services.ErrRecordConflict):
		return fiber.StatusConflict, "A record for this date already exists"
	case errors.Is(err, services.ErrRecordNotFound):
		return fiber.StatusNotFound, "Record not found or unauthorized"
	case errors.Is(err, services.ErrInvalidDateRange):
		return fiber.StatusBadRequest, "Invalid date range"
	}
	return 0, ""
}

// respondServiceError writes the mapped error, falling back to a
// downstream failure with the given message.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	if status, message := errorStatus(err); status != 0 {
		return jsonError(c, status, message)
	}
	return handler.downstreamError(c, fallback, err)
}
