package api

import (
	"errors"

	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SendResetOTP(c *fiber.Ctx) error {
	var input emailInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}
	if input.Email == "" {
		return jsonError(c, fiber.StatusBadRequest, "Email is required")
	}

	emailErr, err := handler.auth.SendResetOTP(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotVerified) {
			return jsonError(c, fiber.StatusUnauthorized, "Verify your email before resetting the password")
		}
		return handler.respondServiceError(c, err, "Failed to send reset OTP")
	}
	if emailErr != nil {
		return handler.downstreamError(c, "Failed to send OTP email", emailErr)
	}
	return jsonSuccess(c, fiber.StatusOK, "Password reset OTP sent to your email", nil)
}

// VerifyResetOTP is rate-limited per client IP; the OTP itself survives
// the check and is consumed only by ResetPassword.
func (handler *Handler) VerifyResetOTP(c *fiber.Ctx) error {
	var input verifyResetOTPInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}
	if input.Email == "" || input.OTP == "" {
		return jsonError(c, fiber.StatusBadRequest, "Email and OTP are required")
	}

	limiterKey := requestLimiterKey(c)
	if handler.resetLimiter.tooManyRecent(limiterKey, handler.now(), resetOTPAttemptLimit, resetOTPAttemptWindow) {
		return jsonError(c, fiber.StatusTooManyRequests, "Too many attempts. Try again later")
	}

	if err := handler.auth.VerifyResetOTP(input.Email, input.OTP); err != nil {
		if errors.Is(err, services.ErrInvalidOTP) || errors.Is(err, services.ErrOTPExpired) {
			handler.resetLimiter.addFailure(limiterKey, handler.now(), resetOTPAttemptWindow)
		}
		return handler.respondServiceError(c, err, "Failed to verify reset OTP")
	}

	handler.resetLimiter.reset(limiterKey)
	return jsonSuccess(c, fiber.StatusOK, "OTP verified successfully", nil)
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}
	if input.Email == "" || input.OTP == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return jsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	err := handler.auth.ResetPassword(input.Email, input.OTP, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to reset password")
	}
	return jsonSuccess(c, fiber.StatusOK, "Password has been reset successfully", nil)
}
