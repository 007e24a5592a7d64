package api

import (
	"errors"

	"github.com/adeelur/riderledger/internal/models"
	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

func publicUser(user models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	result, err := handler.auth.Register(services.RegisterInput{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		EmploymentType: input.EmploymentType,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to register user")
	}

	if err := handler.setAuthCookie(c, result.User.ID); err != nil {
		return handler.downstreamError(c, "Failed to create session", err)
	}

	// The account write already succeeded; a dead SMTP server must not
	// roll it back, only change the reported outcome.
	if result.EmailErr != nil {
		message := "User updated but failed to send OTP email"
		if result.Created {
			message = "User created but failed to send OTP email"
		}
		return handler.downstreamError(c, message, result.EmailErr)
	}

	status := fiber.StatusOK
	message := "New verification OTP sent to your email"
	if result.Created {
		status = fiber.StatusCreated
		message = "User registered successfully. Verification OTP sent to your email"
	}
	return jsonSuccess(c, status, message, fiber.Map{"user": publicUser(result.User)})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	user, err := handler.auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotVerified) {
			return jsonError(c, fiber.StatusUnauthorized, "Sign up again and verify your email to login")
		}
		return handler.respondServiceError(c, err, "Failed to login")
	}

	if err := handler.setAuthCookie(c, user.ID); err != nil {
		return handler.downstreamError(c, "Failed to create session", err)
	}
	return jsonSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{"user": publicUser(user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return jsonSuccess(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (handler *Handler) SendVerifyOTP(c *fiber.Ctx) error {
	alreadyVerified, emailErr, err := handler.auth.SendVerifyOTP(currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to send verification OTP")
	}
	if alreadyVerified {
		return jsonSuccess(c, fiber.StatusOK, "Account is already verified", nil)
	}
	if emailErr != nil {
		return handler.downstreamError(c, "Failed to send OTP email", emailErr)
	}
	return jsonSuccess(c, fiber.StatusOK, "Verification OTP sent to your email", nil)
}

func (handler *Handler) VerifyAccount(c *fiber.Ctx) error {
	var input otpInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}
	if input.OTP == "" {
		return jsonError(c, fiber.StatusBadRequest, "OTP is required")
	}

	if err := handler.auth.VerifyEmail(currentUserID(c), input.OTP); err != nil {
		return handler.respondServiceError(c, err, "Failed to verify account")
	}
	return jsonSuccess(c, fiber.StatusOK, "Account verified successfully", nil)
}

// IsAuthenticated reports the session holder. Reaching it at all means
// the middleware accepted the token.
func (handler *Handler) IsAuthenticated(c *fiber.Ctx) error {
	user, err := handler.auth.FindByID(currentUserID(c))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "User not found")
	}

	return jsonSuccess(c, fiber.StatusOK, "", fiber.Map{
		"user": fiber.Map{
			"id":                user.ID,
			"name":              user.Name,
			"email":             user.Email,
			"employmentType":    user.EmploymentType,
			"isAccountVerified": user.IsAccountVerified,
		},
	})
}
