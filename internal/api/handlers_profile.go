package api

import (
	"github.com/adeelur/riderledger/internal/models"
	"github.com/adeelur/riderledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

// profileView is the full account projection. Password hashes and OTP
// state never leave the service boundary.
func profileView(user models.User) fiber.Map {
	return fiber.Map{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"employmentType":    user.EmploymentType,
		"fixedSalary":       user.FixedSalary,
		"isAccountVerified": user.IsAccountVerified,
		"profilePicture":    user.ProfilePicture,
	}
}

func (handler *Handler) GetUserData(c *fiber.Ctx) error {
	user, err := handler.accounts.GetUser(currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to load user data")
	}
	return jsonSuccess(c, fiber.StatusOK, "", fiber.Map{"userData": profileView(user)})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	var input updateProfileInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	user, err := handler.accounts.UpdateProfile(currentUserID(c), services.UpdateProfileInput{
		Name:           input.Name,
		EmploymentType: input.EmploymentType,
		OldPassword:    input.OldPassword,
		NewPassword:    input.NewPassword,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to update profile")
	}
	return jsonSuccess(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{"userData": profileView(user)})
}

func (handler *Handler) UploadProfilePicture(c *fiber.Ctx) error {
	var input profilePictureInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	user, err := handler.accounts.UploadProfilePicture(currentUserID(c), input.ProfilePicture)
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to upload profile picture")
	}
	return jsonSuccess(c, fiber.StatusOK, "Profile picture updated successfully", fiber.Map{"userData": profileView(user)})
}

func (handler *Handler) RemoveProfilePicture(c *fiber.Ctx) error {
	user, err := handler.accounts.RemoveProfilePicture(currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err, "Failed to remove profile picture")
	}
	return jsonSuccess(c, fiber.StatusOK, "Profile picture removed successfully", fiber.Map{"userData": profileView(user)})
}

// DeleteAccount re-asserts the caller's email and password before the
// cascade, then invalidates the session cookie.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	var input deleteAccountInput
	if err := parseBody(c, &input); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid JSON in request body")
	}

	if err := handler.accounts.DeleteAccount(currentUserID(c), input.Email, input.Password); err != nil {
		return handler.respondServiceError(c, err, "Failed to delete account")
	}

	handler.clearAuthCookie(c)
	return jsonSuccess(c, fiber.StatusOK, "Account deleted successfully", nil)
}
