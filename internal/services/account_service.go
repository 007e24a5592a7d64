package services

import (
	"errors"

	"github.com/adeelur/riderledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoChanges            = errors.New("no changes provided")
	ErrOldPasswordRequired  = errors.New("current password required")
	ErrOldPasswordIncorrect = errors.New("current password incorrect")
	ErrEmailMismatch        = errors.New("email mismatch")
	ErrPasswordIncorrect    = errors.New("password incorrect")
)

type AccountUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateByID(userID uint, updates map[string]any) error
	DeleteAccountAndRelatedData(userID uint) error
}

type AccountService struct {
	users AccountUserRepository
}

func NewAccountService(users AccountUserRepository) *AccountService {
	return &AccountService{users: users}
}

func (service *AccountService) GetUser(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

type UpdateProfileInput struct {
	Name           string
	EmploymentType string
	OldPassword    string
	NewPassword    string
	ProfilePicture string
}

// UpdateProfile applies any recognized subset of profile fields. An
// employment type change reassigns the fixed salary; a password change
// requires the current password and the strength rule.
func (service *AccountService) UpdateProfile(userID uint, input UpdateProfileInput) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	updates := make(map[string]any)

	if input.Name != "" && input.Name != user.Name {
		if err := ValidateDisplayName(input.Name); err != nil {
			return models.User{}, err
		}
		updates["name"] = input.Name
	}

	if input.EmploymentType != "" && input.EmploymentType != user.EmploymentType {
		if err := ValidateEmploymentType(input.EmploymentType); err != nil {
			return models.User{}, err
		}
		updates["employment_type"] = input.EmploymentType
		updates["fixed_salary"] = models.SalaryForEmploymentType(input.EmploymentType)
	}

	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return models.User{}, ErrOldPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
			return models.User{}, ErrOldPasswordIncorrect
		}
		if err := ValidatePasswordStrength(input.NewPassword); err != nil {
			return models.User{}, err
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		updates["password_hash"] = string(passwordHash)
	}

	if input.ProfilePicture != "" {
		if err := ValidateProfilePicture(input.ProfilePicture); err != nil {
			return models.User{}, err
		}
		updates["profile_picture"] = input.ProfilePicture
	}

	if len(updates) == 0 {
		return models.User{}, ErrNoChanges
	}

	if err := service.users.UpdateByID(userID, updates); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

func (service *AccountService) UploadProfilePicture(userID uint, picture string) (models.User, error) {
	if picture == "" {
		return models.User{}, ErrInvalidProfilePicture
	}
	if err := ValidateProfilePicture(picture); err != nil {
		return models.User{}, err
	}

	if _, err := service.users.FindByID(userID); err != nil {
		return models.User{}, ErrUserNotFound
	}
	if err := service.users.UpdateByID(userID, map[string]any{"profile_picture": picture}); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

func (service *AccountService) RemoveProfilePicture(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	if user.ProfilePicture == "" {
		return models.User{}, ErrNoProfilePicture
	}

	if err := service.users.UpdateByID(userID, map[string]any{"profile_picture": ""}); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

// DeleteAccount requires the caller to re-assert their own email and
// current password, then cascades daily records and cached summaries
// before the user row.
func (service *AccountService) DeleteAccount(userID uint, email string, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if NormalizeEmail(email) != NormalizeEmail(user.Email) {
		return ErrEmailMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrPasswordIncorrect
	}

	return service.users.DeleteAccountAndRelatedData(userID)
}
