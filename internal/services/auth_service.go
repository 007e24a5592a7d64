package services

import (
	"errors"
	"time"

	"github.com/adeelur/riderledger/internal/mail"
	"github.com/adeelur/riderledger/internal/models"
	"github.com/adeelur/riderledger/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	VerifyOTPTTL = time.Hour
	ResetOTPTTL  = 10 * time.Minute
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountNotVerified     = errors.New("account not verified")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidOTP             = errors.New("invalid otp")
	ErrOTPExpired             = errors.New("otp expired")
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users  AuthUserRepository
	mailer mail.Mailer
	now    func() time.Time
}

func NewAuthService(users AuthUserRepository, mailer mail.Mailer) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	EmploymentType string
}

// RegisterResult reports the outcome of a registration: the persisted
// user, whether a new account was created (as opposed to refreshing an
// unverified one), and any email dispatch failure. A non-nil EmailErr
// means the write succeeded but the OTP notification did not go out.
type RegisterResult struct {
	User     models.User
	Created  bool
	EmailErr error
}

func (service *AuthService) Register(input RegisterInput) (RegisterResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.EmploymentType == "" {
		return RegisterResult{}, ErrMissingFields
	}
	if err := ValidateDisplayName(input.Name); err != nil {
		return RegisterResult{}, err
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return RegisterResult{}, err
	}
	if err := ValidateEmploymentType(input.EmploymentType); err != nil {
		return RegisterResult{}, err
	}

	email := NormalizeEmail(input.Email)
	existing, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return RegisterResult{}, err
	}

	if found && existing.IsAccountVerified {
		return RegisterResult{}, ErrEmailAlreadyRegistered
	}

	otp, err := security.GenerateOTP()
	if err != nil {
		return RegisterResult{}, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, err
	}

	if found {
		// An unverified account registered again: refresh its OTP and
		// any updatable fields instead of creating a duplicate.
		existing.Name = input.Name
		existing.PasswordHash = string(passwordHash)
		existing.EmploymentType = input.EmploymentType
		existing.FixedSalary = models.SalaryForEmploymentType(input.EmploymentType)
		existing.VerifyOTP = otp
		existing.VerifyOTPExpireAt = service.now().Add(VerifyOTPTTL)
		if err := service.users.Save(&existing); err != nil {
			return RegisterResult{}, err
		}

		emailErr := service.mailer.Send(mail.VerificationMessage(existing.Email, existing.Name, otp))
		return RegisterResult{User: existing, Created: false, EmailErr: emailErr}, nil
	}

	user := models.User{
		Name:              input.Name,
		Email:             email,
		PasswordHash:      string(passwordHash),
		EmploymentType:    input.EmploymentType,
		FixedSalary:       models.SalaryForEmploymentType(input.EmploymentType),
		VerifyOTP:         otp,
		VerifyOTPExpireAt: service.now().Add(VerifyOTPTTL),
	}
	if err := service.users.Create(&user); err != nil {
		return RegisterResult{}, err
	}

	emailErr := service.mailer.Send(mail.VerificationMessage(user.Email, user.Name, otp))
	return RegisterResult{User: user, Created: true, EmailErr: emailErr}, nil
}

func (service *AuthService) Login(emailRaw string, password string) (models.User, error) {
	email := NormalizeEmail(emailRaw)
	if email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}

	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsAccountVerified {
		return models.User{}, ErrAccountNotVerified
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// SendVerifyOTP regenerates and dispatches a verification OTP. It is a
// no-op success when the account is already verified.
func (service *AuthService) SendVerifyOTP(userID uint) (alreadyVerified bool, emailErr error, err error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return false, nil, ErrUserNotFound
	}
	if user.IsAccountVerified {
		return true, nil, nil
	}

	otp, err := security.GenerateOTP()
	if err != nil {
		return false, nil, err
	}
	user.VerifyOTP = otp
	user.VerifyOTPExpireAt = service.now().Add(VerifyOTPTTL)
	if err := service.users.Save(&user); err != nil {
		return false, nil, err
	}

	emailErr = service.mailer.Send(mail.VerificationMessage(user.Email, user.Name, otp))
	return false, emailErr, nil
}

func (service *AuthService) VerifyEmail(userID uint, otp string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if otp == "" || user.VerifyOTP == "" || user.VerifyOTP != otp {
		return ErrInvalidOTP
	}
	if user.VerifyOTPExpireAt.Before(service.now()) {
		return ErrOTPExpired
	}

	user.IsAccountVerified = true
	user.VerifyOTP = ""
	user.VerifyOTPExpireAt = time.Time{}
	return service.users.Save(&user)
}

// SendResetOTP issues a password-reset OTP for an existing, verified
// account. The reset OTP is independent from the verification OTP.
func (service *AuthService) SendResetOTP(emailRaw string) (emailErr error, err error) {
	email := NormalizeEmail(emailRaw)
	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	if !user.IsAccountVerified {
		return nil, ErrAccountNotVerified
	}

	otp, err := security.GenerateOTP()
	if err != nil {
		return nil, err
	}
	user.ResetOTP = otp
	user.ResetOTPExpireAt = service.now().Add(ResetOTPTTL)
	if err := service.users.Save(&user); err != nil {
		return nil, err
	}

	emailErr = service.mailer.Send(mail.PasswordResetMessage(user.Email, user.Name, otp))
	return emailErr, nil
}

// VerifyResetOTP is a read-only check; the OTP is cleared only when the
// password reset completes.
func (service *AuthService) VerifyResetOTP(emailRaw string, otp string) error {
	email := NormalizeEmail(emailRaw)
	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	if otp == "" || user.ResetOTP == "" || user.ResetOTP != otp {
		return ErrInvalidOTP
	}
	if user.ResetOTPExpireAt.Before(service.now()) {
		return ErrOTPExpired
	}
	return nil
}

func (service *AuthService) ResetPassword(emailRaw string, otp string, newPassword string, confirmPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return ErrPasswordsDoNotMatch
	}
	if err := service.VerifyResetOTP(emailRaw, otp); err != nil {
		return err
	}

	user, _, err := service.users.FindByNormalizedEmail(NormalizeEmail(emailRaw))
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)
	user.ResetOTP = ""
	user.ResetOTPExpireAt = time.Time{}
	return service.users.Save(&user)
}
