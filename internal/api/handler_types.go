package api

import (
	"time"

	"github.com/adeelur/riderledger/internal/db"
	"github.com/adeelur/riderledger/internal/mail"
	"github.com/adeelur/riderledger/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	authCookieName = "token"
	authTokenTTL   = 7 * 24 * time.Hour
)

const (
	resetOTPAttemptLimit  = 5
	resetOTPAttemptWindow = 15 * time.Minute
)

type Handler struct {
	secretKey    []byte
	production   bool
	auth         *services.AuthService
	accounts     *services.AccountService
	records      *services.RecordService
	engine       *services.CycleEngine
	resetLimiter *attemptLimiter
	now          func() time.Time
}

type authClaims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

type registerInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	EmploymentType string `json:"employmentType"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type otpInput struct {
	OTP string `json:"otp"`
}

type emailInput struct {
	Email string `json:"email"`
}

type verifyResetOTPInput struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resetPasswordInput struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type updateProfileInput struct {
	Name           string `json:"name"`
	EmploymentType string `json:"employmentType"`
	OldPassword    string `json:"oldPassword"`
	NewPassword    string `json:"newPassword"`
	ProfilePicture string `json:"profilePicture"`
}

type profilePictureInput struct {
	ProfilePicture string `json:"profilePicture"`
}

type deleteAccountInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type recordPayload struct {
	Date       string  `json:"date"`
	WorkStatus string  `json:"work_status"`
	Deliveries int     `json:"deliveries"`
	Tips       float64 `json:"tips"`
	Expenses   float64 `json:"expenses"`
	DayQuality string  `json:"day_quality"`
}

// NewHandler wires the services over the gorm-backed repositories.
// Production mode hardens cookies and hides downstream error detail.
func NewHandler(database *gorm.DB, secret string, mailer mail.Mailer, production bool) *Handler {
	repositories := db.NewRepositories(database)
	return newHandler(
		services.NewAuthService(repositories.Users, mailer),
		services.NewAccountService(repositories.Users),
		services.NewRecordService(repositories.Records, repositories.Users),
		services.NewCycleEngine(repositories.Users, repositories.Records, repositories.Summaries),
		secret,
		production,
	)
}

func newHandler(
	auth *services.AuthService,
	accounts *services.AccountService,
	records *services.RecordService,
	engine *services.CycleEngine,
	secret string,
	production bool,
) *Handler {
	return &Handler{
		secretKey:    []byte(secret),
		production:   production,
		auth:         auth,
		accounts:     accounts,
		records:      records,
		engine:       engine,
		resetLimiter: newAttemptLimiter(),
		now:          time.Now,
	}
}
