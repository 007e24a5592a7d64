package models

import "time"

const (
	EmploymentPartTimer = "PartTimer"
	EmploymentFullTimer = "FullTimer"
)

const (
	SalaryPartTimer = 18500.0
	SalaryFullTimer = 37000.0
)

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	EmploymentType    string    `gorm:"not null" json:"employmentType"`
	FixedSalary       float64   `gorm:"not null" json:"fixedSalary"`
	IsAccountVerified bool      `gorm:"not null;default:false" json:"isAccountVerified"`
	VerifyOTP         string    `gorm:"column:verify_otp;not null;default:''" json:"-"`
	VerifyOTPExpireAt time.Time `gorm:"column:verify_otp_expire_at" json:"-"`
	ResetOTP          string    `gorm:"column:reset_otp;not null;default:''" json:"-"`
	ResetOTPExpireAt  time.Time `gorm:"column:reset_otp_expire_at" json:"-"`
	ProfilePicture    string    `json:"profilePicture,omitempty"`
	CreatedAt         time.Time `gorm:"not null" json:"-"`
}

func ValidEmploymentType(employmentType string) bool {
	return employmentType == EmploymentPartTimer || employmentType == EmploymentFullTimer
}

// SalaryForEmploymentType is the sole source of the fixed salary; it is
// reapplied whenever the employment type changes.
func SalaryForEmploymentType(employmentType string) float64 {
	if employmentType == EmploymentFullTimer {
		return SalaryFullTimer
	}
	return SalaryPartTimer
}
