package models

import "time"

// MonthlySummary is a materialized view over the daily records of one
// billing cycle. It is always re-derivable from the records plus the
// user's salary and employment type.
type MonthlySummary struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	UserID          uint      `gorm:"not null;uniqueIndex:uidx_user_cycle" json:"-"`
	StartDate       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_cycle" json:"start_date"`
	EndDate         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_cycle" json:"end_date"`
	TotalEarnings   float64   `gorm:"not null" json:"total_earnings"`
	TotalTips       float64   `gorm:"not null" json:"total_tips"`
	TotalExpenses   float64   `gorm:"not null" json:"total_expenses"`
	Savings         float64   `gorm:"not null" json:"savings"`
	TotalDeliveries int       `gorm:"not null" json:"total_deliveries"`
	DaysOff         int       `gorm:"not null" json:"days_off"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
