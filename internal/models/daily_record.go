package models

import "time"

const (
	WorkStatusOn  = "On"
	WorkStatusOff = "Off"
)

const (
	DayQualityExcellent = "Excellent"
	DayQualityVeryGood  = "VeryGood"
	DayQualityGood      = "Good"
	DayQualityAverage   = "Average"
	DayQualityBad       = "Bad"
	DayQualityVeryBad   = "VeryBad"
)

type DailyRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_user_date" json:"user_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date" json:"date"`
	WorkStatus string    `gorm:"not null" json:"work_status"`
	Deliveries int       `gorm:"not null;default:0" json:"deliveries"`
	Tips       float64   `gorm:"not null;default:0" json:"tips"`
	Expenses   float64   `gorm:"not null;default:0" json:"expenses"`
	DayQuality *string   `json:"day_quality"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func ValidWorkStatus(status string) bool {
	return status == WorkStatusOn || status == WorkStatusOff
}

func ValidDayQuality(quality string) bool {
	switch quality {
	case DayQualityExcellent, DayQualityVeryGood, DayQualityGood,
		DayQualityAverage, DayQualityBad, DayQualityVeryBad:
		return true
	default:
		return false
	}
}
