package models

// CycleTotals is the grouped aggregate over the daily records of one
// date window: summed deliveries, tips, expenses and a conditional count
// of off days.
type CycleTotals struct {
	TotalDeliveries int     `gorm:"column:total_deliveries" json:"total_deliveries"`
	TotalTips       float64 `gorm:"column:total_tips" json:"total_tips"`
	TotalExpenses   float64 `gorm:"column:total_expenses" json:"total_expenses"`
	DaysOff         int     `gorm:"column:days_off" json:"days_off"`
}
