package services

import (
	"errors"
	"time"

	"github.com/adeelur/riderledger/internal/models"
)

var (
	ErrRecordFieldsRequired = errors.New("record date and work status required")
	ErrInvalidWorkStatus    = errors.New("invalid work status")
	ErrInvalidDayQuality    = errors.New("invalid day quality")
	ErrNegativeAmounts      = errors.New("negative amounts")
	ErrDateOutOfBounds      = errors.New("date out of bounds")
)

type RecordInput struct {
	Date       time.Time
	WorkStatus string
	Deliveries int
	Tips       float64
	Expenses   float64
	DayQuality string
}

// NormalizeRecordInput validates the two-variant day shape at a single
// choke point: an Off day carries zeroed numerics and no quality, an On
// day carries non-negative numerics and one of the six qualities
// (defaulting to Average).
func NormalizeRecordInput(input RecordInput, accountCreated time.Time, now time.Time) (models.DailyRecord, error) {
	if input.Date.IsZero() || input.WorkStatus == "" {
		return models.DailyRecord{}, ErrRecordFieldsRequired
	}
	if !models.ValidWorkStatus(input.WorkStatus) {
		return models.DailyRecord{}, ErrInvalidWorkStatus
	}

	date := DateOnlyUTC(input.Date)
	if date.Before(DateOnlyUTC(accountCreated)) || date.After(DateOnlyUTC(now)) {
		return models.DailyRecord{}, ErrDateOutOfBounds
	}

	record := models.DailyRecord{
		Date:       date,
		WorkStatus: input.WorkStatus,
	}

	if input.WorkStatus == models.WorkStatusOff {
		return record, nil
	}

	if input.Deliveries < 0 || input.Tips < 0 || input.Expenses < 0 {
		return models.DailyRecord{}, ErrNegativeAmounts
	}

	quality := input.DayQuality
	if quality == "" {
		quality = models.DayQualityAverage
	}
	if !models.ValidDayQuality(quality) {
		return models.DailyRecord{}, ErrInvalidDayQuality
	}

	record.Deliveries = input.Deliveries
	record.Tips = input.Tips
	record.Expenses = input.Expenses
	record.DayQuality = &quality
	return record, nil
}
