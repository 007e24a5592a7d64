package services

import (
	"errors"
	"strings"
	"time"

	"github.com/adeelur/riderledger/internal/models"
)

// Income components a caller may include when deriving earnings.
const (
	ComponentFixedSalary = "fixed_salary"
	ComponentDeliveries  = "deliveries"
	ComponentTips        = "tips"
)

const (
	DeliveryRate     = 45.0
	OffDayGrace      = 4
	PenaltyFullTimer = 1170.0
	PenaltyPartTimer = 585.0
)

var ErrInvalidDateRange = errors.New("invalid date range")

func SummaryComponents() []string {
	return []string{ComponentFixedSalary, ComponentDeliveries, ComponentTips}
}

func HistoryComponents() []string {
	return []string{ComponentDeliveries, ComponentTips}
}

// FilterIncludeComponents parses a comma-separated include parameter
// into a set: only recognized components, each at most once. An absent
// parameter means all of them; an empty result is the caller's
// validation failure.
func FilterIncludeComponents(raw string, allowed []string) []string {
	if strings.TrimSpace(raw) == "" {
		return allowed
	}

	remaining := make(map[string]bool, len(allowed))
	for _, component := range allowed {
		remaining[component] = true
	}

	include := make([]string, 0, len(allowed))
	for _, part := range strings.Split(raw, ",") {
		component := strings.TrimSpace(part)
		if remaining[component] {
			remaining[component] = false
			include = append(include, component)
		}
	}
	return include
}

// ComputeEarnings derives cycle earnings from aggregated totals under the
// requested income components, then applies the attendance penalty to the
// off days beyond the grace threshold.
func ComputeEarnings(totals models.CycleTotals, user models.User, include []string) float64 {
	earnings := 0.0
	for _, component := range include {
		switch component {
		case ComponentFixedSalary:
			earnings += user.FixedSalary
		case ComponentDeliveries:
			earnings += float64(totals.TotalDeliveries) * DeliveryRate
		case ComponentTips:
			earnings += totals.TotalTips
		}
	}

	if totals.DaysOff > OffDayGrace {
		penalty := PenaltyPartTimer
		if user.EmploymentType == models.EmploymentFullTimer {
			penalty = PenaltyFullTimer
		}
		earnings -= float64(totals.DaysOff-OffDayGrace) * penalty
	}
	return earnings
}

type SummaryView struct {
	TotalEarnings   float64 `json:"total_earnings"`
	TotalTips       float64 `json:"total_tips"`
	TotalExpenses   float64 `json:"total_expenses"`
	Savings         float64 `json:"savings"`
	TotalDeliveries int     `json:"total_deliveries"`
	DaysOff         int     `json:"days_off"`
}

type HistoryDay struct {
	Date       time.Time `json:"date"`
	WorkStatus string    `json:"work_status"`
	Deliveries int       `json:"deliveries"`
	Tips       float64   `json:"tips"`
	Expenses   float64   `json:"expenses"`
}

type EngineUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type EngineRecordRepository interface {
	AggregateRange(userID uint, start time.Time, end time.Time) (models.CycleTotals, error)
	ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.DailyRecord, error)
}

type EngineSummaryRepository interface {
	FindByCycle(userID uint, start time.Time, end time.Time) (models.MonthlySummary, bool, error)
	Upsert(summary *models.MonthlySummary) error
}

type CycleEngine struct {
	users     EngineUserRepository
	records   EngineRecordRepository
	summaries EngineSummaryRepository
}

func NewCycleEngine(users EngineUserRepository, records EngineRecordRepository, summaries EngineSummaryRepository) *CycleEngine {
	return &CycleEngine{
		users:     users,
		records:   records,
		summaries: summaries,
	}
}

// Refresh recomputes and upserts the cached summary for the exact window,
// with every income component included.
func (engine *CycleEngine) Refresh(userID uint, window CycleWindow) error {
	user, err := engine.users.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}

	totals, err := engine.records.AggregateRange(userID, window.Start, window.End)
	if err != nil {
		return err
	}

	earnings := ComputeEarnings(totals, user, SummaryComponents())
	summary := models.MonthlySummary{
		UserID:          userID,
		StartDate:       window.Start,
		EndDate:         window.End,
		TotalEarnings:   earnings,
		TotalTips:       totals.TotalTips,
		TotalExpenses:   totals.TotalExpenses,
		Savings:         earnings - totals.TotalExpenses,
		TotalDeliveries: totals.TotalDeliveries,
		DaysOff:         totals.DaysOff,
	}
	return engine.summaries.Upsert(&summary)
}

// MonthlySummary prefers the cached summary for the window, re-deriving
// only earnings and savings under the requested include set. Without a
// cache it aggregates the raw records live and returns without caching.
func (engine *CycleEngine) MonthlySummary(userID uint, window CycleWindow, include []string) (SummaryView, error) {
	user, err := engine.users.FindByID(userID)
	if err != nil {
		return SummaryView{}, ErrUserNotFound
	}

	summary, found, err := engine.summaries.FindByCycle(userID, window.Start, window.End)
	if err != nil {
		return SummaryView{}, err
	}

	var totals models.CycleTotals
	if found {
		totals = models.CycleTotals{
			TotalDeliveries: summary.TotalDeliveries,
			TotalTips:       summary.TotalTips,
			TotalExpenses:   summary.TotalExpenses,
			DaysOff:         summary.DaysOff,
		}
	} else {
		totals, err = engine.records.AggregateRange(userID, window.Start, window.End)
		if err != nil {
			return SummaryView{}, err
		}
	}

	earnings := ComputeEarnings(totals, user, include)
	return SummaryView{
		TotalEarnings:   earnings,
		TotalTips:       totals.TotalTips,
		TotalExpenses:   totals.TotalExpenses,
		Savings:         earnings - totals.TotalExpenses,
		TotalDeliveries: totals.TotalDeliveries,
		DaysOff:         totals.DaysOff,
	}, nil
}

// History aggregates raw records over a caller-supplied range, always
// computed live. The returned day list has exactly one entry per calendar
// day, synthesizing zero-valued Off placeholders where no record exists.
func (engine *CycleEngine) History(userID uint, from time.Time, to time.Time, include []string, now time.Time) (SummaryView, []HistoryDay, error) {
	user, err := engine.users.FindByID(userID)
	if err != nil {
		return SummaryView{}, nil, ErrUserNotFound
	}

	fromDay := DateOnlyUTC(from)
	toDay := DateOnlyUTC(to)
	if fromDay.After(toDay) ||
		fromDay.Before(DateOnlyUTC(user.CreatedAt)) ||
		toDay.After(DateOnlyUTC(now)) {
		return SummaryView{}, nil, ErrInvalidDateRange
	}

	records, err := engine.records.ListByUserRange(userID, fromDay, toDay)
	if err != nil {
		return SummaryView{}, nil, err
	}

	var totals models.CycleTotals
	recordsByDay := make(map[string]models.DailyRecord, len(records))
	for _, record := range records {
		totals.TotalDeliveries += record.Deliveries
		totals.TotalTips += record.Tips
		totals.TotalExpenses += record.Expenses
		if record.WorkStatus == models.WorkStatusOff {
			totals.DaysOff++
		}
		recordsByDay[DateOnlyUTC(record.Date).Format("2006-01-02")] = record
	}

	days := make([]HistoryDay, 0, int(toDay.Sub(fromDay).Hours()/24)+1)
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		if record, ok := recordsByDay[day.Format("2006-01-02")]; ok {
			days = append(days, HistoryDay{
				Date:       DateOnlyUTC(record.Date),
				WorkStatus: record.WorkStatus,
				Deliveries: record.Deliveries,
				Tips:       record.Tips,
				Expenses:   record.Expenses,
			})
			continue
		}
		days = append(days, HistoryDay{
			Date:       day,
			WorkStatus: models.WorkStatusOff,
		})
	}

	// History earnings never include the fixed salary or the off-day
	// penalty; only per-delivery pay and tips are derivable per range.
	earnings := 0.0
	for _, component := range include {
		switch component {
		case ComponentDeliveries:
			earnings += float64(totals.TotalDeliveries) * DeliveryRate
		case ComponentTips:
			earnings += totals.TotalTips
		}
	}

	return SummaryView{
		TotalEarnings:   earnings,
		TotalTips:       totals.TotalTips,
		TotalExpenses:   totals.TotalExpenses,
		Savings:         earnings - totals.TotalExpenses,
		TotalDeliveries: totals.TotalDeliveries,
		DaysOff:         totals.DaysOff,
	}, days, nil
}
