package services

import (
	"errors"
	"strings"
	"time"

	"github.com/adeelur/riderledger/internal/models"
)

var (
	ErrRecordConflict = errors.New("record already exists for date")
	ErrRecordNotFound = errors.New("record not found")
)

type RecordRepository interface {
	FindByID(recordID uint) (models.DailyRecord, bool, error)
	ExistsForUserAndDate(userID uint, date time.Time, excludeID uint) (bool, error)
	ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.DailyRecord, error)
	Create(record *models.DailyRecord) error
	Save(record *models.DailyRecord) error
	DeleteByID(recordID uint) error
}

type RecordUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type RecordService struct {
	records RecordRepository
	users   RecordUserRepository
	now     func() time.Time
}

func NewRecordService(records RecordRepository, users RecordUserRepository) *RecordService {
	return &RecordService{
		records: records,
		users:   users,
		now:     time.Now,
	}
}

// Create stores one record per (user, date). The store's uniqueness
// constraint is the final guard against concurrent writers; its
// violation surfaces as the same conflict as the pre-check.
func (service *RecordService) Create(userID uint, input RecordInput) (models.DailyRecord, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.DailyRecord{}, ErrUserNotFound
	}

	record, err := NormalizeRecordInput(input, user.CreatedAt, service.now())
	if err != nil {
		return models.DailyRecord{}, err
	}
	record.UserID = userID

	exists, err := service.records.ExistsForUserAndDate(userID, record.Date, 0)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if exists {
		return models.DailyRecord{}, ErrRecordConflict
	}

	if err := service.records.Create(&record); err != nil {
		if isUniqueViolation(err) {
			return models.DailyRecord{}, ErrRecordConflict
		}
		return models.DailyRecord{}, err
	}
	return record, nil
}

// Edit rewrites an owned record. Moving it onto a date already held by
// another record is a conflict; a record owned by someone else is
// indistinguishable from a missing one.
func (service *RecordService) Edit(userID uint, recordID uint, input RecordInput) (models.DailyRecord, error) {
	record, found, err := service.records.FindByID(recordID)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if !found || record.UserID != userID {
		return models.DailyRecord{}, ErrRecordNotFound
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.DailyRecord{}, ErrUserNotFound
	}

	if input.Date.IsZero() {
		input.Date = record.Date
	}
	updated, err := NormalizeRecordInput(input, user.CreatedAt, service.now())
	if err != nil {
		return models.DailyRecord{}, err
	}

	if !updated.Date.Equal(DateOnlyUTC(record.Date)) {
		exists, err := service.records.ExistsForUserAndDate(userID, updated.Date, recordID)
		if err != nil {
			return models.DailyRecord{}, err
		}
		if exists {
			return models.DailyRecord{}, ErrRecordConflict
		}
	}

	record.Date = updated.Date
	record.WorkStatus = updated.WorkStatus
	record.Deliveries = updated.Deliveries
	record.Tips = updated.Tips
	record.Expenses = updated.Expenses
	record.DayQuality = updated.DayQuality
	if err := service.records.Save(&record); err != nil {
		if isUniqueViolation(err) {
			return models.DailyRecord{}, ErrRecordConflict
		}
		return models.DailyRecord{}, err
	}
	return record, nil
}

// Delete removes an owned record and returns it so the caller can decide
// whether the active cycle needs a refresh.
func (service *RecordService) Delete(userID uint, recordID uint) (models.DailyRecord, error) {
	record, found, err := service.records.FindByID(recordID)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if !found || record.UserID != userID {
		return models.DailyRecord{}, ErrRecordNotFound
	}

	if err := service.records.DeleteByID(recordID); err != nil {
		return models.DailyRecord{}, err
	}
	return record, nil
}

func (service *RecordService) ListCycle(userID uint, window CycleWindow) ([]models.DailyRecord, error) {
	return service.records.ListByUserRange(userID, window.Start, window.End)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
