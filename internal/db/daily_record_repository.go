package db

import (
	"time"

	"github.com/adeelur/riderledger/internal/models"
	"gorm.io/gorm"
)

type DailyRecordRepository struct {
	database *gorm.DB
}

func NewDailyRecordRepository(database *gorm.DB) *DailyRecordRepository {
	return &DailyRecordRepository{database: database}
}

func (repo *DailyRecordRepository) FindByID(recordID uint) (models.DailyRecord, bool, error) {
	var record models.DailyRecord
	result := repo.database.Limit(1).Find(&record, recordID)
	if result.Error != nil {
		return models.DailyRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *DailyRecordRepository) ExistsForUserAndDate(userID uint, date time.Time, excludeID uint) (bool, error) {
	var matched int64
	query := repo.database.Model(&models.DailyRecord{}).
		Where("user_id = ? AND date = ?", userID, date)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *DailyRecordRepository) ListByUserRange(userID uint, start time.Time, end time.Time) ([]models.DailyRecord, error) {
	records := make([]models.DailyRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// AggregateRange mirrors the store's grouped aggregation: summed numeric
// columns plus a conditional count of off days, in one query.
func (repo *DailyRecordRepository) AggregateRange(userID uint, start time.Time, end time.Time) (models.CycleTotals, error) {
	var totals models.CycleTotals
	err := repo.database.Model(&models.DailyRecord{}).
		Select(
			"COALESCE(SUM(deliveries), 0) AS total_deliveries, "+
				"COALESCE(SUM(tips), 0) AS total_tips, "+
				"COALESCE(SUM(expenses), 0) AS total_expenses, "+
				"COALESCE(SUM(CASE WHEN work_status = ? THEN 1 ELSE 0 END), 0) AS days_off",
			models.WorkStatusOff,
		).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Scan(&totals).Error
	if err != nil {
		return models.CycleTotals{}, err
	}
	return totals, nil
}

func (repo *DailyRecordRepository) Create(record *models.DailyRecord) error {
	return repo.database.Create(record).Error
}

func (repo *DailyRecordRepository) Save(record *models.DailyRecord) error {
	return repo.database.Save(record).Error
}

func (repo *DailyRecordRepository) DeleteByID(recordID uint) error {
	return repo.database.Delete(&models.DailyRecord{}, recordID).Error
}
