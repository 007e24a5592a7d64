package db

import (
	"time"

	"github.com/adeelur/riderledger/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository struct {
	database *gorm.DB
}

func NewSummaryRepository(database *gorm.DB) *SummaryRepository {
	return &SummaryRepository{database: database}
}

func (repo *SummaryRepository) FindByCycle(userID uint, start time.Time, end time.Time) (models.MonthlySummary, bool, error) {
	var summary models.MonthlySummary
	result := repo.database.
		Where("user_id = ? AND start_date = ? AND end_date = ?", userID, start, end).
		Limit(1).
		Find(&summary)
	if result.Error != nil {
		return models.MonthlySummary{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MonthlySummary{}, false, nil
	}
	return summary, true, nil
}

// Upsert writes the cached summary atomically on its (user, start, end)
// key, standing in for the document store's upsert-by-key.
func (repo *SummaryRepository) Upsert(summary *models.MonthlySummary) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "start_date"},
			{Name: "end_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_earnings",
			"total_tips",
			"total_expenses",
			"savings",
			"total_deliveries",
			"days_off",
			"updated_at",
		}),
	}).Create(summary).Error
}
