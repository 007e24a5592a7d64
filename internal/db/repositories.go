package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Records   *DailyRecordRepository
	Summaries *SummaryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Records:   NewDailyRecordRepository(database),
		Summaries: NewSummaryRepository(database),
	}
}
