package repository

import (
	"aquabalance/internal/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository interface {
	FindByUserIDAndDate(userID int64, date string) (*models.DailyRecord, error)
	CreateIfAbsent(record *models.DailyRecord) error
	IncrementField(userID int64, date string, field models.DailyField, amount int) error
	FindByUserIDAndDateRange(userID int64, startDate, endDate string) ([]models.DailyRecord, error)
}

type dailyRecordRepository struct {
	db *gorm.DB
}

func NewDailyRecordRepository(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) FindByUserIDAndDate(userID int64, date string) (*models.DailyRecord, error) {
	var record models.DailyRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNoSuchDay
		}
		return nil, err
	}
	return &record, nil
}

// CreateIfAbsent inserts the record unless one already exists for the same
// (user_id, date) key; a second attempt is a silent no-op, never an error.
func (r *dailyRecordRepository) CreateIfAbsent(record *models.DailyRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(record).Error
}

// IncrementField adds amount to one counter of the day row in a single
// UPDATE, which keeps concurrent accumulations for the same record atomic.
func (r *dailyRecordRepository) IncrementField(userID int64, date string, field models.DailyField, amount int) error {
	if !field.Valid() {
		return fmt.Errorf("unknown daily field %q", field)
	}
	res := r.db.Model(&models.DailyRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		UpdateColumn(field.Column(), gorm.Expr(field.Column()+" + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNoSuchDay
	}
	return nil
}

func (r *dailyRecordRepository) FindByUserIDAndDateRange(userID int64, startDate, endDate string) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := r.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
