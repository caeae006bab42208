package repository

import (
	"aquabalance/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByUserID(userID int64) (*models.Profile, error)
	Upsert(profile *models.Profile) error
	SetWeight(userID int64, weightKg float64) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(userID int64) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProfileMissing
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert replaces the whole profile row, keyed by user id. Partial merges are
// never performed here; SetWeight is the single-field exception.
func (r *profileRepository) Upsert(profile *models.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *profileRepository) SetWeight(userID int64, weightKg float64) error {
	res := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("weight_kg", weightKg)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrProfileMissing
	}
	return nil
}
