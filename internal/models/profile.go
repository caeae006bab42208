package models

import (
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Profile holds the physiological and lifestyle attributes used to derive
// daily goals. One row per telegram user; replaced wholesale on re-submission.
type Profile struct {
	UserID          int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id" example:"123456789"`
	CreatedAt       time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	Sex             Sex       `gorm:"type:varchar(8)" json:"sex" example:"male"`
	WeightKg        float64   `json:"weight_kg" example:"70"`
	HeightCm        float64   `json:"height_cm" example:"175"`
	Age             int       `json:"age" example:"25"`
	ActivityMinutes int       `json:"activity_minutes" example:"30"`
	City            string    `json:"city" example:"London"`
	// CaloriesGoalOverride, when nonzero, is used verbatim instead of the
	// computed calorie goal.
	CaloriesGoalOverride int `json:"calories_goal_override" example:"0"`
}
