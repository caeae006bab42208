package services

import (
	"aquabalance/internal/models"
)

// ComputeWaterGoal derives the daily water goal in mL.
// Base is weight×30 plus 500 mL per complete 30-minute activity block; men
// get 500 mL extra, and hot weather adds 500 mL above 25°C and another
// 500 mL above 30°C.
func ComputeWaterGoal(sex models.Sex, weightKg float64, activityMinutes int, temperature float64) int {
	goal := weightKg*30 + float64(activityMinutes/30)*500

	if sex == models.SexMale {
		goal += 500
	}
	if temperature > 25 {
		goal += 500
	}
	if temperature > 30 {
		goal += 500
	}

	return int(goal)
}

// ComputeCaloriesGoal derives the daily calorie goal in kcal using the
// Mifflin-St Jeor equation plus an activity term of 12 kcal per minute.
func ComputeCaloriesGoal(sex models.Sex, weightKg, heightCm float64, age, activityMinutes int) int {
	goal := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == models.SexMale {
		goal += 5
	} else {
		goal -= 161
	}
	goal += 12 * float64(activityMinutes)
	return int(goal)
}

// resolveCaloriesGoal applies the override rule: a nonzero override is used
// verbatim, zero means auto-compute.
func resolveCaloriesGoal(profile *models.Profile) int {
	if profile.CaloriesGoalOverride != 0 {
		return profile.CaloriesGoalOverride
	}
	return ComputeCaloriesGoal(profile.Sex, profile.WeightKg, profile.HeightCm, profile.Age, profile.ActivityMinutes)
}
