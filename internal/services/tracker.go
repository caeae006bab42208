package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aquabalance/internal/models"
	"aquabalance/internal/repository"
)

// workoutWaterBonusML is added to the day's water goal for every complete
// 30-minute block of a logged workout.
const workoutWaterBonusML = 200

// DayGoals is what an explicit new day reports back.
type DayGoals struct {
	Date         string  `json:"date"`
	Temperature  float64 `json:"temperature"`
	WaterGoal    int     `json:"water_goal"`
	CaloriesGoal int     `json:"calories_goal"`
}

// WorkoutResult reports what a logged workout changed.
type WorkoutResult struct {
	BurnedCalories int `json:"burned_calories"`
	ExtraWaterML   int `json:"extra_water_ml"`
}

// Tracker manages the current-day record per user: day starts, counter
// accumulation and progress snapshots. All store access goes through the
// injected repositories so tests can substitute doubles.
type Tracker struct {
	profiles   repository.ProfileRepository
	days       repository.DailyRecordRepository
	weather    WeatherService
	nutrition  NutritionService
	translator Translator
	now        func() time.Time
}

func NewTracker(
	profiles repository.ProfileRepository,
	days repository.DailyRecordRepository,
	weather WeatherService,
	nutrition NutritionService,
	translator Translator,
) *Tracker {
	return &Tracker{
		profiles:   profiles,
		days:       days,
		weather:    weather,
		nutrition:  nutrition,
		translator: translator,
		now:        time.Now,
	}
}

// Today returns the process-wide current day key.
func (t *Tracker) Today() string {
	return t.now().Format(models.DateLayout)
}

// StartDay creates the DailyRecord for (userID, date) unless one already
// exists; a repeat call is a silent no-op. Used by both explicit /new_day
// and the implicit start at profile completion.
func (t *Tracker) StartDay(userID int64, date string, temperature float64, waterGoal, caloriesGoal int) error {
	return t.days.CreateIfAbsent(&models.DailyRecord{
		UserID:       userID,
		Date:         date,
		Temperature:  temperature,
		WaterGoal:    waterGoal,
		CaloriesGoal: caloriesGoal,
	})
}

// HasOpenDay reports whether the user already has a record for today.
func (t *Tracker) HasOpenDay(userID int64) (bool, error) {
	_, err := t.days.FindByUserIDAndDate(userID, t.Today())
	if err != nil {
		if errors.Is(err, models.ErrNoSuchDay) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NewDay explicitly opens today for the user: it resolves the current
// temperature for the profile's city, recomputes both goals and creates the
// record. Fails with ErrDayAlreadyOpen if today was already started.
func (t *Tracker) NewDay(ctx context.Context, userID int64) (*DayGoals, error) {
	profile, err := t.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	open, err := t.HasOpenDay(userID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, models.ErrDayAlreadyOpen
	}

	temperature, found, err := t.weather.CurrentTemperature(ctx, profile.City)
	if err != nil {
		return nil, fmt.Errorf("temperature lookup failed: %w", err)
	}
	if !found {
		return nil, models.ErrCityNotFound
	}

	waterGoal := ComputeWaterGoal(profile.Sex, profile.WeightKg, profile.ActivityMinutes, temperature)
	caloriesGoal := resolveCaloriesGoal(profile)

	date := t.Today()
	if err := t.StartDay(userID, date, temperature, waterGoal, caloriesGoal); err != nil {
		return nil, err
	}

	return &DayGoals{
		Date:         date,
		Temperature:  temperature,
		WaterGoal:    waterGoal,
		CaloriesGoal: caloriesGoal,
	}, nil
}

// Accumulate adds a non-negative amount to one counter of the (userID, date)
// record. Counters never decrease.
func (t *Tracker) Accumulate(userID int64, date string, field models.DailyField, amount int) error {
	if amount < 0 {
		return &models.ValidationError{Field: string(field), Reason: "amount must not be negative"}
	}
	return t.days.IncrementField(userID, date, field, amount)
}

// LogWater records drunk water in mL against today.
func (t *Tracker) LogWater(userID int64, amountML int) error {
	if err := t.requireOpenDay(userID); err != nil {
		return err
	}
	return t.Accumulate(userID, t.Today(), models.FieldLoggedWater, amountML)
}

// LogFood resolves the calorie content of a free-text food description and
// accumulates it against today. Returns the kcal logged.
func (t *Tracker) LogFood(ctx context.Context, userID int64, description string) (int, error) {
	if err := t.requireOpenDay(userID); err != nil {
		return 0, err
	}

	query, err := t.translator.Translate(ctx, description)
	if err != nil {
		return 0, fmt.Errorf("translation failed: %w", err)
	}

	calories, found, err := t.nutrition.FoodCalories(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("nutrition lookup failed: %w", err)
	}
	if !found {
		return 0, models.ErrProductNotFound
	}

	kcal := int(calories)
	if err := t.Accumulate(userID, t.Today(), models.FieldLoggedCalories, kcal); err != nil {
		return 0, err
	}
	return kcal, nil
}

// LogWorkout resolves burned calories for a free-text exercise description
// and duration, accumulates them, and raises the day's water goal by 200 mL
// per complete 30-minute block.
func (t *Tracker) LogWorkout(ctx context.Context, userID int64, description string, durationMinutes int) (*WorkoutResult, error) {
	if durationMinutes <= 0 {
		return nil, &models.ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	if err := t.requireOpenDay(userID); err != nil {
		return nil, err
	}

	profile, err := t.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	query, err := t.translator.Translate(ctx, fmt.Sprintf("%s %d min", description, durationMinutes))
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	calories, found, err := t.nutrition.ExerciseCalories(ctx, query, profile.WeightKg, profile.HeightCm, profile.Age)
	if err != nil {
		return nil, fmt.Errorf("exercise lookup failed: %w", err)
	}
	if !found {
		return nil, models.ErrExerciseNotFound
	}

	date := t.Today()
	burned := int(calories)
	if err := t.Accumulate(userID, date, models.FieldBurnedCalories, burned); err != nil {
		return nil, err
	}

	extraWater := durationMinutes / 30 * workoutWaterBonusML
	if extraWater > 0 {
		if err := t.Accumulate(userID, date, models.FieldWaterGoal, extraWater); err != nil {
			return nil, err
		}
	}

	return &WorkoutResult{BurnedCalories: burned, ExtraWaterML: extraWater}, nil
}

// Snapshot returns today's progress view: remaining water clamped at zero
// and the consumed-minus-burned calorie balance, plus the raw fields.
func (t *Tracker) Snapshot(userID int64) (*models.ProgressSnapshot, error) {
	if _, err := t.profiles.FindByUserID(userID); err != nil {
		return nil, err
	}

	record, err := t.days.FindByUserIDAndDate(userID, t.Today())
	if err != nil {
		return nil, err
	}

	remaining := record.WaterGoal - record.LoggedWater
	if remaining < 0 {
		remaining = 0
	}

	return &models.ProgressSnapshot{
		Date:           record.Date,
		Temperature:    record.Temperature,
		WaterGoal:      record.WaterGoal,
		LoggedWater:    record.LoggedWater,
		RemainingWater: remaining,
		CaloriesGoal:   record.CaloriesGoal,
		LoggedCalories: record.LoggedCalories,
		BurnedCalories: record.BurnedCalories,
		CalorieBalance: record.LoggedCalories - record.BurnedCalories,
	}, nil
}

// SetWeight updates just the weight attribute of an existing profile.
func (t *Tracker) SetWeight(userID int64, weightKg float64) error {
	if weightKg <= 0 {
		return &models.ValidationError{Field: "weight", Reason: "must be a positive number"}
	}
	return t.profiles.SetWeight(userID, weightKg)
}

// RecentRecords returns the user's records for the last n days including
// today, ordered by date ascending.
func (t *Tracker) RecentRecords(userID int64, days int) ([]models.DailyRecord, error) {
	if days <= 0 {
		return nil, &models.ValidationError{Field: "days", Reason: "must be a positive number"}
	}
	if _, err := t.profiles.FindByUserID(userID); err != nil {
		return nil, err
	}

	today := t.now()
	start := today.AddDate(0, 0, -(days - 1)).Format(models.DateLayout)
	end := today.Format(models.DateLayout)
	return t.days.FindByUserIDAndDateRange(userID, start, end)
}

// requireOpenDay enforces the precondition order of the daily commands:
// profile first, then an open day.
func (t *Tracker) requireOpenDay(userID int64) error {
	if _, err := t.profiles.FindByUserID(userID); err != nil {
		return err
	}
	if _, err := t.days.FindByUserIDAndDate(userID, t.Today()); err != nil {
		return err
	}
	return nil
}
