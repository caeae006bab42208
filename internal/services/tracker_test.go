package services

import (
	"context"
	"testing"
	"time"

	"aquabalance/internal/mocks"
	"aquabalance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testDate = "2024-01-15"

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
}

func newTestTracker() (*Tracker, *mocks.MockProfileRepository, *mocks.MockDailyRecordRepository, *mocks.MockWeatherService, *mocks.MockNutritionService, *mocks.MockTranslator) {
	profiles := new(mocks.MockProfileRepository)
	days := new(mocks.MockDailyRecordRepository)
	weather := new(mocks.MockWeatherService)
	nutrition := new(mocks.MockNutritionService)
	translator := new(mocks.MockTranslator)

	tracker := NewTracker(profiles, days, weather, nutrition, translator)
	tracker.now = fixedClock
	return tracker, profiles, days, weather, nutrition, translator
}

func testProfile() *models.Profile {
	return &models.Profile{
		UserID:          1,
		Sex:             models.SexMale,
		WeightKg:        70,
		HeightCm:        175,
		Age:             25,
		ActivityMinutes: 30,
		City:            "London",
	}
}

func TestStartDayIdempotent(t *testing.T) {
	tracker, _, days, _, _, _ := newTestTracker()

	days.On("CreateIfAbsent", mock.AnythingOfType("*models.DailyRecord")).Return(nil)

	assert.NoError(t, tracker.StartDay(1, testDate, 28, 3600, 2033))
	assert.NoError(t, tracker.StartDay(1, testDate, 28, 3600, 2033))

	days.AssertNumberOfCalls(t, "CreateIfAbsent", 2)
}

func TestHasOpenDay(t *testing.T) {
	tracker, _, days, _, _, _ := newTestTracker()

	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
	days.On("FindByUserIDAndDate", int64(2), testDate).Return(nil, models.ErrNoSuchDay)

	open, err := tracker.HasOpenDay(1)
	assert.NoError(t, err)
	assert.True(t, open)

	open, err = tracker.HasOpenDay(2)
	assert.NoError(t, err)
	assert.False(t, open)
}

func TestNewDayComputesGoals(t *testing.T) {
	tracker, profiles, days, weather, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(nil, models.ErrNoSuchDay)
	weather.On("CurrentTemperature", mock.Anything, "London").Return(28.0, true, nil)
	days.On("CreateIfAbsent", mock.MatchedBy(func(r *models.DailyRecord) bool {
		return r.UserID == 1 && r.Date == testDate &&
			r.Temperature == 28 && r.WaterGoal == 3600 && r.CaloriesGoal == 2033
	})).Return(nil)

	goals, err := tracker.NewDay(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, testDate, goals.Date)
	assert.Equal(t, 3600, goals.WaterGoal)
	assert.Equal(t, 2033, goals.CaloriesGoal)
	days.AssertExpectations(t)
}

func TestNewDayHonorsOverride(t *testing.T) {
	tracker, profiles, days, weather, _, _ := newTestTracker()

	profile := testProfile()
	profile.CaloriesGoalOverride = 1800
	profiles.On("FindByUserID", int64(1)).Return(profile, nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(nil, models.ErrNoSuchDay)
	weather.On("CurrentTemperature", mock.Anything, "London").Return(20.0, true, nil)
	days.On("CreateIfAbsent", mock.AnythingOfType("*models.DailyRecord")).Return(nil)

	goals, err := tracker.NewDay(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1800, goals.CaloriesGoal)
}

func TestNewDayAlreadyOpen(t *testing.T) {
	tracker, profiles, days, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)

	_, err := tracker.NewDay(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrDayAlreadyOpen)
	days.AssertNotCalled(t, "CreateIfAbsent", mock.Anything)
}

func TestNewDayCityNotFound(t *testing.T) {
	tracker, profiles, days, weather, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(nil, models.ErrNoSuchDay)
	weather.On("CurrentTemperature", mock.Anything, "London").Return(0.0, false, nil)

	_, err := tracker.NewDay(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrCityNotFound)
	days.AssertNotCalled(t, "CreateIfAbsent", mock.Anything)
}

func TestNewDayWithoutProfile(t *testing.T) {
	tracker, profiles, _, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(nil, models.ErrProfileMissing)

	_, err := tracker.NewDay(context.Background(), 1)
	assert.ErrorIs(t, err, models.ErrProfileMissing)
}

func TestAccumulateRejectsNegativeAmount(t *testing.T) {
	tracker, _, days, _, _, _ := newTestTracker()

	err := tracker.Accumulate(1, testDate, models.FieldLoggedWater, -100)
	assert.True(t, models.IsValidation(err))
	days.AssertNotCalled(t, "IncrementField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccumulateNoSuchDay(t *testing.T) {
	tracker, _, days, _, _, _ := newTestTracker()

	days.On("IncrementField", int64(1), testDate, models.FieldLoggedWater, 300).Return(models.ErrNoSuchDay)

	err := tracker.Accumulate(1, testDate, models.FieldLoggedWater, 300)
	assert.ErrorIs(t, err, models.ErrNoSuchDay)
}

func TestLogWaterPreconditionOrder(t *testing.T) {
	tracker, profiles, days, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(nil, models.ErrProfileMissing)
	err := tracker.LogWater(1, 300)
	assert.ErrorIs(t, err, models.ErrProfileMissing)

	profiles.On("FindByUserID", int64(2)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(2), testDate).Return(nil, models.ErrNoSuchDay)
	err = tracker.LogWater(2, 300)
	assert.ErrorIs(t, err, models.ErrNoSuchDay)
}

func TestLogWater(t *testing.T) {
	tracker, profiles, days, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
	days.On("IncrementField", int64(1), testDate, models.FieldLoggedWater, 300).Return(nil)

	assert.NoError(t, tracker.LogWater(1, 300))
	days.AssertExpectations(t)
}

func TestLogFood(t *testing.T) {
	tracker, profiles, days, _, nutrition, translator := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
	translator.On("Translate", mock.Anything, "борщ").Return("borscht", nil)
	nutrition.On("FoodCalories", mock.Anything, "borscht").Return(350.6, true, nil)
	days.On("IncrementField", int64(1), testDate, models.FieldLoggedCalories, 350).Return(nil)

	kcal, err := tracker.LogFood(context.Background(), 1, "борщ")
	assert.NoError(t, err)
	assert.Equal(t, 350, kcal)
	days.AssertExpectations(t)
}

func TestLogFoodNotFound(t *testing.T) {
	tracker, profiles, days, _, nutrition, translator := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
	translator.On("Translate", mock.Anything, "mystery dish").Return("mystery dish", nil)
	nutrition.On("FoodCalories", mock.Anything, "mystery dish").Return(0.0, false, nil)

	_, err := tracker.LogFood(context.Background(), 1, "mystery dish")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	days.AssertNotCalled(t, "IncrementField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogWorkoutWaterBonus(t *testing.T) {
	tests := []struct {
		name       string
		duration   int
		extraWater int
	}{
		{"two complete blocks", 65, 400},
		{"exactly one block", 30, 200},
		{"below one block", 29, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, profiles, days, _, nutrition, translator := newTestTracker()

			profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
			days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
			translator.On("Translate", mock.Anything, mock.AnythingOfType("string")).Return("running", nil)
			nutrition.On("ExerciseCalories", mock.Anything, "running", 70.0, 175.0, 25).Return(320.0, true, nil)
			days.On("IncrementField", int64(1), testDate, models.FieldBurnedCalories, 320).Return(nil)
			if tt.extraWater > 0 {
				days.On("IncrementField", int64(1), testDate, models.FieldWaterGoal, tt.extraWater).Return(nil)
			}

			result, err := tracker.LogWorkout(context.Background(), 1, "бег", tt.duration)
			assert.NoError(t, err)
			assert.Equal(t, 320, result.BurnedCalories)
			assert.Equal(t, tt.extraWater, result.ExtraWaterML)
			days.AssertExpectations(t)
			if tt.extraWater == 0 {
				days.AssertNotCalled(t, "IncrementField", int64(1), testDate, models.FieldWaterGoal, mock.Anything)
			}
		})
	}
}

func TestLogWorkoutNotFound(t *testing.T) {
	tracker, profiles, days, _, nutrition, translator := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{UserID: 1, Date: testDate}, nil)
	translator.On("Translate", mock.Anything, mock.AnythingOfType("string")).Return("levitating", nil)
	nutrition.On("ExerciseCalories", mock.Anything, "levitating", 70.0, 175.0, 25).Return(0.0, false, nil)

	_, err := tracker.LogWorkout(context.Background(), 1, "levitating", 45)
	assert.ErrorIs(t, err, models.ErrExerciseNotFound)
	days.AssertNotCalled(t, "IncrementField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSnapshotClampsRemainingWater(t *testing.T) {
	tracker, profiles, days, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDate", int64(1), testDate).Return(&models.DailyRecord{
		UserID:         1,
		Date:           testDate,
		WaterGoal:      3000,
		LoggedWater:    3500,
		CaloriesGoal:   2000,
		LoggedCalories: 1500,
		BurnedCalories: 400,
	}, nil)

	snapshot, err := tracker.Snapshot(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, snapshot.RemainingWater)
	assert.Equal(t, 1100, snapshot.CalorieBalance)
	assert.Equal(t, 3500, snapshot.LoggedWater)
}

func TestSetWeight(t *testing.T) {
	tracker, profiles, _, _, _, _ := newTestTracker()

	profiles.On("SetWeight", int64(1), 72.5).Return(nil)
	assert.NoError(t, tracker.SetWeight(1, 72.5))

	err := tracker.SetWeight(1, -3)
	assert.True(t, models.IsValidation(err))
}

func TestRecentRecordsRange(t *testing.T) {
	tracker, profiles, days, _, _, _ := newTestTracker()

	profiles.On("FindByUserID", int64(1)).Return(testProfile(), nil)
	days.On("FindByUserIDAndDateRange", int64(1), "2024-01-09", "2024-01-15").
		Return([]models.DailyRecord{{UserID: 1, Date: "2024-01-09"}, {UserID: 1, Date: "2024-01-15"}}, nil)

	records, err := tracker.RecentRecords(1, 7)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	days.AssertExpectations(t)
}
