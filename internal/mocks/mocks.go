package mocks

import (
	"context"

	"aquabalance/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(userID int64) (*models.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SetWeight(userID int64, weightKg float64) error {
	args := m.Called(userID, weightKg)
	return args.Error(0)
}

// Shared MockDailyRecordRepository
type MockDailyRecordRepository struct {
	mock.Mock
}

func (m *MockDailyRecordRepository) FindByUserIDAndDate(userID int64, date string) (*models.DailyRecord, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyRecord), args.Error(1)
}

func (m *MockDailyRecordRepository) CreateIfAbsent(record *models.DailyRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) IncrementField(userID int64, date string, field models.DailyField, amount int) error {
	args := m.Called(userID, date, field, amount)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) FindByUserIDAndDateRange(userID int64, startDate, endDate string) ([]models.DailyRecord, error) {
	args := m.Called(userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyRecord), args.Error(1)
}

// Shared MockWeatherService
type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) CurrentTemperature(ctx context.Context, city string) (float64, bool, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

// Shared MockNutritionService
type MockNutritionService struct {
	mock.Mock
}

func (m *MockNutritionService) FoodCalories(ctx context.Context, query string) (float64, bool, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockNutritionService) ExerciseCalories(ctx context.Context, query string, weightKg, heightCm float64, age int) (float64, bool, error) {
	args := m.Called(ctx, query, weightKg, heightCm, age)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

// Shared MockTranslator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}
