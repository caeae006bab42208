package services

import (
	"context"
	"testing"

	"aquabalance/internal/mocks"
	"aquabalance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestSession() (*ProfileSession, *mocks.MockProfileRepository, *mocks.MockDailyRecordRepository, *mocks.MockWeatherService) {
	profiles := new(mocks.MockProfileRepository)
	days := new(mocks.MockDailyRecordRepository)
	weather := new(mocks.MockWeatherService)

	tracker := NewTracker(profiles, days, weather, new(mocks.MockNutritionService), new(mocks.MockTranslator))
	tracker.now = fixedClock

	return NewProfileSession(profiles, weather, tracker), profiles, days, weather
}

// walk feeds inputs one by one, failing the test on any intermediate error.
func walk(t *testing.T, session *ProfileSession, state models.SessionState, inputs ...string) models.SessionState {
	t.Helper()
	for _, input := range inputs {
		next, _, err := session.Advance(context.Background(), 1, state, input)
		assert.NoError(t, err)
		state = next
	}
	return state
}

func TestSessionFullFlow(t *testing.T) {
	session, profiles, days, weather := newTestSession()

	weather.On("CurrentTemperature", mock.Anything, "London").Return(28.0, true, nil)
	profiles.On("Upsert", mock.MatchedBy(func(p *models.Profile) bool {
		return p.UserID == 1 && p.Sex == models.SexMale &&
			p.WeightKg == 70 && p.HeightCm == 175 && p.Age == 25 &&
			p.ActivityMinutes == 30 && p.City == "London" &&
			p.CaloriesGoalOverride == 0
	})).Return(nil)
	days.On("CreateIfAbsent", mock.MatchedBy(func(r *models.DailyRecord) bool {
		return r.UserID == 1 && r.Date == testDate &&
			r.Temperature == 28 && r.WaterGoal == 3600 && r.CaloriesGoal == 2033
	})).Return(nil)

	state := walk(t, session, models.NewSessionState(), "male", "70", "175", "25", "30", "London")
	assert.Equal(t, models.StepCaloriesGoal, state.Step)

	state, result, err := session.Advance(context.Background(), 1, state, "0")
	assert.NoError(t, err)
	assert.Equal(t, models.StepCompleted, state.Step)
	assert.NotNil(t, result)
	assert.Equal(t, 3600, result.WaterGoal)
	assert.Equal(t, 2033, result.CaloriesGoal)
	assert.Equal(t, 28.0, result.Temperature)

	profiles.AssertExpectations(t)
	days.AssertExpectations(t)
}

func TestSessionOverrideUsedVerbatim(t *testing.T) {
	session, profiles, days, weather := newTestSession()

	weather.On("CurrentTemperature", mock.Anything, "London").Return(20.0, true, nil)
	profiles.On("Upsert", mock.AnythingOfType("*models.Profile")).Return(nil)
	days.On("CreateIfAbsent", mock.AnythingOfType("*models.DailyRecord")).Return(nil)

	state := walk(t, session, models.NewSessionState(), "female", "60", "165", "30", "0", "London")

	_, result, err := session.Advance(context.Background(), 1, state, "1800")
	assert.NoError(t, err)
	assert.Equal(t, 1800, result.CaloriesGoal)
}

func TestSessionInvalidInputKeepsStep(t *testing.T) {
	session, _, _, _ := newTestSession()

	state := walk(t, session, models.NewSessionState(), "male")
	assert.Equal(t, models.StepWeight, state.Step)

	next, result, err := session.Advance(context.Background(), 1, state, "heavy")
	assert.True(t, models.IsValidation(err))
	assert.Nil(t, result)
	assert.Equal(t, models.StepWeight, next.Step)
	assert.Equal(t, state.Draft, next.Draft)
}

func TestSessionNegativeInputRejected(t *testing.T) {
	session, _, _, _ := newTestSession()

	state := walk(t, session, models.NewSessionState(), "male")

	_, _, err := session.Advance(context.Background(), 1, state, "-70")
	assert.True(t, models.IsValidation(err))
}

func TestSessionCityNotFoundRegresses(t *testing.T) {
	session, profiles, days, weather := newTestSession()

	weather.On("CurrentTemperature", mock.Anything, "Atlantis").Return(0.0, false, nil)

	state := walk(t, session, models.NewSessionState(), "male", "70", "175", "25", "30", "Atlantis")

	next, result, err := session.Advance(context.Background(), 1, state, "0")
	assert.ErrorIs(t, err, models.ErrCityNotFound)
	assert.Nil(t, result)
	assert.Equal(t, models.StepCity, next.Step)

	// Everything collected so far is retained.
	assert.Equal(t, models.SexMale, next.Draft.Sex)
	assert.Equal(t, 70.0, next.Draft.WeightKg)
	assert.Equal(t, 175.0, next.Draft.HeightCm)
	assert.Equal(t, 25, next.Draft.Age)
	assert.Equal(t, 30, next.Draft.ActivityMinutes)

	profiles.AssertNotCalled(t, "Upsert", mock.Anything)
	days.AssertNotCalled(t, "CreateIfAbsent", mock.Anything)

	// The city can be re-entered and completion retried.
	weather.On("CurrentTemperature", mock.Anything, "London").Return(28.0, true, nil)
	profiles.On("Upsert", mock.AnythingOfType("*models.Profile")).Return(nil)
	days.On("CreateIfAbsent", mock.AnythingOfType("*models.DailyRecord")).Return(nil)

	next = walk(t, session, next, "London")
	_, result, err = session.Advance(context.Background(), 1, next, "0")
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSessionSexIsCallerContract(t *testing.T) {
	session, _, _, _ := newTestSession()

	_, _, err := session.Advance(context.Background(), 1, models.NewSessionState(), "other")
	assert.Error(t, err)
	assert.False(t, models.IsValidation(err), "out-of-enum sex is a caller bug, not user input to re-prompt")
}

func TestSessionCompletedRejectsInput(t *testing.T) {
	session, _, _, _ := newTestSession()

	state := models.SessionState{Step: models.StepCompleted}
	_, _, err := session.Advance(context.Background(), 1, state, "anything")
	assert.Error(t, err)
}
