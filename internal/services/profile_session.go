package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aquabalance/internal/models"
	"aquabalance/internal/repository"
)

// CompletionResult is produced when the onboarding conversation finishes:
// the stored profile plus the goals seeded into today's record.
type CompletionResult struct {
	Profile      models.Profile
	Temperature  float64
	WaterGoal    int
	CaloriesGoal int
}

// ProfileSession drives the linear profile-collection conversation. Each
// Advance consumes one user input for the current step and returns the next
// state; on invalid input the state is returned unchanged together with a
// ValidationError so the transport can re-prompt.
type ProfileSession struct {
	profiles repository.ProfileRepository
	weather  WeatherService
	tracker  *Tracker
}

func NewProfileSession(profiles repository.ProfileRepository, weather WeatherService, tracker *Tracker) *ProfileSession {
	return &ProfileSession{
		profiles: profiles,
		weather:  weather,
		tracker:  tracker,
	}
}

// Advance feeds one input into the conversation. The returned state replaces
// the caller's copy. A non-nil CompletionResult means the profile was stored
// and today's record created; the session is over.
func (s *ProfileSession) Advance(ctx context.Context, userID int64, state models.SessionState, input string) (models.SessionState, *CompletionResult, error) {
	input = strings.TrimSpace(input)

	switch state.Step {
	case models.StepSex:
		// Sex arrives from a two-button keyboard, not free text; anything
		// else is a caller bug rather than user error.
		sex := models.Sex(input)
		if !sex.Valid() {
			return state, nil, fmt.Errorf("unexpected sex value %q", input)
		}
		state.Draft.Sex = sex
		state.Step = models.StepWeight
		return state, nil, nil

	case models.StepWeight:
		weight, err := strconv.ParseFloat(input, 64)
		if err != nil || weight <= 0 {
			return state, nil, &models.ValidationError{Field: "weight", Reason: "must be a positive number"}
		}
		state.Draft.WeightKg = weight
		state.Step = models.StepHeight
		return state, nil, nil

	case models.StepHeight:
		height, err := strconv.ParseFloat(input, 64)
		if err != nil || height <= 0 {
			return state, nil, &models.ValidationError{Field: "height", Reason: "must be a positive number"}
		}
		state.Draft.HeightCm = height
		state.Step = models.StepAge
		return state, nil, nil

	case models.StepAge:
		age, err := strconv.Atoi(input)
		if err != nil || age <= 0 {
			return state, nil, &models.ValidationError{Field: "age", Reason: "must be a positive whole number"}
		}
		state.Draft.Age = age
		state.Step = models.StepActivity
		return state, nil, nil

	case models.StepActivity:
		minutes, err := strconv.Atoi(input)
		if err != nil || minutes < 0 {
			return state, nil, &models.ValidationError{Field: "activity", Reason: "must be a whole number of minutes"}
		}
		state.Draft.ActivityMinutes = minutes
		state.Step = models.StepCity
		return state, nil, nil

	case models.StepCity:
		if input == "" {
			return state, nil, &models.ValidationError{Field: "city", Reason: "must not be empty"}
		}
		state.Draft.City = input
		state.Step = models.StepCaloriesGoal
		return state, nil, nil

	case models.StepCaloriesGoal:
		override, err := strconv.Atoi(input)
		if err != nil || override < 0 {
			return state, nil, &models.ValidationError{Field: "calories goal", Reason: "must be a whole number (0 to auto-compute)"}
		}
		state.Draft.CaloriesGoalOverride = override
		return s.complete(ctx, userID, state)
	}

	return state, nil, fmt.Errorf("session for user %d is not accepting input in step %s", userID, state.Step)
}

// complete runs the completion protocol: resolve the city's temperature,
// compute goals, upsert the profile and open today's record. An unresolvable
// city regresses the cursor to city collection, keeping everything gathered
// so far.
func (s *ProfileSession) complete(ctx context.Context, userID int64, state models.SessionState) (models.SessionState, *CompletionResult, error) {
	draft := state.Draft

	temperature, found, err := s.weather.CurrentTemperature(ctx, draft.City)
	if err != nil {
		return state, nil, fmt.Errorf("temperature lookup failed: %w", err)
	}
	if !found {
		state.Step = models.StepCity
		return state, nil, models.ErrCityNotFound
	}

	profile := models.Profile{
		UserID:               userID,
		Sex:                  draft.Sex,
		WeightKg:             draft.WeightKg,
		HeightCm:             draft.HeightCm,
		Age:                  draft.Age,
		ActivityMinutes:      draft.ActivityMinutes,
		City:                 draft.City,
		CaloriesGoalOverride: draft.CaloriesGoalOverride,
	}

	waterGoal := ComputeWaterGoal(profile.Sex, profile.WeightKg, profile.ActivityMinutes, temperature)
	caloriesGoal := resolveCaloriesGoal(&profile)

	if err := s.profiles.Upsert(&profile); err != nil {
		return state, nil, err
	}

	// Implicit day start: silently idempotent, unlike the guarded /new_day.
	if err := s.tracker.StartDay(userID, s.tracker.Today(), temperature, waterGoal, caloriesGoal); err != nil {
		return state, nil, err
	}

	state.Step = models.StepCompleted
	return state, &CompletionResult{
		Profile:      profile,
		Temperature:  temperature,
		WaterGoal:    waterGoal,
		CaloriesGoal: caloriesGoal,
	}, nil
}
