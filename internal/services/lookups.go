package services

import "context"

// Lookup collaborators. A false "found" result means the service answered
// but knows nothing about the query; errors mean the call itself failed and
// are propagated unchanged.

type WeatherService interface {
	CurrentTemperature(ctx context.Context, city string) (float64, bool, error)
}

type NutritionService interface {
	FoodCalories(ctx context.Context, query string) (float64, bool, error)
	ExerciseCalories(ctx context.Context, query string, weightKg, heightCm float64, age int) (float64, bool, error)
}

// Translator normalizes free-text food and exercise descriptions into the
// language the nutrition service expects. Always invoked before a
// nutrition or exercise lookup, never after.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
