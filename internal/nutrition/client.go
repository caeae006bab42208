package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	nutrientsURL = "https://trackapi.nutritionix.com/v2/natural/nutrients"
	exerciseURL  = "https://trackapi.nutritionix.com/v2/natural/exercise"
)

// Client answers calorie questions about free-text food and exercise
// descriptions via the Nutritionix natural-language API. Queries must
// already be in English; callers translate first.
type Client struct {
	appID      string
	appKey     string
	httpClient *http.Client
}

type foodRequest struct {
	Query string `json:"query"`
}

type foodResponse struct {
	Foods []struct {
		NfCalories float64 `json:"nf_calories"`
	} `json:"foods"`
}

type exerciseRequest struct {
	Query    string  `json:"query"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Age      int     `json:"age"`
}

type exerciseResponse struct {
	Exercises []struct {
		NfCalories float64 `json:"nf_calories"`
	} `json:"exercises"`
}

// NewClient reads NUTRITIONIX_APP_ID and NUTRITIONIX_APP_KEY from the
// environment.
func NewClient() *Client {
	return &Client{
		appID:      os.Getenv("NUTRITIONIX_APP_ID"),
		appKey:     os.Getenv("NUTRITIONIX_APP_KEY"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FoodCalories returns the calorie content of the first food Nutritionix
// recognizes in the query. An unrecognized query yields found=false.
func (c *Client) FoodCalories(ctx context.Context, query string) (float64, bool, error) {
	var parsed foodResponse
	found, err := c.post(ctx, nutrientsURL, foodRequest{Query: query}, &parsed)
	if err != nil || !found {
		return 0, false, err
	}
	if len(parsed.Foods) == 0 {
		return 0, false, nil
	}
	return parsed.Foods[0].NfCalories, true, nil
}

// ExerciseCalories returns the calories burned by the first exercise
// Nutritionix recognizes in the query, personalized by the user's weight,
// height and age.
func (c *Client) ExerciseCalories(ctx context.Context, query string, weightKg, heightCm float64, age int) (float64, bool, error) {
	var parsed exerciseResponse
	found, err := c.post(ctx, exerciseURL, exerciseRequest{
		Query:    query,
		WeightKg: weightKg,
		HeightCm: heightCm,
		Age:      age,
	}, &parsed)
	if err != nil || !found {
		return 0, false, err
	}
	if len(parsed.Exercises) == 0 {
		return 0, false, nil
	}
	return parsed.Exercises[0].NfCalories, true, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}, out interface{}) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to marshal nutrition request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("nutrition request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("nutrition API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode nutrition response: %w", err)
	}
	return true, nil
}
