package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"aquabalance/internal/cache"
)

const apiURL = "https://api.openweathermap.org/data/2.5/weather"

// temperatureTTL bounds how long a resolved city temperature is reused from
// the cache before OpenWeather is asked again.
const temperatureTTL = 10 * time.Minute

// Client resolves the current temperature for a city via the OpenWeather
// API, with an optional redis cache in front of it.
type Client struct {
	apiKey     string
	httpClient *http.Client
	cache      *cache.RedisClient
}

type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// NewClient reads OPEN_WEATHER_API_KEY from the environment. A nil cache
// disables caching.
func NewClient(redisCache *cache.RedisClient) *Client {
	return &Client{
		apiKey:     os.Getenv("OPEN_WEATHER_API_KEY"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      redisCache,
	}
}

// CurrentTemperature returns the city's current temperature in °C. An
// unknown city yields found=false; any other non-success response is an
// error.
func (c *Client) CurrentTemperature(ctx context.Context, city string) (float64, bool, error) {
	if c.cache != nil {
		temperature, hit, err := c.cache.GetTemperature(city)
		if err != nil {
			log.Printf("Warning: temperature cache read failed: %v", err)
		} else if hit {
			return temperature, true, nil
		}
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, false, fmt.Errorf("weather API returned status %d: %s", resp.StatusCode, string(body))
	}

	var weather weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		return 0, false, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.StoreTemperature(city, weather.Main.Temp, temperatureTTL); err != nil {
			log.Printf("Warning: temperature cache write failed: %v", err)
		}
	}

	return weather.Main.Temp, true, nil
}
