package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"boatlog-backend/internal/config"
	apperrors "boatlog-backend/internal/errors"
)

// WeatherService proxies current-conditions lookups to the configured
// weather API so the client never sees the API key
type WeatherService struct {
	client *http.Client
	apiURL string
	apiKey string
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: cfg.WeatherAPIURL,
		apiKey: cfg.WeatherAPIKey,
	}
}

// WeatherResponse represents current conditions at a location
type WeatherResponse struct {
	Location    string  `json:"location,omitempty"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg"`
	Humidity    int     `json:"humidity"`
}

// upstream response shape (OpenWeatherMap current weather)
type owmResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
}

// GetCurrent fetches current conditions for a coordinate pair
func (s *WeatherService) GetCurrent(ctx context.Context, lat, lon float64) (*WeatherResponse, error) {
	if s.apiKey == "" {
		return nil, apperrors.ErrWeatherNotConfigured
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, apperrors.ErrInvalidCoordinates
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("units", "metric")
	q.Set("appid", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var upstream owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	out := &WeatherResponse{
		Location:  upstream.Name,
		TempC:     upstream.Main.Temp,
		WindSpeed: upstream.Wind.Speed,
		WindDeg:   upstream.Wind.Deg,
		Humidity:  upstream.Main.Humidity,
	}
	if len(upstream.Weather) > 0 {
		out.Description = upstream.Weather[0].Description
	}
	return out, nil
}
