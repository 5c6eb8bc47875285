// Package clients contains thin HTTP clients for the third-party data
// providers proxied by the data handlers. They fetch and reshape, nothing
// more: no caching, no retries.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WeatherClient fetches current conditions from the Open-Meteo forecast API.
type WeatherClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewWeatherClient(baseURL string) *WeatherClient {
	return &WeatherClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Measurement pairs a value with the unit reported by the provider.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// WeatherLocation describes the resolved coordinates of the report.
type WeatherLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// WindReport groups wind speed and direction.
type WindReport struct {
	Speed     Measurement `json:"speed"`
	Direction Measurement `json:"direction"`
}

// CurrentConditions is the reshaped current-weather block.
type CurrentConditions struct {
	Time                string      `json:"time"`
	Temperature         Measurement `json:"temperature"`
	ApparentTemperature Measurement `json:"apparentTemperature"`
	Humidity            Measurement `json:"humidity"`
	Precipitation       Measurement `json:"precipitation"`
	WeatherCode         int         `json:"weatherCode"`
	Wind                WindReport  `json:"wind"`
}

// WeatherReport is what the data handler returns to dashboard clients.
type WeatherReport struct {
	Location WeatherLocation   `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// openMeteoResponse mirrors the subset of the Open-Meteo payload we consume.
type openMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   struct {
		Time             string  `json:"time"`
		Temperature2m    float64 `json:"temperature_2m"`
		Humidity2m       float64 `json:"relative_humidity_2m"`
		ApparentTemp     float64 `json:"apparent_temperature"`
		Precipitation    float64 `json:"precipitation"`
		WeatherCode      int     `json:"weather_code"`
		WindSpeed10m     float64 `json:"wind_speed_10m"`
		WindDirection10m float64 `json:"wind_direction_10m"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature2m    string `json:"temperature_2m"`
		Humidity2m       string `json:"relative_humidity_2m"`
		ApparentTemp     string `json:"apparent_temperature"`
		Precipitation    string `json:"precipitation"`
		WindSpeed10m     string `json:"wind_speed_10m"`
		WindDirection10m string `json:"wind_direction_10m"`
	} `json:"current_units"`
}

// CurrentWeather fetches and reshapes current conditions for a coordinate pair.
func (c *WeatherClient) CurrentWeather(ctx context.Context, latitude, longitude float64) (*WeatherReport, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%g&longitude=%g&current=temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m",
		c.baseURL, latitude, longitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API responded with status %d", resp.StatusCode)
	}

	var raw openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return &WeatherReport{
		Location: WeatherLocation{
			Latitude:  raw.Latitude,
			Longitude: raw.Longitude,
			Timezone:  raw.Timezone,
		},
		Current: CurrentConditions{
			Time:                raw.Current.Time,
			Temperature:         Measurement{Value: raw.Current.Temperature2m, Unit: raw.CurrentUnits.Temperature2m},
			ApparentTemperature: Measurement{Value: raw.Current.ApparentTemp, Unit: raw.CurrentUnits.ApparentTemp},
			Humidity:            Measurement{Value: raw.Current.Humidity2m, Unit: raw.CurrentUnits.Humidity2m},
			Precipitation:       Measurement{Value: raw.Current.Precipitation, Unit: raw.CurrentUnits.Precipitation},
			WeatherCode:         raw.Current.WeatherCode,
			Wind: WindReport{
				Speed:     Measurement{Value: raw.Current.WindSpeed10m, Unit: raw.CurrentUnits.WindSpeed10m},
				Direction: Measurement{Value: raw.Current.WindDirection10m, Unit: raw.CurrentUnits.WindDirection10m},
			},
		},
	}, nil
}
