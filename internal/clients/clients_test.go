package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openMeteoPayload = `{
	"latitude": 52.52,
	"longitude": 13.42,
	"timezone": "GMT",
	"current_units": {
		"temperature_2m": "°C",
		"relative_humidity_2m": "%",
		"apparent_temperature": "°C",
		"precipitation": "mm",
		"wind_speed_10m": "km/h",
		"wind_direction_10m": "°"
	},
	"current": {
		"time": "2025-06-01T12:00",
		"temperature_2m": 21.4,
		"relative_humidity_2m": 55,
		"apparent_temperature": 20.1,
		"precipitation": 0.2,
		"weather_code": 3,
		"wind_speed_10m": 12.5,
		"wind_direction_10m": 245
	}
}`

func TestWeatherClient_CurrentWeather(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(openMeteoPayload))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL)
	report, err := client.CurrentWeather(context.Background(), 52.52, 13.42)
	require.NoError(t, err)

	assert.Equal(t, "/v1/forecast", gotPath)
	assert.Contains(t, gotQuery, "latitude=52.52")
	assert.Contains(t, gotQuery, "longitude=13.42")

	assert.Equal(t, 52.52, report.Location.Latitude)
	assert.Equal(t, "GMT", report.Location.Timezone)
	assert.Equal(t, "2025-06-01T12:00", report.Current.Time)
	assert.Equal(t, Measurement{Value: 21.4, Unit: "°C"}, report.Current.Temperature)
	assert.Equal(t, Measurement{Value: 55, Unit: "%"}, report.Current.Humidity)
	assert.Equal(t, 3, report.Current.WeatherCode)
	assert.Equal(t, Measurement{Value: 12.5, Unit: "km/h"}, report.Current.Wind.Speed)
	assert.Equal(t, Measurement{Value: 245, Unit: "°"}, report.Current.Wind.Direction)
}

func TestWeatherClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL)
	_, err := client.CurrentWeather(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExchangeClient_EURToUSDRange(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"base": "EUR",
			"start_date": "2025-01-02",
			"end_date": "2025-01-03",
			"rates": {
				"2025-01-03": {"USD": 1.0310},
				"2025-01-02": {"USD": 1.0352}
			}
		}`))
	}))
	defer srv.Close()

	client := NewExchangeClient(srv.URL)
	rates, err := client.EURToUSDRange(context.Background(), "2025-01-02", "2025-01-03")
	require.NoError(t, err)

	assert.Equal(t, "/2025-01-02..2025-01-03", gotPath)
	assert.Contains(t, gotQuery, "from=EUR")
	assert.Contains(t, gotQuery, "to=USD")

	assert.Equal(t, "EUR", rates.Base)
	require.Len(t, rates.Rates, 2)
	// Points come back sorted by date regardless of map iteration order.
	assert.Equal(t, "2025-01-02", rates.Rates[0].Date)
	require.NotNil(t, rates.Rates[0].Rate)
	assert.True(t, rates.Rates[0].Rate.Equal(decimal.RequireFromString("1.0352")))
	assert.Equal(t, "2025-01-03", rates.Rates[1].Date)
	require.NotNil(t, rates.Rates[1].Rate)
	assert.True(t, rates.Rates[1].Rate.Equal(decimal.RequireFromString("1.0310")))
}

func TestExchangeClient_MissingQuoteIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"EUR","rates":{"2025-01-02":{}}}`))
	}))
	defer srv.Close()

	client := NewExchangeClient(srv.URL)
	rates, err := client.EURToUSDRange(context.Background(), "2025-01-02", "2025-01-02")
	require.NoError(t, err)
	require.Len(t, rates.Rates, 1)
	assert.Nil(t, rates.Rates[0].Rate)
}

const openSkyPayload = `{
	"time": 1748800000,
	"states": [
		["4b1816", "SWR52X  ", "Switzerland", 1748799990, 1748799995, 8.55, 47.45, 11277.6, false, 245.3, 180.5, 0.33],
		["abc123", "UAL123  ", "United States", null, 1748799990, null, null, null, true, null, null, null]
	]
}`

func TestFlightClient_FindByCallsign(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/states/all", r.URL.Path)
		_, _ = w.Write([]byte(openSkyPayload))
	}))
	defer srv.Close()

	client := NewFlightClient(srv.URL)
	matches, err := client.FindByCallsign(context.Background(), "SWR52X")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	fs := matches[0]
	assert.Equal(t, "4b1816", fs.Icao24)
	assert.Equal(t, "SWR52X", fs.Callsign, "callsign padding must be trimmed")
	assert.Equal(t, "Switzerland", fs.OriginCountry)
	require.NotNil(t, fs.TimePosition)
	assert.Equal(t, int64(1748799990), *fs.TimePosition)
	assert.Equal(t, int64(1748799995), fs.LastContact)
	require.NotNil(t, fs.Longitude)
	assert.Equal(t, 8.55, *fs.Longitude)
	assert.False(t, fs.OnGround)
	require.NotNil(t, fs.VerticalRate)
	assert.Equal(t, 0.33, *fs.VerticalRate)
}

func TestFlightClient_FindByCallsign_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(openSkyPayload))
	}))
	defer srv.Close()

	client := NewFlightClient(srv.URL)
	matches, err := client.FindByCallsign(context.Background(), "NOPE999")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFlightClient_NullFieldsStayNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(openSkyPayload))
	}))
	defer srv.Close()

	client := NewFlightClient(srv.URL)
	matches, err := client.FindByCallsign(context.Background(), "UAL123")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	fs := matches[0]
	assert.Nil(t, fs.TimePosition)
	assert.Nil(t, fs.Longitude)
	assert.Nil(t, fs.Latitude)
	assert.Nil(t, fs.BaroAltitude)
	assert.Nil(t, fs.Velocity)
	assert.True(t, fs.OnGround)
}

func TestFlightClient_RandomFlight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(openSkyPayload))
	}))
	defer srv.Close()

	client := NewFlightClient(srv.URL)
	fs, err := client.RandomFlight(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []string{"SWR52X", "UAL123"}, fs.Callsign)
}

func TestFlightClient_RandomFlight_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"time": 1748800000, "states": []}`))
	}))
	defer srv.Close()

	client := NewFlightClient(srv.URL)
	_, err := client.RandomFlight(context.Background())
	assert.ErrorIs(t, err, ErrNoFlights)
}
