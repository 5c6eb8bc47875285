package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rmalhotra23/flightdeck_backend/internal/clients"
)

// dataRouter wires the data routes against httptest upstreams standing in for
// the real providers. An empty upstream URL leaves that client pointing at a
// closed server, which the relevant tests never reach.
func dataRouter(weatherURL, exchangeURL, flightURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerDataRoutes(&r.RouterGroup, DataClients{
		Weather:  clients.NewWeatherClient(weatherURL),
		Exchange: clients.NewExchangeClient(exchangeURL),
		Flight:   clients.NewFlightClient(flightURL),
	})
	return r
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetWeather_MissingParams(t *testing.T) {
	r := dataRouter("", "", "")

	w := getPath(r, "/data/weather")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Latitude and longitude are required")
}

func TestGetWeather_OutOfRange(t *testing.T) {
	r := dataRouter("", "", "")

	tests := []string{
		"/data/weather?latitude=91&longitude=0",
		"/data/weather?latitude=0&longitude=181",
		"/data/weather?latitude=abc&longitude=0",
	}
	for _, path := range tests {
		w := getPath(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, w.Body.String(), "Invalid latitude or longitude values")
	}
}

func TestGetWeather_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{
			"latitude": 52.52, "longitude": 13.42, "timezone": "GMT",
			"current_units": {"temperature_2m": "°C"},
			"current": {"time": "2025-06-01T12:00", "temperature_2m": 21.4, "weather_code": 3}
		}`))
	}))
	defer srv.Close()

	r := dataRouter(srv.URL, "", "")
	w := getPath(r, "/data/weather?latitude=52.52&longitude=13.42")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"timezone":"GMT"`)
}

func TestGetWeather_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := dataRouter(srv.URL, "", "")
	w := getPath(r, "/data/weather?latitude=52.52&longitude=13.42")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch weather data")
}

func TestGetExchangeRange_MissingParams(t *testing.T) {
	r := dataRouter("", "", "")

	w := getPath(r, "/data/exchange?startDate=2025-01-02")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startDate and endDate query parameters are required")
}

func TestGetExchangeRange_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"base":"EUR","rates":{"2025-01-02":{"USD":1.0352}}}`))
	}))
	defer srv.Close()

	r := dataRouter("", srv.URL, "")
	w := getPath(r, "/data/exchange?startDate=2025-01-02&endDate=2025-01-03")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"base":"EUR"`)
	assert.Contains(t, w.Body.String(), `"startDate":"2025-01-02"`)
}

func TestGetFlight_MissingParam(t *testing.T) {
	r := dataRouter("", "", "")

	w := getPath(r, "/data/flight")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "flightNumber query parameter is required")
}

func TestGetFlight_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"time":1748800000,"states":[["4b1816","SWR52X  ","Switzerland",null,1748799995,null,null,null,false,null,null,null]]}`))
	}))
	defer srv.Close()

	r := dataRouter("", "", srv.URL)
	w := getPath(r, "/data/flight?flightNumber=LH1234")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No current flight found with number LH1234")
}

func TestGetFlight_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"time":1748800000,"states":[["4b1816","SWR52X  ","Switzerland",null,1748799995,null,null,null,false,null,null,null]]}`))
	}))
	defer srv.Close()

	r := dataRouter("", "", srv.URL)
	w := getPath(r, "/data/flight?flightNumber=SWR52X")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"callsign":"SWR52X"`)
}

func TestGetRandomFlight_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"time":1748800000,"states":[]}`))
	}))
	defer srv.Close()

	r := dataRouter("", "", srv.URL)
	w := getPath(r, "/data/flight/random")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No flights currently available")
}
