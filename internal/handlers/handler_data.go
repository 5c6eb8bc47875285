package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rmalhotra23/flightdeck_backend/internal/clients"
	"github.com/rmalhotra23/flightdeck_backend/internal/middleware"
)

// DataClients bundles the third-party provider clients consumed by the data
// proxy handlers.
type DataClients struct {
	Weather  *clients.WeatherClient
	Exchange *clients.ExchangeClient
	Flight   *clients.FlightClient
}

// dataHandler proxies the dashboard's third-party data endpoints. It consumes
// only the subject bound by the guard and performs no further authorization.
type dataHandler struct {
	clients DataClients
}

func newDataHandler(dc DataClients) *dataHandler {
	return &dataHandler{clients: dc}
}

// registerDataRoutes registers the protected data proxy routes.
func registerDataRoutes(rg *gin.RouterGroup, dc DataClients) {
	h := newDataHandler(dc)

	data := rg.Group("/data")
	{
		data.GET("/weather", h.getWeather)
		data.GET("/exchange", h.getExchangeRange)
		data.GET("/flight", h.getFlight)
		data.GET("/flight/random", h.getRandomFlight)
	}
}

// getWeather godoc
// @Summary Current weather for a coordinate pair
// @Tags data
// @Produce json
// @Param latitude query number true "Latitude (-90..90)"
// @Param longitude query number true "Longitude (-180..180)"
// @Success 200 {object} clients.WeatherReport
// @Failure 400 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /data/weather [get]
func (h *dataHandler) getWeather(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Latitude and longitude are required",
			"example": "/api/data/weather?latitude=52.52&longitude=13.41",
		})
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid latitude or longitude values",
			"details": "Latitude must be between -90 and 90, longitude between -180 and 180",
		})
		return
	}

	report, err := h.clients.Weather.CurrentWeather(c.Request.Context(), lat, lon)
	if err != nil {
		logger.Error("Weather lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch weather data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"location": report.Location,
		"current":  report.Current,
	})
}

// getExchangeRange godoc
// @Summary EUR to USD rates over a date range
// @Tags data
// @Produce json
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} clients.RateRange
// @Failure 400 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /data/exchange [get]
func (h *dataHandler) getExchangeRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "startDate and endDate query parameters are required",
			"example": "/api/data/exchange?startDate=2025-11-25&endDate=2025-12-01",
		})
		return
	}

	rates, err := h.clients.Exchange.EURToUSDRange(c.Request.Context(), startDate, endDate)
	if err != nil {
		logger.Error("Exchange rate lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch exchange rates",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"base":      rates.Base,
		"startDate": rates.StartDate,
		"endDate":   rates.EndDate,
		"rates":     rates.Rates,
	})
}

// getFlight godoc
// @Summary Live state vectors for a flight number
// @Tags data
// @Produce json
// @Param flightNumber query string true "Flight callsign, e.g. LH1234"
// @Success 200 {object} map[string]any
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /data/flight [get]
func (h *dataHandler) getFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	flightNumber := c.Query("flightNumber")
	if flightNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "flightNumber query parameter is required",
			"example": "/api/data/flight?flightNumber=LH1234",
		})
		return
	}

	flights, err := h.clients.Flight.FindByCallsign(c.Request.Context(), flightNumber)
	if err != nil {
		logger.Error("Flight lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch flight data",
			"error":   err.Error(),
		})
		return
	}

	if len(flights) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No current flight found with number " + flightNumber,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flights": flights,
	})
}

// getRandomFlight godoc
// @Summary A random current flight
// @Tags data
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /data/flight/random [get]
func (h *dataHandler) getRandomFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	flight, err := h.clients.Flight.RandomFlight(c.Request.Context())
	if err != nil {
		if errors.Is(err, clients.ErrNoFlights) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "No flights currently available",
			})
			return
		}
		logger.Error("Random flight lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch flight data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flight":  flight,
	})
}
