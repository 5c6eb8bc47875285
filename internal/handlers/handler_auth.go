package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/rmalhotra23/flightdeck_backend/internal/apperrors"
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
	"github.com/rmalhotra23/flightdeck_backend/internal/dto"
	"github.com/rmalhotra23/flightdeck_backend/internal/middleware"
	"github.com/rmalhotra23/flightdeck_backend/internal/platform/config"
)

// AuthHandler handles the signup/signin/refresh endpoints.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		cfg:         cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService, cfg)

	// Credential-handling routes get an IP rate limit: 10 requests per minute.
	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
		auth.POST("/refresh", h.Refresh)
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a user account with the default "user" role attached.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Validation failure or duplicate username/email"
// @Failure 500 {object} dto.MessageResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: bindingFailureMessage(err)})
		return
	}

	err := h.authService.Signup(c.Request.Context(), portssvc.SignupParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		status, message := signupFailure(err)
		if status == http.StatusInternalServerError {
			logger.Error("Signup failed", slog.String("error", err.Error()))
		} else {
			logger.Warn("Signup rejected", slog.String("reason", message))
		}
		c.JSON(status, dto.MessageResponse{Message: message})
		return
	}

	logger.Info("User registered", slog.String("username", req.Username))
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully!"})
}

// bindingFailureMessage turns validator failures into per-field messages
// instead of the raw struct-tag error text.
func bindingFailureMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request body: " + err.Error()
	}

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			fields = append(fields, strings.ToLower(fe.Field())+" is required")
		case "email":
			fields = append(fields, "email must be a valid address")
		case "min":
			fields = append(fields, strings.ToLower(fe.Field())+" must be at least "+fe.Param()+" characters")
		default:
			fields = append(fields, strings.ToLower(fe.Field())+" is invalid")
		}
	}
	return "Invalid request body: " + strings.Join(fields, ", ")
}

func signupFailure(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		return http.StatusBadRequest, "Failed! Username is already in use!"
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		return http.StatusBadRequest, "Failed! Email is already in use!"
	case errors.Is(err, apperrors.ErrUnknownRole):
		name := strings.TrimPrefix(err.Error(), apperrors.ErrUnknownRole.Error()+": ")
		return http.StatusBadRequest, "Failed! Role does not exist: " + name
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Failed to register user"
	}
}

// Signin godoc
// @Summary Authenticate a user
// @Description Verifies credentials and issues an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.SigninRequest true "Credentials"
// @Success 200 {object} dto.SigninResponse
// @Failure 401 {object} dto.MessageResponse "Invalid password"
// @Failure 404 {object} dto.MessageResponse "Unknown username"
// @Failure 500 {object} dto.MessageResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: bindingFailureMessage(err)})
		return
	}

	result, err := h.authService.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// The username-vs-password distinction below is deliberate, inherited
		// service behavior.
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User Not found."})
		case errors.Is(err, apperrors.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid Password!"})
		default:
			logger.Error("Signin failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to sign in"})
		}
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.AccessExp, result.RefreshToken, result.RefreshExp)

	logger.Info("User signed in", slog.String("user_id", result.User.UserID))
	c.JSON(http.StatusOK, dto.ToSigninResponse(result))
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Redeems a refresh token for a new access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest false "Refresh token (also accepted via cookie)"
// @Success 200 {object} dto.RefreshResponse
// @Failure 403 {object} dto.MessageResponse "Missing, unknown or expired refresh token"
// @Failure 500 {object} dto.MessageResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRequest
	// The body is optional; cookie-based clients send no JSON at all.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
			req.RefreshToken = cookie
		}
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRefreshTokenMissing):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Refresh Token is required!"})
		case errors.Is(err, apperrors.ErrRefreshTokenNotFound):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Refresh token is not in database!"})
		case errors.Is(err, apperrors.ErrRefreshTokenExpired):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Refresh token was expired. Please make a new signin request"})
		default:
			logger.Error("Refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to refresh token"})
		}
		return
	}

	h.setAuthCookies(c, pair.AccessToken, pair.AccessExp, pair.RefreshToken, pair.RefreshExp)

	c.JSON(http.StatusOK, dto.ToRefreshResponse(pair))
}

// setAuthCookies writes both tokens as httpOnly cookies for browser clients.
// Non-cookie clients use the JSON body instead.
func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken string, accessExp time.Time, refreshToken string, refreshExp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, int(time.Until(accessExp).Seconds()), "/", "", h.cfg.IsProduction, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(time.Until(refreshExp).Seconds()), "/", "", h.cfg.IsProduction, true)
}
