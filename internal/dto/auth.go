package dto

import (
	portssvc "github.com/rmalhotra23/flightdeck_backend/internal/core/ports/services"
)

// SignupRequest is the body for POST /api/auth/signup.
// Roles is optional; unknown role names reject the signup.
type SignupRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Roles    []string `json:"roles"`
}

// SigninRequest is the body for POST /api/auth/signin.
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SigninResponse mirrors the original service contract: identity fields,
// authority strings and both tokens in the body for non-cookie clients.
type SigninResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// RefreshRequest is the body for POST /api/auth/refresh. The token may also
// arrive via the refreshToken cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse is the generic JSON {message} envelope used for both
// successes and failures at the handler boundary.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToSigninResponse converts the service signin result into the response DTO.
func ToSigninResponse(res *portssvc.SigninResult) SigninResponse {
	return SigninResponse{
		ID:           res.User.UserID,
		Username:     res.User.Username,
		Email:        res.User.Email,
		Roles:        res.Authorities,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	}
}

// ToRefreshResponse converts a rotated token pair into the response DTO.
func ToRefreshResponse(pair *portssvc.TokenPair) RefreshResponse {
	return RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
