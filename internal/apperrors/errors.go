package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateUsername indicates that the requested username is already taken.
var ErrDuplicateUsername = errors.New("username already in use")

// ErrDuplicateEmail indicates that the requested email is already taken.
var ErrDuplicateEmail = errors.New("email already in use")

// ErrUnknownRole indicates that a role name supplied at signup does not exist.
var ErrUnknownRole = errors.New("role does not exist")

// ErrInvalidPassword indicates that the supplied password does not match the stored hash.
var ErrInvalidPassword = errors.New("invalid password")

// ErrUnauthorized indicates a missing, tampered or expired access token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller lacks a required role.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenMissing indicates that no refresh token was supplied with the request.
var ErrRefreshTokenMissing = errors.New("refresh token is required")

// ErrRefreshTokenNotFound indicates that the refresh token has no row in the store.
var ErrRefreshTokenNotFound = errors.New("refresh token not found in store")

// ErrRefreshTokenExpired indicates that the stored refresh token has passed its expiry date.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
