package models

import "time"

// User is the database row shape for the users table.
type User struct {
	UserID       string    `db:"user_id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Role is the database row shape for the roles table.
type Role struct {
	RoleID int64  `db:"role_id"`
	Name   string `db:"name"`
}

// RefreshToken is the database row shape for the refresh_tokens table.
// user_id carries ON DELETE CASCADE so deleting a user removes its token.
type RefreshToken struct {
	TokenID    string    `db:"token_id"`
	Token      string    `db:"token"`
	UserID     string    `db:"user_id"`
	ExpiryDate time.Time `db:"expiry_date"`
}
