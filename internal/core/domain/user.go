package domain

import (
	"strings"
	"time"
)

// User represents a registered user of the application in the domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}

// Role is a named permission group attached to users.
type Role struct {
	RoleID int64  `json:"roleID"`
	Name   string `json:"name"`
}

// DefaultRoleNames are the role rows seeded at startup. "user" is attached
// to every new account.
var DefaultRoleNames = []string{"user", "moderator", "admin"}

const DefaultRoleName = "user"

// Authority formats a role name as a Spring-style authority string,
// e.g. "admin" -> "ROLE_ADMIN".
func (r Role) Authority() string {
	return "ROLE_" + strings.ToUpper(r.Name)
}

// Authorities maps a role slice to its authority strings, preserving order.
func Authorities(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.Authority()
	}
	return out
}
