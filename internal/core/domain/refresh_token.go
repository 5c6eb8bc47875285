package domain

import "time"

// RefreshToken is the store-backed credential used to mint new access tokens.
// The token value itself is a signed JWT; the row is the source of truth for
// whether it may still be redeemed.
type RefreshToken struct {
	TokenID    string
	Token      string
	UserID     string
	ExpiryDate time.Time
}

// Expired reports whether the token's expiry date has passed.
func (rt RefreshToken) Expired(now time.Time) bool {
	return rt.ExpiryDate.Before(now)
}
