// Package authclient is a small client for the auth service's refresh
// endpoint, for services and frontends that hold a token pair and need to
// renew it. Concurrent renewals of the same pair are collapsed into one
// request.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client talks to the auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// refreshGroup deduplicates concurrent refresh calls: callers arriving
	// while a refresh is in flight wait for its result instead of spending
	// the same refresh token twice.
	refreshGroup singleflight.Group
}

// NewClient creates a client for the auth service at the given base URL.
func NewClient(authServiceURL string) *Client {
	return &Client{
		baseURL: authServiceURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// TokenPair is the refreshed access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a refresh token for a new token pair. Concurrent calls
// with the same refresh token share one round trip.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	result, err, _ := c.refreshGroup.Do(refreshToken, func() (any, error) {
		return c.doRefresh(ctx, refreshToken)
	})
	if err != nil {
		return nil, err
	}
	return result.(*TokenPair), nil
}

func (c *Client) doRefresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refresh failed with status: %d", resp.StatusCode)
	}

	var pair TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &pair, nil
}
