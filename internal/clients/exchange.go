package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeClient fetches EUR/USD reference rates from the Frankfurter API.
type ExchangeClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewExchangeClient(baseURL string) *ExchangeClient {
	return &ExchangeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RatePoint is one chartable observation. Rate is nil when the provider had
// no USD quote for that date.
type RatePoint struct {
	Date string           `json:"date"`
	Rate *decimal.Decimal `json:"rate"`
}

// RateRange is the reshaped date-range response.
type RateRange struct {
	Base      string      `json:"base"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Rates     []RatePoint `json:"rates"`
}

// frankfurterResponse mirrors the subset of the Frankfurter payload we consume.
// Rates are decoded as decimals so reshaping never round-trips through binary
// floats.
type frankfurterResponse struct {
	Base  string                                `json:"base"`
	Rates map[string]map[string]decimal.Decimal `json:"rates"`
}

// EURToUSDRange fetches the EUR->USD rate series for an inclusive date range
// (dates formatted YYYY-MM-DD) and flattens it into chartable points sorted
// by date.
func (c *ExchangeClient) EURToUSDRange(ctx context.Context, startDate, endDate string) (*RateRange, error) {
	url := fmt.Sprintf("%s/%s..%s?from=EUR&to=USD", c.baseURL, startDate, endDate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build exchange rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach exchange rate API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate API responded with status %d", resp.StatusCode)
	}

	var raw frankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	points := make([]RatePoint, 0, len(raw.Rates))
	for date, quotes := range raw.Rates {
		point := RatePoint{Date: date}
		if usd, ok := quotes["USD"]; ok {
			rate := usd
			point.Rate = &rate
		}
		points = append(points, point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return &RateRange{
		Base:      raw.Base,
		StartDate: startDate,
		EndDate:   endDate,
		Rates:     points,
	}, nil
}
