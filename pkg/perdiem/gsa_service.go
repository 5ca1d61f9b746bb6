// Package perdiem wraps the GSA Per Diem v2 API, the authority for daily
// M&IE (meals and incidental expenses) rates, keyed by US federal fiscal
// year.
package perdiem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.gsa.gov/travel/perdiem/v2"

// FiscalYear returns the US federal fiscal year covering a date: FY N runs
// from Oct 1 of year N-1 through Sep 30 of year N.
func FiscalYear(d time.Time) int {
	if d.Month() >= time.October {
		return d.Year() + 1
	}
	return d.Year()
}

// Client talks to the GSA Per Diem API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a GSA client with a bounded request timeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// MealRate returns the daily M&IE rate for a city/state and fiscal year.
func (c *Client) MealRate(ctx context.Context, city, state string, fiscalYear int) (float64, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("state", state)
	params.Set("year", fmt.Sprint(fiscalYear))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rates?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("perdiem.MealRate: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("perdiem.MealRate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("perdiem.MealRate: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("perdiem.MealRate: status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Rates []struct {
			Meals float64 `json:"meals"`
		} `json:"rates"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, fmt.Errorf("perdiem.MealRate: decode: %w", err)
	}
	if len(out.Rates) == 0 {
		return 0, fmt.Errorf("perdiem.MealRate: no rates for %s, %s FY%d", city, state, fiscalYear)
	}
	if out.Rates[0].Meals <= 0 {
		return 0, fmt.Errorf("perdiem.MealRate: missing meals rate for %s, %s FY%d", city, state, fiscalYear)
	}
	return out.Rates[0].Meals, nil
}
