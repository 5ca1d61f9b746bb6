package perdiem

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestFiscalYear(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), 2026},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 2026},
	}
	for _, tt := range tests {
		if got := FiscalYear(tt.date); got != tt.want {
			t.Errorf("FiscalYear(%v) = %d; want %d", tt.date, got, tt.want)
		}
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(status int, body string, capture *http.Request) *Client {
	return &Client{
		apiKey:  "test-key",
		baseURL: "https://gsa.test/v2",
		httpClient: &http.Client{
			Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				if capture != nil {
					*capture = *req
				}
				return &http.Response{
					StatusCode: status,
					Body:       io.NopCloser(strings.NewReader(body)),
					Header:     http.Header{},
				}, nil
			}),
		},
	}
}

func TestMealRate(t *testing.T) {
	var captured http.Request
	c := newTestClient(http.StatusOK, `{"rates":[{"meals":74},{"meals":59}]}`, &captured)

	rate, err := c.MealRate(context.Background(), "Tampa", "FL", 2025)
	if err != nil {
		t.Fatalf("MealRate error: %v", err)
	}
	if rate != 74 {
		t.Errorf("rate = %.2f; want 74 (first record)", rate)
	}

	q := captured.URL.Query()
	if q.Get("city") != "Tampa" || q.Get("state") != "FL" || q.Get("year") != "2025" {
		t.Errorf("query = %v; want city=Tampa state=FL year=2025", q)
	}
	if q.Get("api_key") != "test-key" {
		t.Error("api key missing from query")
	}
}

func TestMealRateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"empty rates", http.StatusOK, `{"rates":[]}`},
		{"missing meals field", http.StatusOK, `{"rates":[{"lodging":120}]}`},
		{"upstream failure", http.StatusBadGateway, `oops`},
		{"malformed body", http.StatusOK, `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(tt.status, tt.body, nil)
			if _, err := c.MealRate(context.Background(), "Tampa", "FL", 2025); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
