package meals

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
)

type fakePerDiemSource struct {
	rate        float64
	err         error
	gotCity     string
	gotState    string
	gotFY       int
	timesCalled int
}

func (f *fakePerDiemSource) MealRate(ctx context.Context, city, state string, fiscalYear int) (float64, error) {
	f.timesCalled++
	f.gotCity, f.gotState, f.gotFY = city, state, fiscalYear
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

func quoteRequest() QuoteRequest {
	return QuoteRequest{
		Destination: "TPA",
		City:        "Tampa",
		State:       "FL",
		Departure:   models.NewDate(2025, time.March, 10),
		Return:      models.NewDate(2025, time.March, 13), // 4 days
		Travelers:   2,
	}
}

func TestQuoteTieredRates(t *testing.T) {
	svc := NewService(nil, rates.Defaults(), DefaultPolicy())

	tests := []struct {
		name        string
		destination string
		wantDaily   float64
	}{
		{"standard tier", "TPA", 65},
		{"mid tier", "ORD", 71.5},
		{"high tier", "BOS", 81.25},
		{"unknown location gets standard tier", "XNA", 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := quoteRequest()
			req.Destination = tt.destination
			req.City, req.State = "", "" // force the static strategy

			quote := svc.Quote(context.Background(), req)
			if quote.Source != models.SourceTieredRate {
				t.Errorf("source = %s; want %s", quote.Source, models.SourceTieredRate)
			}
			if quote.DailyRate != tt.wantDaily {
				t.Errorf("daily rate = %.2f; want %.2f", quote.DailyRate, tt.wantDaily)
			}
			// 4 days x 2 travelers.
			if want := tt.wantDaily * 4 * 2; quote.Total != want {
				t.Errorf("total = %.2f; want %.2f", quote.Total, want)
			}
		})
	}
}

func TestQuotePerDiemStrategy(t *testing.T) {
	src := &fakePerDiemSource{rate: 74}
	svc := NewService(src, rates.Defaults(), DefaultPolicy())

	quote := svc.Quote(context.Background(), quoteRequest())
	if quote.Source != models.SourcePerDiem {
		t.Errorf("source = %s; want %s", quote.Source, models.SourcePerDiem)
	}
	// The authority rate is used directly; the tier multiplier must not be
	// blended in.
	if quote.DailyRate != 74 {
		t.Errorf("daily rate = %.2f; want the authority's 74.00", quote.DailyRate)
	}
	if quote.Total != 74*4*2 {
		t.Errorf("total = %.2f; want %.2f", quote.Total, 74.0*4*2)
	}
	if src.gotCity != "Tampa" || src.gotState != "FL" {
		t.Errorf("queried %s, %s; want Tampa, FL", src.gotCity, src.gotState)
	}
	// March 2025 departure is fiscal year 2025.
	if src.gotFY != 2025 {
		t.Errorf("fiscal year = %d; want 2025", src.gotFY)
	}
}

func TestQuotePerDiemUsesDepartureFiscalYear(t *testing.T) {
	src := &fakePerDiemSource{rate: 80}
	svc := NewService(src, rates.Defaults(), DefaultPolicy())

	req := quoteRequest()
	req.Departure = models.NewDate(2025, time.November, 3)
	req.Return = models.NewDate(2025, time.November, 6)
	svc.Quote(context.Background(), req)

	// November 2025 falls in fiscal year 2026.
	if src.gotFY != 2026 {
		t.Errorf("fiscal year = %d; want 2026", src.gotFY)
	}
}

func TestQuoteFallsBackToTieredOnPerDiemError(t *testing.T) {
	src := &fakePerDiemSource{err: errors.New("boom")}
	svc := NewService(src, rates.Defaults(), DefaultPolicy())

	quote := svc.Quote(context.Background(), quoteRequest())
	if quote.Source != models.SourceTieredRate {
		t.Errorf("source = %s; want %s", quote.Source, models.SourceTieredRate)
	}
	if quote.DailyRate != 65 {
		t.Errorf("daily rate = %.2f; want the standard tier 65.00", quote.DailyRate)
	}
}

func TestQuoteSkipsPerDiemWithoutCityState(t *testing.T) {
	src := &fakePerDiemSource{rate: 74}
	svc := NewService(src, rates.Defaults(), DefaultPolicy())

	req := quoteRequest()
	req.City = ""
	quote := svc.Quote(context.Background(), req)

	if src.timesCalled != 0 {
		t.Error("per-diem source must not be queried without a city and state")
	}
	if quote.Source != models.SourceTieredRate {
		t.Errorf("source = %s; want %s", quote.Source, models.SourceTieredRate)
	}
}
