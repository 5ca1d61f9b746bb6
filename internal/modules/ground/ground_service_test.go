package ground

import (
	"testing"
	"time"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
)

func newTestService() *Service {
	return NewService(rates.Defaults(), DefaultPolicy())
}

func TestRentalQuoteDefaultBase(t *testing.T) {
	// Destination absent from the table: default base 60, uplifted then
	// discounted: round(60 * 1.15 * 0.88, 2) = 60.72.
	svc := newTestService()

	quote := svc.RentalQuote("XNA", 4, 0)
	if quote.DailyRate != 60.72 {
		t.Errorf("daily rate = %.2f; want 60.72", quote.DailyRate)
	}
	if quote.Total != 242.88 {
		t.Errorf("total = %.2f; want 242.88", quote.Total)
	}
	if quote.Days != 4 {
		t.Errorf("days = %d; want 4", quote.Days)
	}
}

func TestRentalQuoteKnownLocation(t *testing.T) {
	svc := newTestService()

	// TPA base 52: round(52 * 1.15 * 0.88, 2) = 52.62
	quote := svc.RentalQuote("tpa", 3, 0)
	if quote.DailyRate != 52.62 {
		t.Errorf("daily rate = %.2f; want 52.62", quote.DailyRate)
	}
	if quote.Source != models.SourceStaticTable {
		t.Errorf("source = %s; want %s", quote.Source, models.SourceStaticTable)
	}
}

func TestRentalQuoteManualRate(t *testing.T) {
	svc := newTestService()

	quote := svc.RentalQuote("TPA", 5, 45)
	if quote.DailyRate != 45 || quote.Total != 225 {
		t.Errorf("quote = %+v; want 45/day, 225 total", quote)
	}
	if quote.Source != models.SourceManual {
		t.Errorf("source = %s; want %s", quote.Source, models.SourceManual)
	}
}

func TestRentalQuoteClampsDays(t *testing.T) {
	svc := newTestService()
	if quote := svc.RentalQuote("TPA", 0, 0); quote.Days != 1 {
		t.Errorf("days = %d; want clamp to 1", quote.Days)
	}
}

func TestCarServiceQuoteGroupReturn(t *testing.T) {
	// Scenario: 7 travelers from BOS on Dec 25. Tier 6-14 one-way 240,
	// group return at the same tier, holiday surcharge applied once.
	svc := newTestService()

	quote := svc.CarServiceQuote("BOS", 7, false,
		models.NewDate(2025, time.December, 25), models.NewDate(2025, time.December, 28))

	if !quote.Supported {
		t.Fatalf("quote unsupported: %s", quote.Note)
	}
	if quote.Tier != "6-14" {
		t.Errorf("tier = %s; want 6-14", quote.Tier)
	}
	if quote.OutboundRate != 240 || quote.ReturnRate != 240 {
		t.Errorf("rates = %.2f/%.2f; want 240/240", quote.OutboundRate, quote.ReturnRate)
	}
	if !quote.HolidayApplied || quote.HolidaySurcharge != 50 {
		t.Errorf("holiday = %v/%.2f; want applied at 50", quote.HolidayApplied, quote.HolidaySurcharge)
	}
	if quote.Total != 530 {
		t.Errorf("total = %.2f; want 530.00", quote.Total)
	}
}

func TestCarServiceQuoteHolidaySurchargeAppliedOnce(t *testing.T) {
	// Departure Dec 25 and return Jan 1 are both holidays; the surcharge
	// still appears exactly once.
	svc := newTestService()

	quote := svc.CarServiceQuote("BOS", 2, false,
		models.NewDate(2025, time.December, 25), models.NewDate(2026, time.January, 1))

	if !quote.HolidayApplied {
		t.Fatal("expected holiday surcharge")
	}
	// Tier 1-3: 120 outbound + 120 return + one 50 surcharge.
	if quote.Total != 290 {
		t.Errorf("total = %.2f; want 290.00 (surcharge once, not twice)", quote.Total)
	}
}

func TestCarServiceQuoteIndividualReturn(t *testing.T) {
	svc := newTestService()

	quote := svc.CarServiceQuote("BOS", 4, true,
		models.NewDate(2025, time.March, 10), models.NewDate(2025, time.March, 13))

	if !quote.Supported {
		t.Fatalf("quote unsupported: %s", quote.Note)
	}
	if quote.Tier != "4-5" || quote.OutboundRate != 165 {
		t.Errorf("outbound = tier %s at %.2f; want 4-5 at 165", quote.Tier, quote.OutboundRate)
	}
	// Individual returns: smallest-tier one-way 120 x 4 travelers.
	if quote.ReturnRate != 480 {
		t.Errorf("return rate = %.2f; want 480.00", quote.ReturnRate)
	}
	if quote.Total != 645 {
		t.Errorf("total = %.2f; want 645.00", quote.Total)
	}
}

func TestCarServiceQuoteIndividualReturnIgnoredForSoloTraveler(t *testing.T) {
	svc := newTestService()

	quote := svc.CarServiceQuote("BOS", 1, true,
		models.NewDate(2025, time.March, 10), models.NewDate(2025, time.March, 13))

	if quote.IndividualReturn {
		t.Error("individual return is only meaningful for two or more travelers")
	}
	if quote.ReturnRate != 120 {
		t.Errorf("return rate = %.2f; want the tier one-way 120.00", quote.ReturnRate)
	}
}

func TestCarServiceQuoteUnsupported(t *testing.T) {
	svc := newTestService()
	depart := models.NewDate(2025, time.March, 10)
	ret := models.NewDate(2025, time.March, 13)

	tests := []struct {
		name      string
		origin    string
		travelers int
	}{
		{"origin outside coverage", "TPA", 3},
		{"travelers above largest tier", "BOS", 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := svc.CarServiceQuote(tt.origin, tt.travelers, false, depart, ret)
			if quote.Supported {
				t.Fatal("expected unsupported quote")
			}
			if quote.Total != 0 {
				t.Errorf("total = %.2f; want 0 (never a guessed price)", quote.Total)
			}
			if quote.Note == "" {
				t.Error("unsupported quote must carry an explanation")
			}
		})
	}
}

func TestPlanCombinesComponents(t *testing.T) {
	svc := newTestService()

	plan := svc.Plan(PlanRequest{
		Origin:            "BOS",
		Destination:       "TPA",
		Departure:         models.NewDate(2025, time.March, 10),
		Return:            models.NewDate(2025, time.March, 13),
		Travelers:         2,
		IncludeRental:     true,
		IncludeCarService: true,
	})

	if plan.Rental == nil || plan.CarService == nil {
		t.Fatal("expected both components")
	}
	// Rental: 52.62/day x 4 days = 210.48. Car: 120 + 120 = 240.
	if plan.Rental.Total != 210.48 {
		t.Errorf("rental total = %.2f; want 210.48", plan.Rental.Total)
	}
	if plan.CarService.Total != 240 {
		t.Errorf("car service total = %.2f; want 240.00", plan.CarService.Total)
	}
	if plan.Total != 450.48 {
		t.Errorf("plan total = %.2f; want 450.48", plan.Total)
	}
}

func TestPlanOmitsUnrequestedComponents(t *testing.T) {
	svc := newTestService()
	plan := svc.Plan(PlanRequest{
		Origin:      "BOS",
		Destination: "TPA",
		Departure:   models.NewDate(2025, time.March, 10),
		Return:      models.NewDate(2025, time.March, 13),
		Travelers:   2,
	})
	if plan.Rental != nil || plan.CarService != nil || plan.Total != 0 {
		t.Errorf("plan = %+v; want empty", plan)
	}
}
