package meals

import (
	"context"
	"fmt"
	"log"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
	"trip-cost-estimator/pkg/perdiem"
)

// PerDiemSourceInterface is the per-diem authority consumed by the
// calculator; pkg/perdiem satisfies it.
type PerDiemSourceInterface interface {
	MealRate(ctx context.Context, city, state string, fiscalYear int) (float64, error)
}

// Policy holds the static meal-allowance knobs used when no per-diem
// authority applies.
type Policy struct {
	BaseDailyRate      float64
	HighCostMultiplier float64
	MidCostMultiplier  float64
}

// DefaultPolicy returns the static meal policy defaults.
func DefaultPolicy() Policy {
	return Policy{
		BaseDailyRate:      65,
		HighCostMultiplier: 1.25,
		MidCostMultiplier:  1.10,
	}
}

// QuoteRequest is the input for one meal allowance calculation.
type QuoteRequest struct {
	// Destination is the airport/city key for the static tier lookup.
	Destination string
	// City and State select the per-diem authority rate; when either is
	// empty the static tiered formula is used instead. The two strategies
	// are never blended within one calculation.
	City      string
	State     string
	Departure models.Date
	Return    models.Date
	Travelers int
}

// ServiceInterface defines what the meals module exposes.
type ServiceInterface interface {
	Quote(ctx context.Context, req QuoteRequest) models.MealsQuote
}

// Service computes the daily per-traveler meal allowance.
type Service struct {
	source PerDiemSourceInterface
	tables *rates.Tables
	policy Policy
}

// NewService creates a meals service. source may be nil; the static tiered
// formula is then the only strategy.
func NewService(source PerDiemSourceInterface, tables *rates.Tables, policy Policy) *Service {
	return &Service{source: source, tables: tables, policy: policy}
}

// Quote computes the meal total for the whole party and trip. The per-diem
// authority is preferred when configured and addressable; the static tiered
// formula is the complete fallback, so meals always resolve.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) models.MealsQuote {
	length := models.NewTripLength(req.Departure, req.Return)
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	if s.source != nil && req.City != "" && req.State != "" {
		fy := perdiem.FiscalYear(req.Departure.Time)
		rate, err := s.source.MealRate(ctx, req.City, req.State, fy)
		if err == nil {
			return models.MealsQuote{
				DailyRate: rate,
				Total:     rate * float64(length.Days) * float64(travelers),
				Source:    models.SourcePerDiem,
				Note:      fmt.Sprintf("GSA M&IE rate for %s, %s (FY%d)", req.City, req.State, fy),
			}
		}
		log.Printf("meals: per-diem lookup failed, using tiered rate: %v", err)
	}

	rate := s.policy.BaseDailyRate
	tier := s.tables.MealTierFor(req.Destination)
	switch tier {
	case rates.TierHighCost:
		rate *= s.policy.HighCostMultiplier
	case rates.TierMidCost:
		rate *= s.policy.MidCostMultiplier
	}

	return models.MealsQuote{
		DailyRate: rate,
		Total:     rate * float64(length.Days) * float64(travelers),
		Source:    models.SourceTieredRate,
		Note:      fmt.Sprintf("%s-cost location tier over $%.2f base", tier, s.policy.BaseDailyRate),
	}
}
