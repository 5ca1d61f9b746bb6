package estimate

import (
	"context"
	"fmt"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/modules/flights"
	"trip-cost-estimator/internal/modules/ground"
	"trip-cost-estimator/internal/modules/lodging"
	"trip-cost-estimator/internal/modules/meals"
)

// FlightsServiceInterface is the slice of the flights module the estimator
// consumes.
type FlightsServiceInterface interface {
	ResolveFare(ctx context.Context, req flights.FareRequest) (models.FareQuote, error)
	BagFee(origin, destination, airline string, travelers int) models.BagFeeQuote
}

// LodgingServiceInterface is the slice of the lodging module the estimator
// consumes.
type LodgingServiceInterface interface {
	ResolveNightlyRate(ctx context.Context, req lodging.RateRequest) (models.LodgingQuote, error)
}

// GroundServiceInterface is the slice of the ground module the estimator
// consumes.
type GroundServiceInterface interface {
	Plan(req ground.PlanRequest) models.GroundTransportPlan
}

// MealsServiceInterface is the slice of the meals module the estimator
// consumes.
type MealsServiceInterface interface {
	Quote(ctx context.Context, req meals.QuoteRequest) models.MealsQuote
}

// Policy holds the aggregation knobs.
type Policy struct {
	// ContingencyRate is the buffer applied to the subtotal.
	ContingencyRate float64
	// FixedIncidentals is the flat per-trip line for parking, tolls and the
	// like.
	FixedIncidentals float64
}

// DefaultPolicy returns the aggregation defaults.
func DefaultPolicy() Policy {
	return Policy{ContingencyRate: 0.10, FixedIncidentals: 50}
}

// ServiceInterface defines the single estimation entry point.
type ServiceInterface interface {
	Estimate(ctx context.Context, req models.TripRequest) (*models.CostBreakdown, error)
}

// Service orchestrates the resolvers and aggregates their line items. Each
// resolver is invoked independently; there is no ordering dependency between
// them.
type Service struct {
	flights FlightsServiceInterface
	lodging LodgingServiceInterface
	ground  GroundServiceInterface
	meals   MealsServiceInterface
	policy  Policy
}

// NewService creates the estimate service.
func NewService(f FlightsServiceInterface, l LodgingServiceInterface, g GroundServiceInterface, m MealsServiceInterface, policy Policy) *Service {
	return &Service{flights: f, lodging: l, ground: g, meals: m, policy: policy}
}

// Estimate validates the request, resolves every line item and composes the
// breakdown. Every line item always appears with an amount (possibly zero)
// and a provenance note.
func (s *Service) Estimate(ctx context.Context, req models.TripRequest) (*models.CostBreakdown, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	length := models.NewTripLength(req.DepartureDate, req.ReturnDate)
	travelers := float64(req.Travelers)

	items := make([]models.LineItem, 0, 8)

	// Flights.
	fare, err := s.flights.ResolveFare(ctx, flights.FareRequest{
		Origin:           req.OriginAirport,
		Destination:      req.DestinationAirport,
		DepartureDate:    req.DepartureDate,
		ReturnDate:       req.ReturnDate,
		PreferredAirline: req.PreferredAirline,
		ManualPrice:      req.Overrides.FlightPricePerTraveler,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate.Estimate: flights: %w", err)
	}
	items = append(items, models.LineItem{
		Name:   models.LineFlights,
		Amount: fare.PerTraveler * travelers,
		Note:   provenance(fare.Source, fare.Advisory),
	})

	// Checked bags.
	bags := s.flights.BagFee(req.OriginAirport, req.DestinationAirport, req.PreferredAirline, req.Travelers)
	items = append(items, models.LineItem{
		Name:   models.LineBags,
		Amount: bags.Total,
		Note:   bags.Note,
	})

	// Hotel: each traveler gets their own room, nights per trip length.
	stay, err := s.lodging.ResolveNightlyRate(ctx, lodging.RateRequest{
		Destination:    req.DestinationAirport,
		PreferredBrand: req.PreferredHotelBrand,
		CheckIn:        req.DepartureDate,
		CheckOut:       req.ReturnDate,
		Travelers:      req.Travelers,
		ManualRate:     req.Overrides.HotelNightlyRate,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate.Estimate: lodging: %w", err)
	}
	items = append(items, models.LineItem{
		Name:   models.LineHotel,
		Amount: stay.NightlyRate * float64(length.Nights) * travelers,
		Note:   provenance(stay.Source, stay.Advisory),
	})

	// Meals.
	mealQuote := s.meals.Quote(ctx, meals.QuoteRequest{
		Destination: req.DestinationAirport,
		City:        req.DestinationCity,
		State:       req.DestinationState,
		Departure:   req.DepartureDate,
		Return:      req.ReturnDate,
		Travelers:   req.Travelers,
	})
	items = append(items, models.LineItem{
		Name:   models.LineMeals,
		Amount: mealQuote.Total,
		Note:   provenance(mealQuote.Source, mealQuote.Note),
	})

	// Ground transport.
	plan := s.ground.Plan(ground.PlanRequest{
		Origin:            req.OriginAirport,
		Destination:       req.DestinationAirport,
		Departure:         req.DepartureDate,
		Return:            req.ReturnDate,
		Travelers:         req.Travelers,
		IncludeRental:     req.IncludeRental,
		IncludeCarService: req.IncludeCarService,
		IndividualReturn:  req.IndividualReturn,
		ManualRentalRate:  req.Overrides.RentalDailyRate,
	})
	if req.IncludeRental && plan.Rental != nil {
		items = append(items, models.LineItem{
			Name:   models.LineRental,
			Amount: plan.Rental.Total,
			Note:   provenance(plan.Rental.Source, plan.Rental.Note),
		})
	}
	if req.IncludeCarService && plan.CarService != nil {
		items = append(items, models.LineItem{
			Name:   models.LineCarService,
			Amount: plan.CarService.Total,
			Note:   plan.CarService.Note,
		})
	}

	// Fixed incidentals and manual extras.
	items = append(items, models.LineItem{
		Name:   models.LineIncidentals,
		Amount: s.policy.FixedIncidentals,
		Note:   "fixed per-trip incidentals",
	})
	if req.Overrides.MiscCosts > 0 {
		items = append(items, models.LineItem{
			Name:   models.LineMiscCosts,
			Amount: req.Overrides.MiscCosts,
			Note:   string(models.SourceManual),
		})
	}

	return Aggregate(items, s.policy.ContingencyRate, req.Travelers, length), nil
}

func provenance(source models.QuoteSource, note string) string {
	if note == "" {
		return string(source)
	}
	return string(source) + ": " + note
}
