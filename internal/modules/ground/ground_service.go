package ground

import (
	"fmt"
	"math"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
)

// Policy holds the named ground-transport knobs. They are configuration, not
// physics: auditors change them without touching the arithmetic.
type Policy struct {
	// RentalClassUplift covers the mid-size class premium over the base rate.
	RentalClassUplift float64
	// MembershipDiscount is the corporate rental program discount.
	MembershipDiscount float64
	// HolidaySurcharge is the flat car-service surcharge applied at most
	// once per trip.
	HolidaySurcharge float64
}

// DefaultPolicy returns the contract defaults.
func DefaultPolicy() Policy {
	return Policy{
		RentalClassUplift:  0.15,
		MembershipDiscount: 0.12,
		HolidaySurcharge:   50,
	}
}

// PlanRequest is the input for one ground transport plan.
type PlanRequest struct {
	Origin      string
	Destination string
	Departure   models.Date
	Return      models.Date
	Travelers   int

	IncludeRental     bool
	IncludeCarService bool
	IndividualReturn  bool
	// ManualRentalRate, when positive, replaces the computed daily rate.
	ManualRentalRate float64
}

// ServiceInterface defines what the ground module exposes.
type ServiceInterface interface {
	Plan(req PlanRequest) models.GroundTransportPlan
	RentalQuote(destination string, days int, manualRate float64) models.RentalComponent
	CarServiceQuote(origin string, travelers int, individualReturn bool, departure, ret models.Date) models.CarServiceComponent
}

// Service computes rental and contracted car-service costs.
type Service struct {
	tables *rates.Tables
	policy Policy
}

// NewService creates a ground transport service.
func NewService(tables *rates.Tables, policy Policy) *Service {
	return &Service{tables: tables, policy: policy}
}

// Plan combines the requested components into one ground transport plan.
func (s *Service) Plan(req PlanRequest) models.GroundTransportPlan {
	var plan models.GroundTransportPlan

	if req.IncludeRental {
		days := models.NewTripLength(req.Departure, req.Return).Days
		rental := s.RentalQuote(req.Destination, days, req.ManualRentalRate)
		plan.Rental = &rental
		plan.Total += rental.Total
	}
	if req.IncludeCarService {
		car := s.CarServiceQuote(req.Origin, req.Travelers, req.IndividualReturn, req.Departure, req.Return)
		plan.CarService = &car
		plan.Total += car.Total
	}
	return plan
}

// RentalQuote computes the discounted daily rental rate and the trip total.
// Only the discounted rate is ever surfaced; the public base rate stays
// internal.
func (s *Service) RentalQuote(destination string, days int, manualRate float64) models.RentalComponent {
	if days < 1 {
		days = 1
	}
	if manualRate > 0 {
		daily := round2(manualRate)
		return models.RentalComponent{
			DailyRate: daily,
			Days:      days,
			Total:     round2(daily * float64(days)),
			Source:    models.SourceManual,
			Note:      "using manually entered rental rate",
		}
	}

	base := s.tables.RentalBaseRate(destination)
	daily := round2(base * (1 + s.policy.RentalClassUplift) * (1 - s.policy.MembershipDiscount))
	return models.RentalComponent{
		DailyRate: daily,
		Days:      days,
		Total:     round2(daily * float64(days)),
		Source:    models.SourceStaticTable,
		Note:      "contract rate with class uplift and membership discount",
	}
}

// CarServiceQuote computes the contracted car-service cost: outbound one-way
// at the traveler-count tier, plus either one group return at the same tier
// or individual returns at the smallest-tier rate. A holiday surcharge is
// added exactly once when either travel date falls on a holiday.
func (s *Service) CarServiceQuote(origin string, travelers int, individualReturn bool, departure, ret models.Date) models.CarServiceComponent {
	tiers := s.tables.CarServiceTiers(origin)
	if len(tiers) == 0 {
		return models.CarServiceComponent{
			Supported: false,
			Note:      fmt.Sprintf("car service is not contracted from %s", rates.NormalizeKey(origin)),
		}
	}

	tier, ok := tierFor(tiers, travelers)
	if !ok {
		return models.CarServiceComponent{
			Supported: false,
			Note: fmt.Sprintf("no car-service tier covers %d travelers from %s (max %d)",
				travelers, rates.NormalizeKey(origin), tiers[len(tiers)-1].MaxTravelers),
		}
	}

	outbound := tier.OneWayRate
	returnRate := tier.OneWayRate
	individual := individualReturn && travelers >= 2
	if individual {
		returnRate = round2(tiers[0].OneWayRate * float64(travelers))
	}

	var surcharge float64
	holiday := isHoliday(departure.Time) || isHoliday(ret.Time)
	if holiday {
		surcharge = s.policy.HolidaySurcharge
	}

	note := fmt.Sprintf("tier %s group car from %s", tier.Label, rates.NormalizeKey(origin))
	if individual {
		note = fmt.Sprintf("tier %s outbound, individual returns at tier %s rate", tier.Label, tiers[0].Label)
	}
	if holiday {
		note += "; holiday surcharge applied"
	}

	return models.CarServiceComponent{
		Supported:        true,
		Tier:             tier.Label,
		OutboundRate:     outbound,
		ReturnRate:       returnRate,
		IndividualReturn: individual,
		HolidayApplied:   holiday,
		HolidaySurcharge: surcharge,
		Total:            round2(outbound + returnRate + surcharge),
		Note:             note,
	}
}

func tierFor(tiers []rates.CarServiceTier, travelers int) (rates.CarServiceTier, bool) {
	for _, t := range tiers {
		if travelers >= t.MinTravelers && travelers <= t.MaxTravelers {
			return t, true
		}
	}
	return rates.CarServiceTier{}, false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
