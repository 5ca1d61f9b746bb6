package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date carried as YYYY-MM-DD in JSON bodies.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// DaysUntil returns the number of whole calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time).Hours() / 24)
}

// TripLength is the day/night count derived once per request. Days counts
// both endpoints; nights is always days-1.
type TripLength struct {
	Days   int `json:"days"`
	Nights int `json:"nights"`
}

// NewTripLength derives the trip length from the travel dates, clamped to at
// least one day and zero nights so downstream math never sees a negative.
func NewTripLength(depart, ret Date) TripLength {
	days := depart.DaysUntil(ret) + 1
	if days < 1 {
		days = 1
	}
	return TripLength{Days: days, Nights: days - 1}
}

// EstimateOverrides carries the caller-entered values that bypass live
// pricing. Zero means "not provided".
type EstimateOverrides struct {
	FlightPricePerTraveler float64 `json:"flight_price_per_traveler,omitempty" validate:"omitempty,gte=0"`
	HotelNightlyRate       float64 `json:"hotel_nightly_rate,omitempty" validate:"omitempty,gte=0"`
	RentalDailyRate        float64 `json:"rental_daily_rate,omitempty" validate:"omitempty,gte=0"`
	MiscCosts              float64 `json:"misc_costs,omitempty" validate:"omitempty,gte=0"`
}

// TripRequest is the immutable input for one trip cost estimate.
type TripRequest struct {
	OriginAirport      string `json:"origin_airport" validate:"required,len=3,alpha"`
	DestinationAirport string `json:"destination_airport" validate:"required,len=3,alpha"`
	DestinationCity    string `json:"destination_city" validate:"required"`
	DestinationState   string `json:"destination_state,omitempty" validate:"omitempty,len=2,alpha"`
	DepartureDate      Date   `json:"departure_date" validate:"required"`
	ReturnDate         Date   `json:"return_date" validate:"required"`
	Travelers          int    `json:"travelers" validate:"required,min=1"`

	PreferredAirline    string `json:"preferred_airline,omitempty"`
	PreferredHotelBrand string `json:"preferred_hotel_brand,omitempty"`

	IncludeRental     bool `json:"include_rental"`
	IncludeCarService bool `json:"include_car_service"`
	// IndividualReturn models each traveler taking a separate car-service
	// ride back; only meaningful for two or more travelers.
	IndividualReturn bool `json:"individual_return"`

	Overrides EstimateOverrides `json:"overrides"`
}

// Validate applies the cross-field rules that struct tags cannot express.
func (r TripRequest) Validate() error {
	if r.Travelers < 1 {
		return ErrNoTravelers
	}
	if !r.ReturnDate.After(r.DepartureDate.Time) {
		return ErrInvalidTripDates
	}
	if strings.EqualFold(r.OriginAirport, r.DestinationAirport) {
		return ErrSameAirport
	}
	return nil
}
