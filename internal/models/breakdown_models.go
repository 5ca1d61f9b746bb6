package models

import "time"

// Canonical line item names, in the order they appear in a breakdown.
const (
	LineFlights     = "flights"
	LineBags        = "bags"
	LineHotel       = "hotel"
	LineMeals       = "meals"
	LineRental      = "rental"
	LineCarService  = "car_service"
	LineIncidentals = "incidentals"
	LineMiscCosts   = "misc_costs"
)

// LineItem is one named cost component with its provenance note. Items
// resolved as unavailable still appear, at zero, so the breakdown never has
// an ambiguous blank.
type LineItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note,omitempty"`
}

// CostBreakdown is the final estimate. It is constructed once per
// calculation and never mutated; a recalculation produces a new breakdown.
type CostBreakdown struct {
	ID                string     `json:"id"`
	LineItems         []LineItem `json:"line_items"`
	Subtotal          float64    `json:"subtotal"`
	ContingencyRate   float64    `json:"contingency_rate"`
	ContingencyAmount float64    `json:"contingency_amount"`
	GrandTotal        float64    `json:"grand_total"`
	PerTraveler       float64    `json:"per_traveler"`

	Travelers int        `json:"travelers"`
	Length    TripLength `json:"length"`
	CreatedAt time.Time  `json:"created_at"`
}
