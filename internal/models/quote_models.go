package models

// QuoteSource tags which strategy produced a resolved rate, for audit display.
type QuoteSource string

const (
	SourcePreferredCarrier QuoteSource = "preferred-carrier"
	SourceAnyCarrier       QuoteSource = "any-carrier"
	SourceLiveBrandMatch   QuoteSource = "live-brand-match"
	SourceLiveAverage      QuoteSource = "live-average"
	SourceStaticTable      QuoteSource = "static-table"
	SourcePerDiem          QuoteSource = "per-diem"
	SourceTieredRate       QuoteSource = "tiered-rate"
	SourceManual           QuoteSource = "manual"
	SourceUnavailable      QuoteSource = "unavailable"
)

// FareQuote is the resolved per-traveler round-trip flight price.
type FareQuote struct {
	PerTraveler float64     `json:"per_traveler"`
	Source      QuoteSource `json:"source"`
	// Advisory is set when a fallback happened (for example the preferred
	// carrier returned no offers) or the fare is unavailable.
	Advisory string `json:"advisory,omitempty"`
}

// LodgingQuote is the resolved average nightly rate per room.
type LodgingQuote struct {
	NightlyRate float64     `json:"nightly_rate"`
	Source      QuoteSource `json:"source"`
	Advisory    string      `json:"advisory,omitempty"`
}

// BagFeeQuote is the checked-bag cost for the whole party, round trip.
type BagFeeQuote struct {
	PerTraveler float64 `json:"per_traveler"`
	Total       float64 `json:"total"`
	Domestic    bool    `json:"domestic"`
	Note        string  `json:"note,omitempty"`
}

// MealsQuote is the meal allowance for the whole party and trip.
type MealsQuote struct {
	DailyRate float64     `json:"daily_rate"`
	Total     float64     `json:"total"`
	Source    QuoteSource `json:"source"`
	Note      string      `json:"note,omitempty"`
}

// RentalComponent is the rental-car part of a ground transport plan.
type RentalComponent struct {
	DailyRate float64     `json:"daily_rate"`
	Days      int         `json:"days"`
	Total     float64     `json:"total"`
	Source    QuoteSource `json:"source"`
	Note      string      `json:"note,omitempty"`
}

// CarServiceComponent is the contracted car-service part of a ground
// transport plan. When Supported is false every amount is zero and Note
// explains why.
type CarServiceComponent struct {
	Supported        bool    `json:"supported"`
	Tier             string  `json:"tier,omitempty"`
	OutboundRate     float64 `json:"outbound_rate"`
	ReturnRate       float64 `json:"return_rate"`
	IndividualReturn bool    `json:"individual_return"`
	HolidayApplied   bool    `json:"holiday_applied"`
	HolidaySurcharge float64 `json:"holiday_surcharge"`
	Total            float64 `json:"total"`
	Note             string  `json:"note,omitempty"`
}

// GroundTransportPlan combines the optional rental and car-service parts.
type GroundTransportPlan struct {
	Rental     *RentalComponent     `json:"rental,omitempty"`
	CarService *CarServiceComponent `json:"car_service,omitempty"`
	Total      float64              `json:"total"`
}
