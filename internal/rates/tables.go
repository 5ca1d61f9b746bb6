// Package rates holds the static, location-keyed rate tables the engine
// falls back to when no live pricing is available, plus the single
// lookup-with-default helper every table consumer shares.
package rates

import "strings"

// NormalizeKey is the uniform key policy for every static table: trimmed and
// uppercased, so "tpa" and " TPA " resolve identically.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// Lookup resolves a key against a rate table. Unmapped keys, including the
// empty string, always resolve to the default; there is no error path.
func Lookup(key string, table map[string]float64, def float64) float64 {
	if v, ok := table[NormalizeKey(key)]; ok {
		return v
	}
	return def
}

// LookupString is Lookup for string-valued tables (tier names and the like).
func LookupString(key string, table map[string]string, def string) string {
	if v, ok := table[NormalizeKey(key)]; ok {
		return v
	}
	return def
}

// Meal-cost tier labels.
const (
	TierHighCost = "high"
	TierMidCost  = "mid"
	TierStandard = "standard"
)

// CarServiceTier is one traveler-count band of a contracted rate card.
type CarServiceTier struct {
	Label        string
	MinTravelers int
	MaxTravelers int
	OneWayRate   float64
}

// Tables is the full set of static rate tables. The engine treats it as
// read-only configuration; Defaults returns the compiled-in version and the
// Repository can overlay rows from a versioned database copy.
type Tables struct {
	// HotelNightly maps a destination airport/city key to a nightly rate.
	HotelNightly        map[string]float64
	DefaultHotelNightly float64

	// RentalBase maps a destination key to a base daily rental rate before
	// the class uplift and membership discount are applied.
	RentalBase        map[string]float64
	DefaultRentalBase float64

	// MealTier maps a destination key to a cost tier label.
	MealTier map[string]string

	// BagFees maps an IATA carrier code to a round-trip checked-bag fee per
	// traveler (one bag each way).
	BagFees       map[string]float64
	DefaultBagFee float64

	// DomesticAirports is the known-domestic airport set; a route is
	// domestic only when both endpoints are members.
	DomesticAirports map[string]bool

	// AirlineCodes maps a friendly airline name to its IATA code.
	AirlineCodes map[string]string

	// BrandKeywords maps a hotel brand to the lowercase name fragments that
	// identify its properties. Brands are recognized by name heuristics
	// because the upstream source exposes no reliable chain identifier.
	BrandKeywords map[string][]string

	// CarServiceRateCard maps a supported origin airport to its tier bands.
	CarServiceRateCard map[string][]CarServiceTier
}

// HotelRate resolves the static nightly rate for a destination.
func (t *Tables) HotelRate(destination string) float64 {
	return Lookup(destination, t.HotelNightly, t.DefaultHotelNightly)
}

// RentalBaseRate resolves the base daily rental rate for a destination.
func (t *Tables) RentalBaseRate(destination string) float64 {
	return Lookup(destination, t.RentalBase, t.DefaultRentalBase)
}

// MealTierFor resolves the meal-cost tier label for a destination.
func (t *Tables) MealTierFor(destination string) string {
	return LookupString(destination, t.MealTier, TierStandard)
}

// BagFee resolves the round-trip checked-bag fee for a carrier code.
func (t *Tables) BagFee(carrierCode string) float64 {
	return Lookup(carrierCode, t.BagFees, t.DefaultBagFee)
}

// IsDomesticRoute reports whether both airports are in the domestic set.
func (t *Tables) IsDomesticRoute(origin, destination string) bool {
	return t.DomesticAirports[NormalizeKey(origin)] && t.DomesticAirports[NormalizeKey(destination)]
}

// AirlineCode maps a friendly airline name to an IATA code. A string that
// already looks like a code passes through; unknown names resolve to "",
// meaning no carrier filter.
func (t *Tables) AirlineCode(airline string) string {
	if airline == "" {
		return ""
	}
	if code, ok := t.AirlineCodes[NormalizeKey(airline)]; ok {
		return code
	}
	if len(airline) <= 2 {
		return NormalizeKey(airline)
	}
	return ""
}

// KeywordsForBrand returns the recognition fragments for a hotel brand, or
// nil when the brand is unknown (meaning: no filtering).
func (t *Tables) KeywordsForBrand(brand string) []string {
	for name, kws := range t.BrandKeywords {
		if strings.EqualFold(name, strings.TrimSpace(brand)) {
			return kws
		}
	}
	return nil
}

// CarServiceTiers returns the rate card for an origin, or nil when the
// origin is outside contract coverage.
func (t *Tables) CarServiceTiers(origin string) []CarServiceTier {
	return t.CarServiceRateCard[NormalizeKey(origin)]
}

// Defaults returns the compiled-in rate tables.
func Defaults() *Tables {
	return &Tables{
		HotelNightly: map[string]float64{
			"TPA": 145, "MCO": 140, "JFK": 235, "LGA": 225, "ORD": 175,
			"ATL": 155, "SFO": 245, "LAX": 210, "DFW": 150, "BNA": 170,
		},
		DefaultHotelNightly: 150,

		RentalBase: map[string]float64{
			"TPA": 52, "MCO": 48, "JFK": 85, "ORD": 70, "ATL": 58,
			"SFO": 88, "LAX": 78, "DFW": 55,
		},
		DefaultRentalBase: 60,

		MealTier: map[string]string{
			"JFK": TierHighCost, "LGA": TierHighCost, "SFO": TierHighCost,
			"BOS": TierHighCost, "LAX": TierHighCost, "DCA": TierHighCost,
			"ORD": TierMidCost, "ATL": TierMidCost, "SEA": TierMidCost,
			"DEN": TierMidCost, "BNA": TierMidCost,
		},

		BagFees: map[string]float64{
			"B6": 70, // JetBlue
			"DL": 70, // Delta
			"AA": 80, // American
			"WN": 0,  // Southwest: two free checked bags
			"UA": 80, // United
		},
		DefaultBagFee: 75,

		DomesticAirports: map[string]bool{
			"BOS": true, "MHT": true, "TPA": true, "MCO": true, "JFK": true,
			"LGA": true, "EWR": true, "ORD": true, "ATL": true, "DFW": true,
			"SFO": true, "LAX": true, "SEA": true, "DEN": true, "DCA": true,
			"IAD": true, "PHL": true, "BNA": true, "CLT": true, "MIA": true,
			"FLL": true, "PHX": true, "LAS": true, "SAN": true, "MSP": true,
			"DTW": true, "IAH": true, "AUS": true, "RDU": true, "PIT": true,
		},

		AirlineCodes: map[string]string{
			"JETBLUE": "B6", "DELTA": "DL", "SOUTHWEST": "WN",
			"AMERICAN": "AA", "UNITED": "UA",
		},

		BrandKeywords: map[string][]string{
			"Marriott": {
				"marriott", "courtyard", "residence inn", "fairfield",
				"springhill suites", "jw marriott", "ritz-carlton", "sheraton",
				"westin", "aloft", "moxy", "ac hotel", "towneplace suites",
			},
			"Hilton": {
				"hilton", "doubletree", "hampton inn", "embassy suites",
				"homewood suites", "home2 suites", "waldorf astoria", "curio",
				"tru by hilton", "canopy by hilton",
			},
			"Wyndham": {
				"wyndham", "ramada", "days inn", "super 8", "la quinta",
				"baymont", "travelodge", "microtel", "howard johnson", "wingate",
			},
		},

		CarServiceRateCard: map[string][]CarServiceTier{
			"BOS": {
				{Label: "1-3", MinTravelers: 1, MaxTravelers: 3, OneWayRate: 120},
				{Label: "4-5", MinTravelers: 4, MaxTravelers: 5, OneWayRate: 165},
				{Label: "6-14", MinTravelers: 6, MaxTravelers: 14, OneWayRate: 240},
			},
			"MHT": {
				{Label: "1-3", MinTravelers: 1, MaxTravelers: 3, OneWayRate: 140},
				{Label: "4-5", MinTravelers: 4, MaxTravelers: 5, OneWayRate: 185},
				{Label: "6-14", MinTravelers: 6, MaxTravelers: 14, OneWayRate: 265},
			},
		},
	}
}
