package lodging

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
	"trip-cost-estimator/pkg/amadeus"
)

// HotelSourceInterface is the lodging pricing upstream consumed by the
// resolver; pkg/amadeus satisfies it.
type HotelSourceInterface interface {
	SearchHotels(ctx context.Context, q amadeus.HotelQuery) ([]amadeus.Property, error)
}

// ServiceInterface defines what the lodging module exposes.
type ServiceInterface interface {
	ResolveNightlyRate(ctx context.Context, req RateRequest) (models.LodgingQuote, error)
}

// RateRequest is the input for one nightly-rate resolution.
type RateRequest struct {
	// Destination is the airport/city key used both for the live search and
	// the static table fallback.
	Destination    string
	PreferredBrand string
	CheckIn        models.Date
	CheckOut       models.Date
	Travelers      int
	// ManualRate, when positive, bypasses both the live source and the table.
	ManualRate float64
}

// Service resolves an average nightly lodging rate. Unlike flights, lodging
// always produces a usable estimate: live brand match, then the unfiltered
// live set, then the static table.
type Service struct {
	source HotelSourceInterface
	tables *rates.Tables
}

// NewService creates a lodging service. source may be nil; rates then come
// from the static table.
func NewService(source HotelSourceInterface, tables *rates.Tables) *Service {
	return &Service{source: source, tables: tables}
}

// ResolveNightlyRate resolves the average nightly rate per room.
func (s *Service) ResolveNightlyRate(ctx context.Context, req RateRequest) (models.LodgingQuote, error) {
	if req.ManualRate > 0 {
		return models.LodgingQuote{
			NightlyRate: req.ManualRate,
			Source:      models.SourceManual,
			Advisory:    "using manually entered nightly rate",
		}, nil
	}

	nights := models.NewTripLength(req.CheckIn, req.CheckOut).Nights
	if nights < 1 {
		nights = 1
	}

	if s.source != nil {
		quote, ok := s.resolveLive(ctx, req, nights)
		if ok {
			return quote, nil
		}
	}

	rate := s.tables.HotelRate(req.Destination)
	return models.LodgingQuote{
		NightlyRate: rate,
		Source:      models.SourceStaticTable,
		Advisory:    fmt.Sprintf("no live hotel pricing for %s; using static rate table", strings.TrimSpace(req.Destination)),
	}, nil
}

func (s *Service) resolveLive(ctx context.Context, req RateRequest, nights int) (models.LodgingQuote, bool) {
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}

	properties, err := s.source.SearchHotels(ctx, amadeus.HotelQuery{
		CityCode:     req.Destination,
		CheckInDate:  req.CheckIn.Format("2006-01-02"),
		CheckOutDate: req.CheckOut.Format("2006-01-02"),
		Adults:       travelers,
		RoomQuantity: travelers, // each traveler gets their own room
	})
	if err != nil {
		log.Printf("lodging: hotel search failed: %v", err)
		return models.LodgingQuote{}, false
	}
	if len(properties) == 0 {
		return models.LodgingQuote{}, false
	}

	matched := filterByBrand(properties, s.tables.KeywordsForBrand(req.PreferredBrand))
	source := models.SourceLiveBrandMatch
	advisory := ""
	if len(matched) == 0 {
		// No brand match: price the full candidate set so the estimate still
		// reflects the live market.
		matched = properties
		source = models.SourceLiveAverage
		advisory = fmt.Sprintf("no %s-brand properties found; averaged across all nearby hotels", req.PreferredBrand)
	}

	avg, n := averageNightlyRate(matched, nights)
	if n == 0 {
		return models.LodgingQuote{}, false
	}
	return models.LodgingQuote{NightlyRate: avg, Source: source, Advisory: advisory}, true
}

// filterByBrand keeps properties whose display name contains any brand
// keyword, case-insensitively. A nil keyword list matches nothing.
func filterByBrand(properties []amadeus.Property, keywords []string) []amadeus.Property {
	if len(keywords) == 0 {
		return nil
	}
	var matched []amadeus.Property
	for _, p := range properties {
		name := strings.ToLower(p.Name)
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// averageNightlyRate takes each property's cheapest usable stay offer,
// divides by the night count, and averages across properties. Properties
// with no usable offer are skipped.
func averageNightlyRate(properties []amadeus.Property, nights int) (float64, int) {
	var sum float64
	var n int
	for _, p := range properties {
		cheapest, ok := cheapestOffer(p)
		if !ok {
			continue
		}
		sum += cheapest / float64(nights)
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

func cheapestOffer(p amadeus.Property) (float64, bool) {
	var best float64
	found := false
	for _, o := range p.Offers {
		total, err := strconv.ParseFloat(strings.TrimSpace(o.Total), 64)
		if err != nil || total < 0 {
			continue
		}
		if !found || total < best {
			best = total
			found = true
		}
	}
	return best, found
}
