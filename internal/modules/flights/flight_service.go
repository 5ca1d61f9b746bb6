package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"trip-cost-estimator/internal/models"
	"trip-cost-estimator/internal/rates"
	"trip-cost-estimator/pkg/amadeus"
	"trip-cost-estimator/pkg/cache"
)

// OffersSourceInterface is the flight pricing upstream consumed by the
// resolver; pkg/amadeus satisfies it.
type OffersSourceInterface interface {
	SearchFlightOffers(ctx context.Context, q amadeus.FlightQuery) ([]amadeus.FlightOffer, error)
}

// ServiceInterface defines what the flights module exposes to handlers and
// the estimate orchestrator.
type ServiceInterface interface {
	ResolveFare(ctx context.Context, req FareRequest) (models.FareQuote, error)
	BagFee(origin, destination, airline string, travelers int) models.BagFeeQuote
}

// FareRequest is the input for one fare resolution.
type FareRequest struct {
	Origin           string
	Destination      string
	DepartureDate    models.Date
	ReturnDate       models.Date
	PreferredAirline string
	// ManualPrice, when positive, bypasses the pricing source entirely.
	ManualPrice float64
}

const fareCacheTTL = 15 * time.Minute

// Service resolves per-traveler round-trip fares with a strict fallback
// chain: preferred carrier, then any carrier, then unavailable. It also
// computes checked-bag fees since both depend on the carrier tables.
type Service struct {
	source OffersSourceInterface
	tables *rates.Tables
	cache  cache.Cache
}

// NewService creates a flights service. source may be nil when no pricing
// credentials are configured; fares then resolve as unavailable unless a
// manual price is given.
func NewService(source OffersSourceInterface, tables *rates.Tables, c cache.Cache) *Service {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	return &Service{source: source, tables: tables, cache: c}
}

// ResolveFare resolves the average per-traveler round-trip price. The first
// strategy that yields at least one usable price wins; a fare that cannot be
// resolved is reported as unavailable, never guessed.
func (s *Service) ResolveFare(ctx context.Context, req FareRequest) (models.FareQuote, error) {
	if req.ManualPrice > 0 {
		return models.FareQuote{
			PerTraveler: req.ManualPrice,
			Source:      models.SourceManual,
			Advisory:    "using manually entered flight price",
		}, nil
	}
	if s.source == nil {
		return models.FareQuote{
			Source:   models.SourceUnavailable,
			Advisory: "flight pricing source is not configured; enter a manual price",
		}, nil
	}

	cacheKey := fmt.Sprintf("fare:%s:%s:%s:%s:%s",
		rates.NormalizeKey(req.Origin), rates.NormalizeKey(req.Destination),
		req.DepartureDate.Format("2006-01-02"), req.ReturnDate.Format("2006-01-02"),
		rates.NormalizeKey(req.PreferredAirline))
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached models.FareQuote
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	query := amadeus.FlightQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate.Format("2006-01-02"),
		ReturnDate:    req.ReturnDate.Format("2006-01-02"),
		Adults:        1, // per-person pricing; totals scale by traveler count
	}

	quote := s.resolveFromSource(ctx, query, req.PreferredAirline)

	if quote.Source != models.SourceUnavailable {
		if raw, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(raw), fareCacheTTL); err != nil {
				log.Printf("flights: cache set failed: %v", err)
			}
		}
	}
	return quote, nil
}

func (s *Service) resolveFromSource(ctx context.Context, query amadeus.FlightQuery, preferredAirline string) models.FareQuote {
	carrierCode := s.tables.AirlineCode(preferredAirline)

	// Pass 1: preferred carrier only.
	if carrierCode != "" {
		filtered := query
		filtered.CarrierCode = carrierCode
		offers, err := s.source.SearchFlightOffers(ctx, filtered)
		if err != nil {
			log.Printf("flights: preferred-carrier search failed: %v", err)
		} else if avg, n := averagePrice(offers); n > 0 {
			return models.FareQuote{PerTraveler: avg, Source: models.SourcePreferredCarrier}
		}
	}

	// Pass 2: any carrier.
	offers, err := s.source.SearchFlightOffers(ctx, query)
	if err != nil {
		log.Printf("flights: any-carrier search failed: %v", err)
		return models.FareQuote{
			Source:   models.SourceUnavailable,
			Advisory: "flight pricing source unavailable; enter a manual price or treat flights as $0",
		}
	}
	if avg, n := averagePrice(offers); n > 0 {
		advisory := ""
		if carrierCode != "" {
			advisory = fmt.Sprintf("no offers found for %s; averaged across all carriers", preferredAirline)
		}
		return models.FareQuote{PerTraveler: avg, Source: models.SourceAnyCarrier, Advisory: advisory}
	}

	return models.FareQuote{
		Source:   models.SourceUnavailable,
		Advisory: "no priced flight offers returned; check dates and airport codes",
	}
}

// averagePrice returns the arithmetic mean of the usable offer prices and
// how many offers were usable. Unparsable or negative prices are skipped,
// not treated as zero.
func averagePrice(offers []amadeus.FlightOffer) (float64, int) {
	var sum float64
	var n int
	for _, o := range offers {
		p, err := strconv.ParseFloat(strings.TrimSpace(o.GrandTotal), 64)
		if err != nil || p < 0 {
			continue
		}
		sum += p
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// BagFee computes the round-trip checked-bag cost for the party: one bag per
// traveler, free on international routes where the first bag is bundled into
// the fare.
func (s *Service) BagFee(origin, destination, airline string, travelers int) models.BagFeeQuote {
	domestic := s.tables.IsDomesticRoute(origin, destination)
	if !domestic {
		return models.BagFeeQuote{
			Domestic: false,
			Note:     "international route: first checked bag included in fare",
		}
	}

	carrierCode := s.tables.AirlineCode(airline)
	perTraveler := s.tables.BagFee(carrierCode)
	note := fmt.Sprintf("one checked bag per traveler, round trip (%s)", strings.TrimSpace(airline))
	if carrierCode == "" {
		note = "one checked bag per traveler, round trip (default carrier fee)"
	}
	return models.BagFeeQuote{
		PerTraveler: perTraveler,
		Total:       perTraveler * float64(travelers),
		Domestic:    true,
		Note:        note,
	}
}
