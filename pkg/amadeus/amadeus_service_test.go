package amadeus

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient serves canned bodies keyed by URL path and records requests.
func newTestClient(bodies map[string]string, requests *[]*http.Request) *Client {
	return &Client{
		baseURL: "https://amadeus.test",
		httpClient: &http.Client{
			Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				if requests != nil {
					*requests = append(*requests, req)
				}
				body, ok := bodies[req.URL.Path]
				status := http.StatusOK
				if !ok {
					body, status = `{"errors":[{"detail":"not found"}]}`, http.StatusNotFound
				}
				return &http.Response{
					StatusCode: status,
					Body:       io.NopCloser(strings.NewReader(body)),
					Header:     http.Header{},
				}, nil
			}),
		},
	}
}

func TestSearchFlightOffers(t *testing.T) {
	var requests []*http.Request
	c := newTestClient(map[string]string{
		"/v2/shopping/flight-offers": `{"data":[
			{"price":{"grandTotal":"150.00","currency":"USD"},"validatingAirlineCodes":["B6"]},
			{"price":{"grandTotal":"210.40","currency":"USD"},"validatingAirlineCodes":["DL"]}
		]}`,
	}, &requests)

	offers, err := c.SearchFlightOffers(context.Background(), FlightQuery{
		Origin:        "bos",
		Destination:   "tpa",
		DepartureDate: "2025-03-10",
		ReturnDate:    "2025-03-13",
		CarrierCode:   "b6",
	})
	if err != nil {
		t.Fatalf("SearchFlightOffers error: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("got %d offers; want 2", len(offers))
	}
	if offers[0].GrandTotal != "150.00" || offers[0].ValidatingCarriers[0] != "B6" {
		t.Errorf("first offer = %+v", offers[0])
	}

	q := requests[0].URL.Query()
	if q.Get("originLocationCode") != "BOS" || q.Get("destinationLocationCode") != "TPA" {
		t.Errorf("airport codes not uppercased: %v", q)
	}
	if q.Get("includedAirlineCodes") != "B6" {
		t.Errorf("carrier filter = %q; want B6", q.Get("includedAirlineCodes"))
	}
	if q.Get("adults") != "1" || q.Get("currencyCode") != "USD" {
		t.Errorf("query defaults wrong: %v", q)
	}
}

func TestSearchFlightOffersOmitsCarrierFilter(t *testing.T) {
	var requests []*http.Request
	c := newTestClient(map[string]string{
		"/v2/shopping/flight-offers": `{"data":[]}`,
	}, &requests)

	offers, err := c.SearchFlightOffers(context.Background(), FlightQuery{
		Origin: "BOS", Destination: "TPA",
		DepartureDate: "2025-03-10", ReturnDate: "2025-03-13",
	})
	if err != nil {
		t.Fatalf("SearchFlightOffers error: %v", err)
	}
	if len(offers) != 0 {
		t.Errorf("got %d offers; want 0", len(offers))
	}
	if requests[0].URL.Query().Has("includedAirlineCodes") {
		t.Error("carrier filter must be absent when no code is given")
	}
}

func TestSearchFlightOffersUpstreamError(t *testing.T) {
	c := newTestClient(map[string]string{}, nil)
	if _, err := c.SearchFlightOffers(context.Background(), FlightQuery{
		Origin: "BOS", Destination: "TPA",
		DepartureDate: "2025-03-10", ReturnDate: "2025-03-13",
	}); err == nil {
		t.Error("expected an error on non-2xx status")
	}
}

func TestSearchHotels(t *testing.T) {
	var requests []*http.Request
	c := newTestClient(map[string]string{
		"/v1/reference-data/locations/hotels/by-city": `{"data":[
			{"hotelId":"H1","name":"Courtyard Tampa"},
			{"hotelId":"H2","name":"Hilton Tampa"},
			{"hotelId":"","name":"Nameless"}
		]}`,
		"/v3/shopping/hotel-offers": `{"data":[
			{"hotel":{"hotelId":"H1"},"offers":[{"price":{"total":"300.00"}},{"price":{"total":"330.00"}}]},
			{"hotel":{"hotelId":"H9"},"offers":[{"price":{"total":"999.00"}}]}
		]}`,
	}, &requests)

	properties, err := c.SearchHotels(context.Background(), HotelQuery{
		CityCode:    "tpa",
		CheckInDate: "2025-03-10", CheckOutDate: "2025-03-13",
		Adults: 2,
	})
	if err != nil {
		t.Fatalf("SearchHotels error: %v", err)
	}
	if len(properties) != 2 {
		t.Fatalf("got %d properties; want 2 (blank hotelId dropped)", len(properties))
	}
	if properties[0].Name != "Courtyard Tampa" || len(properties[0].Offers) != 2 {
		t.Errorf("first property = %+v; want Courtyard with 2 offers", properties[0])
	}
	// H2 had no offers; it is still returned for brand filtering.
	if properties[1].HotelID != "H2" || len(properties[1].Offers) != 0 {
		t.Errorf("second property = %+v; want H2 with no offers", properties[1])
	}

	offerQuery := requests[1].URL.Query()
	if offerQuery.Get("hotelIds") != "H1,H2" {
		t.Errorf("hotelIds = %q; want H1,H2", offerQuery.Get("hotelIds"))
	}
	// Each traveler gets their own room.
	if offerQuery.Get("roomQuantity") != "2" {
		t.Errorf("roomQuantity = %q; want 2", offerQuery.Get("roomQuantity"))
	}
}

func TestSearchHotelsNoCandidates(t *testing.T) {
	c := newTestClient(map[string]string{
		"/v1/reference-data/locations/hotels/by-city": `{"data":[]}`,
	}, nil)

	properties, err := c.SearchHotels(context.Background(), HotelQuery{
		CityCode: "TPA", CheckInDate: "2025-03-10", CheckOutDate: "2025-03-13",
	})
	if err != nil {
		t.Fatalf("SearchHotels error: %v", err)
	}
	if len(properties) != 0 {
		t.Errorf("got %d properties; want 0 without a second API call", len(properties))
	}
}
