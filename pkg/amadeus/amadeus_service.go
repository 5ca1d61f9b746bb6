// Package amadeus wraps the Amadeus Self-Service pricing APIs used by the
// fare and lodging resolvers: Flight Offers Search, Hotel List and Hotel
// Offers Search. Authentication is OAuth2 client credentials.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds the Amadeus credentials and environment selection.
type Config struct {
	ClientID     string
	ClientSecret string
	// Hostname is "production" or "test"; anything else defaults to test.
	Hostname string
	// Timeout bounds every upstream call; a slow Amadeus response must not
	// hang an estimate.
	Timeout time.Duration
}

// Client talks to the Amadeus REST APIs.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client whose underlying transport refreshes the OAuth2
// token automatically.
func NewClient(cfg Config) *Client {
	baseURL := "https://test.api.amadeus.com"
	if cfg.Hostname == "production" {
		baseURL = "https://api.amadeus.com"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + "/v1/security/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	httpClient := cc.Client(ctx)
	httpClient.Timeout = timeout

	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// FlightQuery describes one round-trip flight offers search. Dates are
// YYYY-MM-DD. CarrierCode, when set, restricts offers to that airline.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	CarrierCode   string
	Adults        int
	Max           int
}

// FlightOffer is one priced offer. GrandTotal is kept as the raw string the
// API returned; callers decide what counts as a usable price.
type FlightOffer struct {
	GrandTotal         string
	Currency           string
	ValidatingCarriers []string
}

// HotelQuery describes a hotel list + offers search near a city.
type HotelQuery struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	RoomQuantity int
}

// HotelOffer is one priced stay offer; Total is the raw price string for the
// whole stay.
type HotelOffer struct {
	Total string
}

// Property is a hotel with whatever priced offers the API returned for it.
type Property struct {
	HotelID string
	Name    string
	Offers  []HotelOffer
}

// SearchFlightOffers runs a Flight Offers Search and returns the priced
// offers. An empty result is not an error.
func (c *Client) SearchFlightOffers(ctx context.Context, q FlightQuery) ([]FlightOffer, error) {
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}
	max := q.Max
	if max <= 0 {
		max = 20
	}

	params := url.Values{}
	params.Set("originLocationCode", strings.ToUpper(q.Origin))
	params.Set("destinationLocationCode", strings.ToUpper(q.Destination))
	params.Set("departureDate", q.DepartureDate)
	params.Set("returnDate", q.ReturnDate)
	params.Set("adults", fmt.Sprint(adults))
	params.Set("currencyCode", "USD")
	params.Set("max", fmt.Sprint(max))
	if q.CarrierCode != "" {
		params.Set("includedAirlineCodes", strings.ToUpper(q.CarrierCode))
	}

	body, err := c.get(ctx, "/v2/shopping/flight-offers", params)
	if err != nil {
		return nil, fmt.Errorf("amadeus.SearchFlightOffers: %w", err)
	}

	var resp struct {
		Data []struct {
			Price struct {
				GrandTotal string `json:"grandTotal"`
				Currency   string `json:"currency"`
			} `json:"price"`
			ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("amadeus.SearchFlightOffers: decode: %w", err)
	}

	offers := make([]FlightOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		offers = append(offers, FlightOffer{
			GrandTotal:         d.Price.GrandTotal,
			Currency:           d.Price.Currency,
			ValidatingCarriers: d.ValidatingAirlineCodes,
		})
	}
	return offers, nil
}

// SearchHotels lists hotels for a city, then fetches stay offers for up to
// twenty of them. Properties without offers are still returned so name-based
// brand filtering can see the full candidate set.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) ([]Property, error) {
	listParams := url.Values{}
	listParams.Set("cityCode", strings.ToUpper(q.CityCode))
	listParams.Set("radius", "10")
	listParams.Set("radiusUnit", "KM")
	listParams.Set("hotelSource", "ALL")

	body, err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", listParams)
	if err != nil {
		return nil, fmt.Errorf("amadeus.SearchHotels: list: %w", err)
	}

	var listResp struct {
		Data []struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("amadeus.SearchHotels: decode list: %w", err)
	}

	properties := make([]Property, 0, len(listResp.Data))
	byID := make(map[string]int)
	ids := make([]string, 0, 20)
	for _, h := range listResp.Data {
		if h.HotelID == "" {
			continue
		}
		byID[h.HotelID] = len(properties)
		properties = append(properties, Property{HotelID: h.HotelID, Name: h.Name})
		if len(ids) < 20 {
			ids = append(ids, h.HotelID)
		}
	}
	if len(ids) == 0 {
		return properties, nil
	}

	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}
	rooms := q.RoomQuantity
	if rooms <= 0 {
		rooms = adults
	}

	offerParams := url.Values{}
	offerParams.Set("hotelIds", strings.Join(ids, ","))
	offerParams.Set("adults", fmt.Sprint(adults))
	offerParams.Set("roomQuantity", fmt.Sprint(rooms))
	offerParams.Set("checkInDate", q.CheckInDate)
	offerParams.Set("checkOutDate", q.CheckOutDate)
	offerParams.Set("currency", "USD")

	body, err = c.get(ctx, "/v3/shopping/hotel-offers", offerParams)
	if err != nil {
		return nil, fmt.Errorf("amadeus.SearchHotels: offers: %w", err)
	}

	var offerResp struct {
		Data []struct {
			Hotel struct {
				HotelID string `json:"hotelId"`
			} `json:"hotel"`
			Offers []struct {
				Price struct {
					Total string `json:"total"`
				} `json:"price"`
			} `json:"offers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &offerResp); err != nil {
		return nil, fmt.Errorf("amadeus.SearchHotels: decode offers: %w", err)
	}

	for _, d := range offerResp.Data {
		idx, ok := byID[d.Hotel.HotelID]
		if !ok {
			continue
		}
		for _, o := range d.Offers {
			properties[idx].Offers = append(properties[idx].Offers, HotelOffer{Total: o.Price.Total})
		}
	}
	return properties, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
