package models

import "errors"

var ErrInvalidTripDates = errors.New("return date must be after departure date")
var ErrNoTravelers = errors.New("at least one traveler is required")
var ErrSameAirport = errors.New("origin and destination airports must differ")
var ErrNotFound = errors.New("requested resource not found")

// ErrUpstreamUnavailable indicates a pricing source could not be reached or
// returned nothing usable; resolvers recover from it via their fallback chain.
var ErrUpstreamUnavailable = errors.New("upstream pricing source unavailable")

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Message string `json:"message"`
}
