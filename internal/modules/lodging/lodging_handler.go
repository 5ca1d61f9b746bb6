package lodging

import (
	"net/http"

	"trip-cost-estimator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// QuoteRequest is the input for a standalone lodging quote.
type QuoteRequest struct {
	Destination    string      `json:"destination" validate:"required"`
	PreferredBrand string      `json:"preferred_brand,omitempty"`
	CheckIn        models.Date `json:"check_in" validate:"required"`
	CheckOut       models.Date `json:"check_out" validate:"required"`
	Travelers      int         `json:"travelers" validate:"required,min=1"`
	ManualRate     float64     `json:"manual_rate,omitempty" validate:"omitempty,gte=0"`
}

// QuoteResponse is the nightly rate plus the whole-stay total for the party.
type QuoteResponse struct {
	Quote      models.LodgingQuote `json:"quote"`
	Nights     int                 `json:"nights"`
	HotelTotal float64             `json:"hotel_total"`
}

// Handler handles HTTP requests for lodging quotes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new lodging handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) GetQuote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}
	if !req.CheckOut.After(req.CheckIn.Time) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: models.ErrInvalidTripDates.Error()})
	}

	quote, err := h.svc.ResolveNightlyRate(c.Request().Context(), RateRequest{
		Destination:    req.Destination,
		PreferredBrand: req.PreferredBrand,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Travelers:      req.Travelers,
		ManualRate:     req.ManualRate,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to resolve lodging rate"})
	}

	nights := models.NewTripLength(req.CheckIn, req.CheckOut).Nights
	return c.JSON(http.StatusOK, QuoteResponse{
		Quote:      quote,
		Nights:     nights,
		HotelTotal: quote.NightlyRate * float64(nights) * float64(req.Travelers),
	})
}
