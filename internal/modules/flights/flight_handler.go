package flights

import (
	"net/http"

	"trip-cost-estimator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// QuoteRequest is the input for a standalone flight quote.
type QuoteRequest struct {
	OriginAirport      string      `json:"origin_airport" validate:"required,len=3,alpha"`
	DestinationAirport string      `json:"destination_airport" validate:"required,len=3,alpha"`
	DepartureDate      models.Date `json:"departure_date" validate:"required"`
	ReturnDate         models.Date `json:"return_date" validate:"required"`
	Travelers          int         `json:"travelers" validate:"required,min=1"`
	PreferredAirline   string      `json:"preferred_airline,omitempty"`
	ManualPrice        float64     `json:"manual_price,omitempty" validate:"omitempty,gte=0"`
}

// QuoteResponse pairs the fare with the bag fee since both are per-carrier.
type QuoteResponse struct {
	Fare         models.FareQuote   `json:"fare"`
	FlightsTotal float64            `json:"flights_total"`
	Bags         models.BagFeeQuote `json:"bags"`
}

// Handler handles HTTP requests for flight quotes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new flights handler.
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
	if !req.ReturnDate.After(req.DepartureDate.Time) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: models.ErrInvalidTripDates.Error()})
	}

	fare, err := h.svc.ResolveFare(c.Request().Context(), FareRequest{
		Origin:           req.OriginAirport,
		Destination:      req.DestinationAirport,
		DepartureDate:    req.DepartureDate,
		ReturnDate:       req.ReturnDate,
		PreferredAirline: req.PreferredAirline,
		ManualPrice:      req.ManualPrice,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to resolve fare"})
	}

	bags := h.svc.BagFee(req.OriginAirport, req.DestinationAirport, req.PreferredAirline, req.Travelers)

	return c.JSON(http.StatusOK, QuoteResponse{
		Fare:         fare,
		FlightsTotal: fare.PerTraveler * float64(req.Travelers),
		Bags:         bags,
	})
}
