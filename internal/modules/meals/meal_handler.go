package meals

import (
	"net/http"

	"trip-cost-estimator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HTTPQuoteRequest is the input for a standalone meals quote.
type HTTPQuoteRequest struct {
	Destination   string      `json:"destination" validate:"required"`
	City          string      `json:"city,omitempty"`
	State         string      `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	DepartureDate models.Date `json:"departure_date" validate:"required"`
	ReturnDate    models.Date `json:"return_date" validate:"required"`
	Travelers     int         `json:"travelers" validate:"required,min=1"`
}

// Handler handles HTTP requests for meal quotes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new meals handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) GetQuote(c echo.Context) error {
	var req HTTPQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}
	if !req.ReturnDate.After(req.DepartureDate.Time) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: models.ErrInvalidTripDates.Error()})
	}

	quote := h.svc.Quote(c.Request().Context(), QuoteRequest{
		Destination: req.Destination,
		City:        req.City,
		State:       req.State,
		Departure:   req.DepartureDate,
		Return:      req.ReturnDate,
		Travelers:   req.Travelers,
	})
	return c.JSON(http.StatusOK, quote)
}
