package ground

import (
	"net/http"

	"trip-cost-estimator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// QuoteRequest is the input for a standalone ground transport quote.
type QuoteRequest struct {
	OriginAirport      string      `json:"origin_airport" validate:"required,len=3,alpha"`
	DestinationAirport string      `json:"destination_airport" validate:"required,len=3,alpha"`
	DepartureDate      models.Date `json:"departure_date" validate:"required"`
	ReturnDate         models.Date `json:"return_date" validate:"required"`
	Travelers          int         `json:"travelers" validate:"required,min=1"`
	IncludeRental      bool        `json:"include_rental"`
	IncludeCarService  bool        `json:"include_car_service"`
	IndividualReturn   bool        `json:"individual_return"`
	ManualRentalRate   float64     `json:"manual_rental_rate,omitempty" validate:"omitempty,gte=0"`
}

// Handler handles HTTP requests for ground transport quotes.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new ground transport handler.
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

	plan := h.svc.Plan(PlanRequest{
		Origin:            req.OriginAirport,
		Destination:       req.DestinationAirport,
		Departure:         req.DepartureDate,
		Return:            req.ReturnDate,
		Travelers:         req.Travelers,
		IncludeRental:     req.IncludeRental,
		IncludeCarService: req.IncludeCarService,
		IndividualReturn:  req.IndividualReturn,
		ManualRentalRate:  req.ManualRentalRate,
	})
	return c.JSON(http.StatusOK, plan)
}
