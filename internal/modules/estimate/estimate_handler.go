package estimate

import (
	"errors"
	"net/http"

	"trip-cost-estimator/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for full trip estimates.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new estimate handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) CreateEstimate(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	breakdown, err := h.svc.Estimate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTripDates) ||
			errors.Is(err, models.ErrNoTravelers) ||
			errors.Is(err, models.ErrSameAirport) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to calculate estimate"})
	}
	return c.JSON(http.StatusOK, breakdown)
}
