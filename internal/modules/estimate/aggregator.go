package estimate

import (
	"math"
	"time"

	"trip-cost-estimator/internal/models"

	"github.com/google/uuid"
)

// Aggregate composes line items into a final breakdown: subtotal, a
// contingency buffer, grand total and per-traveler total. Items arrive in
// display order and are kept as-is; an unavailable item must already be
// present at zero with its note, never omitted.
func Aggregate(items []models.LineItem, contingencyRate float64, travelers int, length models.TripLength) *models.CostBreakdown {
	if travelers < 1 {
		travelers = 1
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount
	}
	subtotal = round2(subtotal)
	contingency := round2(subtotal * contingencyRate)
	grand := round2(subtotal + contingency)

	return &models.CostBreakdown{
		ID:                uuid.NewString(),
		LineItems:         items,
		Subtotal:          subtotal,
		ContingencyRate:   contingencyRate,
		ContingencyAmount: contingency,
		GrandTotal:        grand,
		PerTraveler:       round2(grand / float64(travelers)),
		Travelers:         travelers,
		Length:            length,
		CreatedAt:         time.Now().UTC(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
