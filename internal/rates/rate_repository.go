package rates

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for loading versioned rate-table
// rows that overlay the compiled-in defaults. It is read-only: the engine
// never writes rate data.
type RepositoryInterface interface {
	LoadInto(ctx context.Context, t *Tables) error
}

// Repository implements RepositoryInterface against Postgres.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new rate-table repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Table names recognized in the rate_tables relation.
const (
	tableHotelNightly = "hotel_nightly"
	tableRentalBase   = "rental_base"
	tableBagFees      = "bag_fees"
)

// LoadInto overlays numeric rate rows onto the given tables. Rows with an
// unrecognized table name are skipped so a newer data version never breaks
// an older binary.
func (r *Repository) LoadInto(ctx context.Context, t *Tables) error {
	query := `
		SELECT table_name, location_key, rate
		FROM rate_tables
		WHERE active = TRUE`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("repository.LoadInto: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var table, key string
		var rate float64
		if err := rows.Scan(&table, &key, &rate); err != nil {
			return fmt.Errorf("repository.LoadInto: scan: %w", err)
		}
		key = NormalizeKey(key)
		switch table {
		case tableHotelNightly:
			t.HotelNightly[key] = rate
		case tableRentalBase:
			t.RentalBase[key] = rate
		case tableBagFees:
			t.BagFees[key] = rate
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository.LoadInto: %w", err)
	}
	return nil
}
