package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

const selectVenue = `
	SELECT v.id, v.name, v.location, v.sport_id, v.sport_name, v.created_at, v.updated_at,
		(SELECT COUNT(*) FROM time_slots s WHERE s.venue_id = v.id AND s.is_available = TRUE)
	FROM venues v
	`

type VenueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
	INSERT INTO venues (id, name, location, sport_id, sport_name, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		venue.ID,
		venue.Name,
		venue.Location,
		venue.SportID,
		venue.SportName,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return domain.StorageError("insert venue", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	v, err := scanVenue(r.db.QueryRowContext(ctx, selectVenue+`WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, domain.StorageError("get venue", err)
	}

	return v, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	return r.query(ctx, "list venues", selectVenue+`ORDER BY v.created_at, v.id`)
}

func (r *VenueRepository) ListWithAvailableSlots(ctx context.Context) ([]domain.Venue, error) {
	return r.query(ctx, "list available venues", selectVenue+`
	WHERE EXISTS (
		SELECT 1 FROM time_slots s WHERE s.venue_id = v.id AND s.is_available = TRUE
	)
	ORDER BY v.created_at, v.id
	`)
}

// Delete removes bookings, then slots, then the venue, in one transaction.
func (r *VenueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, r.db, "delete venue", func(tx *sql.Tx) error {
		var venueID uuid.UUID
		err := tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, id).Scan(&venueID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("lock venue: %w", err)
		}

		steps := []struct {
			name  string
			query string
		}{
			{"delete bookings", `DELETE FROM bookings WHERE slot_id IN (SELECT id FROM time_slots WHERE venue_id = $1)`},
			{"delete slots", `DELETE FROM time_slots WHERE venue_id = $1`},
			{"delete venue", `DELETE FROM venues WHERE id = $1`},
		}

		for _, step := range steps {
			if _, err := tx.ExecContext(ctx, step.query, id); err != nil {
				return fmt.Errorf("%s: %w", step.name, err)
			}
		}

		return nil
	})
}

func (r *VenueRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.Venue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError(op, err)
	}

	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, domain.StorageError(op, err)
		}

		venues = append(venues, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(op, err)
	}

	return venues, nil
}

func scanVenue(row rowScanner) (*domain.Venue, error) {
	var v domain.Venue

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Location,
		&v.SportID,
		&v.SportName,
		&v.CreatedAt,
		&v.UpdatedAt,
		&v.AvailableSlots,
	)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
