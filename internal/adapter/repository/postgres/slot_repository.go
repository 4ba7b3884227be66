package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

const selectSlot = `
	SELECT s.id, s.venue_id, s.start_time, s.end_time, s.is_available, s.created_at
	FROM time_slots s
	`

type SlotRepository struct {
	db *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// CreateWithNoOverlap locks the venue row so concurrent inserts for the same
// venue run their overlap checks one after another.
func (r *SlotRepository) CreateWithNoOverlap(ctx context.Context, slot *domain.TimeSlot) error {
	return withTx(ctx, r.db, "create slot", func(tx *sql.Tx) error {
		var venueID uuid.UUID
		err := tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, slot.VenueID).Scan(&venueID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		if err != nil {
			return fmt.Errorf("lock venue: %w", err)
		}

		var overlaps bool
		err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM time_slots
			WHERE venue_id = $1 AND start_time < $3 AND end_time > $2
		)
		`, slot.VenueID, slot.StartTime, slot.EndTime).Scan(&overlaps)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}

		if overlaps {
			return domain.ErrSlotOverlap
		}

		_, err = tx.ExecContext(ctx, `
		INSERT INTO time_slots (id, venue_id, start_time, end_time, is_available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		`, slot.ID, slot.VenueID, slot.StartTime, slot.EndTime, slot.Available, slot.CreatedAt)
		if err != nil {
			switch code, _ := pqViolation(err); code {
			case codeUniqueViolation:
				return domain.ErrSlotOverlap
			case codeCheckViolation:
				return domain.ErrSlotEndBeforeStart
			case codeForeignKeyViolation:
				return domain.ErrVenueNotFound
			}
			return fmt.Errorf("insert slot: %w", err)
		}

		return nil
	})
}

func (r *SlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	slot, err := scanSlot(r.db.QueryRowContext(ctx, selectSlot+`WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, domain.StorageError("get slot", err)
	}

	return slot, nil
}

func (r *SlotRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]domain.TimeSlot, error) {
	return r.query(ctx, "list slots by venue", selectSlot+`
	WHERE s.venue_id = $1
	ORDER BY s.seq
	`, venueID)
}

func (r *SlotRepository) ListAvailableInRange(ctx context.Context, sportID string, from, to time.Time) ([]domain.TimeSlot, error) {
	return r.query(ctx, "list available slots", selectSlot+`
	JOIN venues v ON v.id = s.venue_id
	WHERE v.sport_id = $1
		AND s.is_available = TRUE
		AND s.start_time >= $2
		AND s.end_time <= $3
	ORDER BY s.start_time, s.seq
	`, sportID, from, to)
}

func (r *SlotRepository) ListDivergent(ctx context.Context) ([]uuid.UUID, error) {
	query := `
	SELECT s.id
	FROM time_slots s
	WHERE s.is_available = EXISTS (
		SELECT 1 FROM bookings b WHERE b.slot_id = s.id AND b.status = $1
	)
	ORDER BY s.seq
	`

	rows, err := r.db.QueryContext(ctx, query, domain.BookingConfirmed)
	if err != nil {
		return nil, domain.StorageError("list divergent slots", err)
	}

	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, domain.StorageError("scan slot id", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list divergent slots", err)
	}

	return ids, nil
}

func (r *SlotRepository) query(ctx context.Context, op, query string, args ...any) ([]domain.TimeSlot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError(op, err)
	}

	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, domain.StorageError(op, err)
		}

		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageError(op, err)
	}

	return slots, nil
}

func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot

	err := row.Scan(
		&slot.ID,
		&slot.VenueID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Available,
		&slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
