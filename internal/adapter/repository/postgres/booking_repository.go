package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

const selectBooking = `
	SELECT b.id, b.slot_id, b.customer_name, b.customer_email, b.customer_phone,
		b.status, b.created_at, b.cancelled_at,
		s.id, s.venue_id, s.start_time, s.end_time, s.is_available, s.created_at
	FROM bookings b
	JOIN time_slots s ON s.id = b.slot_id
	`

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, selectBooking+`WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.StorageError("get booking", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	var conds []string
	var args []any

	if filter.Email != "" {
		args = append(args, filter.Email)
		conds = append(conds, fmt.Sprintf("b.customer_email = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}

	query := selectBooking
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "ORDER BY b.created_at, b.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError("list bookings", err)
	}

	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.StorageError("scan booking", err)
		}

		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list bookings", err)
	}

	return bookings, nil
}

func (r *BookingRepository) HasConfirmed(ctx context.Context, slotID uuid.UUID) (bool, error) {
	query := `
	SELECT EXISTS (
		SELECT 1 FROM bookings WHERE slot_id = $1 AND status = $2
	)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slotID, domain.BookingConfirmed).Scan(&exists); err != nil {
		return false, domain.StorageError("check confirmed booking", err)
	}

	return exists, nil
}

func (r *BookingRepository) Reserve(ctx context.Context, booking *domain.Booking) error {
	return withTx(ctx, r.db, "reserve slot", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
		UPDATE time_slots
		SET is_available = FALSE
		WHERE id = $1 AND is_available = TRUE
		`, booking.SlotID)
		if err != nil {
			return fmt.Errorf("mark slot reserved: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("mark slot reserved: %w", err)
		}

		if n == 0 {
			return slotMissingOrTaken(ctx, tx, booking.SlotID)
		}

		_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (id, slot_id, customer_name, customer_email, customer_phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		`,
			booking.ID,
			booking.SlotID,
			booking.Customer.Name,
			booking.Customer.Email,
			nullString(booking.Customer.Phone),
			booking.Status,
			booking.CreatedAt,
		)
		if err != nil {
			switch code, _ := pqViolation(err); code {
			case codeUniqueViolation:
				return domain.ErrSlotAlreadyBooked
			case codeForeignKeyViolation:
				return domain.ErrSlotNotFound
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})
}

func (r *BookingRepository) Release(ctx context.Context, booking *domain.Booking) error {
	return withTx(ctx, r.db, "release slot", func(tx *sql.Tx) error {
		var slotID uuid.UUID
		err := tx.QueryRowContext(ctx, `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
		RETURNING slot_id
		`, booking.ID, domain.BookingCancelled, booking.CancelledAt, domain.BookingConfirmed).Scan(&slotID)

		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, booking.ID).Scan(&exists); err != nil {
				return fmt.Errorf("check booking: %w", err)
			}
			if !exists {
				return domain.ErrBookingNotFound
			}
			return domain.ErrBookingAlreadyCancelled
		}
		if err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `UPDATE time_slots SET is_available = TRUE WHERE id = $1`, slotID); err != nil {
			return fmt.Errorf("mark slot available: %w", err)
		}

		return nil
	})
}

func slotMissingOrTaken(ctx context.Context, tx *sql.Tx, slotID uuid.UUID) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1)`, slotID).Scan(&exists); err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if !exists {
		return domain.ErrSlotNotFound
	}
	return domain.ErrSlotNotAvailable
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var slot domain.TimeSlot
	var phone sql.NullString
	var cancelledAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.SlotID,
		&b.Customer.Name,
		&b.Customer.Email,
		&phone,
		&b.Status,
		&b.CreatedAt,
		&cancelledAt,
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

	if phone.Valid {
		b.Customer.Phone = phone.String
	}

	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	b.Slot = &slot
	return &b, nil
}
