package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, *BookingRepository, *SlotRepository, *VenueRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return mock, NewBookingRepository(db), NewSlotRepository(db), NewVenueRepository(db)
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		SlotID:    uuid.New(),
		Customer:  domain.Customer{Name: "Rina", Email: "rina@example.com"},
		Status:    domain.BookingConfirmed,
		CreatedAt: time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestBookingRepository_Reserve(t *testing.T) {
	mock, repo, _, _ := newMock(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE time_slots") + ".*" + q("WHERE id = $1 AND is_available = TRUE")).
		WithArgs(b.SlotID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("INSERT INTO bookings")).
		WithArgs(b.ID, b.SlotID, "Rina", "rina@example.com", nil, b.Status, b.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Reserve(context.Background(), b))
}

func TestBookingRepository_Reserve_GuardedUpdateMisses(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		wantErr error
	}{
		{name: "slot missing", exists: false, wantErr: domain.ErrSlotNotFound},
		{name: "slot taken", exists: true, wantErr: domain.ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo, _, _ := newMock(t)
			b := testBooking()

			mock.ExpectBegin()
			mock.ExpectExec(q("WHERE id = $1 AND is_available = TRUE")).
				WithArgs(b.SlotID).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM time_slots WHERE id = $1)")).
				WithArgs(b.SlotID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			mock.ExpectRollback()

			err := repo.Reserve(context.Background(), b)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, domain.ErrStorage)
		})
	}
}

func TestBookingRepository_Reserve_ConfirmedUniqueViolation(t *testing.T) {
	mock, repo, _, _ := newMock(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE time_slots")).
		WithArgs(b.SlotID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "uniq_confirmed_booking_per_slot"})
	mock.ExpectRollback()

	err := repo.Reserve(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
}

func TestBookingRepository_Reserve_DriverFailure(t *testing.T) {
	mock, repo, _, _ := newMock(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE time_slots")).
		WithArgs(b.SlotID).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := repo.Reserve(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestBookingRepository_Reserve_CommitFailure(t *testing.T) {
	mock, repo, _, _ := newMock(t)
	b := testBooking()

	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE time_slots")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("INSERT INTO bookings")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := repo.Reserve(context.Background(), b)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestBookingRepository_Release(t *testing.T) {
	mock, repo, _, _ := newMock(t)
	b := testBooking()
	require.NoError(t, b.Cancel(time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC)))

	mock.ExpectBegin()
	mock.ExpectQuery(q("UPDATE bookings") + ".*" + q("WHERE id = $1 AND status = $4")).
		WithArgs(b.ID, string(domain.BookingCancelled), sqlmock.AnyArg(), string(domain.BookingConfirmed)).
		WillReturnRows(sqlmock.NewRows([]string{"slot_id"}).AddRow(b.SlotID.String()))
	mock.ExpectExec(q("UPDATE time_slots SET is_available = TRUE WHERE id = $1")).
		WithArgs(b.SlotID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Release(context.Background(), b))
}

func TestBookingRepository_Release_NoConfirmedRow(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		wantErr error
	}{
		{name: "unknown booking", exists: false, wantErr: domain.ErrBookingNotFound},
		{name: "already cancelled", exists: true, wantErr: domain.ErrBookingAlreadyCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo, _, _ := newMock(t)
			b := testBooking()

			mock.ExpectBegin()
			mock.ExpectQuery(q("UPDATE bookings")).
				WillReturnRows(sqlmock.NewRows([]string{"slot_id"}))
			mock.ExpectQuery(q("SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)")).
				WithArgs(b.ID).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			mock.ExpectRollback()

			err := repo.Release(context.Background(), b)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSlotRepository_CreateWithNoOverlap(t *testing.T) {
	start := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name     string
		overlaps bool
		wantErr  error
	}{
		{name: "free range", overlaps: false},
		{name: "overlapping range", overlaps: true, wantErr: domain.ErrSlotOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, _, repo, _ := newMock(t)
			slot, err := domain.NewTimeSlot(uuid.New(), start, end, start)
			require.NoError(t, err)

			mock.ExpectBegin()
			mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
				WithArgs(slot.VenueID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(slot.VenueID.String()))
			mock.ExpectQuery(q("WHERE venue_id = $1 AND start_time < $3 AND end_time > $2")).
				WithArgs(slot.VenueID, start, end).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.overlaps))

			if tt.wantErr != nil {
				mock.ExpectRollback()
			} else {
				mock.ExpectExec(q("INSERT INTO time_slots")).
					WithArgs(slot.ID, slot.VenueID, start, end, true, start).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			}

			err = repo.CreateWithNoOverlap(context.Background(), slot)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSlotRepository_CreateWithNoOverlap_UnknownVenue(t *testing.T) {
	mock, _, repo, _ := newMock(t)
	start := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	slot, err := domain.NewTimeSlot(uuid.New(), start, start.Add(time.Hour), start)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(q("FOR UPDATE")).
		WithArgs(slot.VenueID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err = repo.CreateWithNoOverlap(context.Background(), slot)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestVenueRepository_DeleteCascadeOrder(t *testing.T) {
	mock, _, _, repo := newMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectExec(q("DELETE FROM bookings WHERE slot_id IN (SELECT id FROM time_slots WHERE venue_id = $1)")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(q("DELETE FROM time_slots WHERE venue_id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(q("DELETE FROM venues WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), id))
}

func TestVenueRepository_DeleteRollsBackOnFailure(t *testing.T) {
	mock, _, _, repo := newMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectExec(q("DELETE FROM bookings")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q("DELETE FROM time_slots")).
		WithArgs(id).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestVenueRepository_DeleteUnknown(t *testing.T) {
	mock, _, _, repo := newMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q("FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrVenueNotFound)
}
