package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type SportRepository struct {
	db *sql.DB
}

func NewSportRepository(db *sql.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) ExistsBySportID(ctx context.Context, sportID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM sports WHERE sport_id = $1)`, sportID).Scan(&exists)
	if err != nil {
		return false, domain.StorageError("check sport", err)
	}

	return exists, nil
}

func (r *SportRepository) Create(ctx context.Context, sport *domain.Sport) error {
	query := `
	INSERT INTO sports (sport_id, sport_code, sport_name)
	VALUES ($1, $2, $3)
	RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, sport.SportID, sport.SportCode, sport.SportName).
		Scan(&sport.ID, &sport.CreatedAt)
	if err != nil {
		if code, _ := pqViolation(err); code == codeUniqueViolation {
			return fmt.Errorf("%w: sport %s already exists", domain.ErrConflict, sport.SportID)
		}
		return domain.StorageError("insert sport", err)
	}

	return nil
}

func (r *SportRepository) FindByName(ctx context.Context, name string) (*domain.Sport, error) {
	query := `
	SELECT id, sport_id, sport_code, sport_name, created_at
	FROM sports
	WHERE LOWER(sport_name) = LOWER($1)
	`

	var sp domain.Sport
	err := r.db.QueryRowContext(ctx, query, name).Scan(&sp.ID, &sp.SportID, &sp.SportCode, &sp.SportName, &sp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSportNotFound
		}
		return nil, domain.StorageError("find sport", err)
	}

	return &sp, nil
}

func (r *SportRepository) List(ctx context.Context) ([]domain.Sport, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, sport_id, sport_code, sport_name, created_at FROM sports ORDER BY id`)
	if err != nil {
		return nil, domain.StorageError("list sports", err)
	}

	defer rows.Close()

	sports := make([]domain.Sport, 0)
	for rows.Next() {
		var sp domain.Sport
		if err := rows.Scan(&sp.ID, &sp.SportID, &sp.SportCode, &sp.SportName, &sp.CreatedAt); err != nil {
			return nil, domain.StorageError("scan sport", err)
		}

		sports = append(sports, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list sports", err)
	}

	return sports, nil
}
