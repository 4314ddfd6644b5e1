package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/MiroBartanus/business-days-sk/internal/domain/models"
)

// CustomHolidayRepository defines the persistence contract for user-added holidays.
type CustomHolidayRepository interface {
	ListCustomHolidays(ctx context.Context) ([]models.CustomHoliday, error)
	InsertCustomHoliday(ctx context.Context, h models.CustomHoliday) (models.CustomHoliday, error)
	InsertCustomHolidaysBatch(ctx context.Context, hs []models.CustomHoliday) error
	Ping(ctx context.Context) error
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a CustomHolidayRepository backed by PostgreSQL.
func NewPostgresRepository(db *sql.DB) CustomHolidayRepository {
	return &postgresRepository{db: db}
}

// ListCustomHolidays returns every stored custom holiday in insertion order.
func (r *postgresRepository) ListCustomHolidays(ctx context.Context) ([]models.CustomHoliday, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, day, month, name, created_at FROM custom_holidays ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.CustomHoliday
	for rows.Next() {
		var h models.CustomHoliday
		if err := rows.Scan(&h.ID, &h.Day, &h.Month, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// InsertCustomHoliday stores one holiday and returns it with ID and timestamp.
// Duplicated day/month pairs are allowed.
func (r *postgresRepository) InsertCustomHoliday(ctx context.Context, h models.CustomHoliday) (models.CustomHoliday, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO custom_holidays (day, month, name) VALUES ($1, $2, $3) RETURNING id, created_at`,
		h.Day, h.Month, h.Name,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return models.CustomHoliday{}, err
	}
	return h, nil
}

// InsertCustomHolidaysBatch inserts many holidays in a single transaction using COPY.
func (r *postgresRepository) InsertCustomHolidaysBatch(ctx context.Context, hs []models.CustomHoliday) error {
	if len(hs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("custom_holidays", "day", "month", "name"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, h := range hs {
		if _, err := stmt.ExecContext(ctx, h.Day, h.Month, h.Name); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	// flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Ping checks database connectivity.
func (r *postgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
