package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/cart-tracker/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement.
func (r *PostgresMovementRepository) Log(code, delta int, reason string) error {
	query := `INSERT INTO movements (code, delta, reason, created_at) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, code, delta, reason, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// GetByCode returns all movements for a product, newest first.
func (r *PostgresMovementRepository) GetByCode(code int) ([]models.Movement, error) {
	query := `SELECT id, code, delta, reason, created_at FROM movements WHERE code = $1 ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.Code, &m.Delta, &m.Reason, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
