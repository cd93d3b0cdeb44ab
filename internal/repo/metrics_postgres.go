package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(stock), 0) FROM products`).
		Scan(&m.TotalProducts, &m.TotalStock); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE stock = 0`).
		Scan(&m.OutOfStockCount); err != nil {
		return Metrics{}, err
	}
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * unit_price), 0)
		FROM cart_items
	`).Scan(&m.CartLines, &m.CartUnits, &m.CartValue); err != nil {
		return Metrics{}, err
	}

	return m, nil
}
