package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var DB *sql.DB

func Connect(dbUrl string) (*sql.DB, error) {
	if dbUrl == "" {
		return nil, fmt.Errorf("database URL not configured")
	}

	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	return db, nil
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			code INT PRIMARY KEY,
			description TEXT NOT NULL,
			stock INT NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			code INT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS movements (
			id SERIAL PRIMARY KEY,
			code INT NOT NULL,
			delta INT NOT NULL,
			reason TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
