package repo

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	models "github.com/rogerio-castellano/cart-tracker/internal/models"
)

type PostgresCartRepository struct {
	db *sql.DB
}

func NewPostgresCartRepository(db *sql.DB) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

// AddItem runs the stock check, the cart-line upsert and the stock
// decrement in a single transaction. The product row is locked with
// FOR UPDATE so concurrent adds for the same code serialize on the
// stock check and cannot jointly overdraw it.
func (r *PostgresCartRepository) AddItem(code, quantity int) (models.CartLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CartLine{}, err
	}
	defer tx.Rollback()

	var p models.Product
	err = tx.QueryRowContext(ctx,
		`SELECT code, description, stock, unit_price FROM products WHERE code = $1 FOR UPDATE`,
		code).Scan(&p.Code, &p.Description, &p.Stock, &p.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartLine{}, ErrProductNotFound
	}
	if err != nil {
		return models.CartLine{}, err
	}

	// The product must exist before the quantity is judged.
	if quantity <= 0 {
		return models.CartLine{}, ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return models.CartLine{}, ErrInsufficientStock
	}

	line := models.CartLine{Code: p.Code, Description: p.Description, UnitPrice: p.UnitPrice}
	err = tx.QueryRowContext(ctx,
		`SELECT id, description, quantity, unit_price FROM cart_items WHERE code = $1 FOR UPDATE`,
		code).Scan(&line.ID, &line.Description, &line.Quantity, &line.UnitPrice)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First add for this code: snapshot description and price.
		line.Quantity = quantity
		err = tx.QueryRowContext(ctx,
			`INSERT INTO cart_items (code, description, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`,
			line.Code, line.Description, line.Quantity, line.UnitPrice).Scan(&line.ID)
		if err != nil {
			return models.CartLine{}, err
		}
	case err != nil:
		return models.CartLine{}, err
	default:
		// Merge into the existing line; the snapshot is not refreshed.
		line.Quantity += quantity
		if _, err := tx.ExecContext(ctx,
			`UPDATE cart_items SET quantity = $1 WHERE id = $2`, line.Quantity, line.ID); err != nil {
			return models.CartLine{}, err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - $1 WHERE code = $2`, quantity, code); err != nil {
		return models.CartLine{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO movements (code, delta, reason, created_at) VALUES ($1, $2, $3, $4)`,
		code, -quantity, models.ReasonCartAdd, time.Now().UTC()); err != nil {
		return models.CartLine{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.CartLine{}, err
	}
	return line, nil
}

func (r *PostgresCartRepository) GetAll() ([]models.CartLine, error) {
	query := `SELECT id, code, description, quantity, unit_price FROM cart_items ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.ID, &l.Code, &l.Description, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// RemoveItem deletes the cart line and restores the product stock in
// one transaction. If the referenced product was deleted while the
// line sat in the cart, the removal still succeeds and the skipped
// restoration is logged.
func (r *PostgresCartRepository) RemoveItem(id int) (models.CartLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CartLine{}, err
	}
	defer tx.Rollback()

	var line models.CartLine
	err = tx.QueryRowContext(ctx,
		`SELECT id, code, description, quantity, unit_price FROM cart_items WHERE id = $1 FOR UPDATE`,
		id).Scan(&line.ID, &line.Code, &line.Description, &line.Quantity, &line.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartLine{}, ErrCartItemNotFound
	}
	if err != nil {
		return models.CartLine{}, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id); err != nil {
		return models.CartLine{}, err
	}

	var productCode int
	err = tx.QueryRowContext(ctx,
		`SELECT code FROM products WHERE code = $1 FOR UPDATE`, line.Code).Scan(&productCode)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Orphaned line: the product was deleted while in the cart.
		log.Printf("cart item %d removed but product %d no longer exists; stock not restored", line.ID, line.Code)
	case err != nil:
		return models.CartLine{}, err
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock + $1 WHERE code = $2`, line.Quantity, line.Code); err != nil {
			return models.CartLine{}, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO movements (code, delta, reason, created_at) VALUES ($1, $2, $3, $4)`,
			line.Code, line.Quantity, models.ReasonCartRemove, time.Now().UTC()); err != nil {
			return models.CartLine{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.CartLine{}, err
	}
	return line, nil
}
