package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mazaj-be/internal/cart"
	"mazaj-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	ListByDate(ctx context.Context, userID *string) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert persists the order. The line items travel as a JSON snapshot;
// order_date is stamped by the database and written back onto the order.
func (r *repository) Insert(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			order_id, items, total_price, latitude, longitude,
			address_notes, payment_method, status, user_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING order_date
	`,
		o.OrderID,
		items,
		o.TotalPrice,
		o.DeliveryLocation.Latitude,
		o.DeliveryLocation.Longitude,
		o.AddressNotes,
		o.PaymentMethod,
		o.Status,
		o.UserID,
	).Scan(&o.OrderDate)
	if err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order persisted",
		zap.String("order_id", o.OrderID),
		zap.Float64("total", o.TotalPrice),
	)
	return nil
}

// ListByDate returns orders most recent first, optionally filtered by
// user.
func (r *repository) ListByDate(ctx context.Context, userID *string) ([]Order, error) {
	query := `
		SELECT order_id, items, total_price, latitude, longitude,
		       address_notes, payment_method, status, user_id, order_date
		FROM orders
	`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY order_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var (
			o     Order
			items []byte
		)
		if err := rows.Scan(
			&o.OrderID, &items, &o.TotalPrice,
			&o.DeliveryLocation.Latitude, &o.DeliveryLocation.Longitude,
			&o.AddressNotes, &o.PaymentMethod, &o.Status,
			&o.UserID, &o.OrderDate,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		if o.Items == nil {
			o.Items = []cart.Line{}
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// UpdateStatus overwrites the status field only. Any known status may
// replace any other; the driving system is external and authoritative.
func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE order_id = $2
	`, status, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
