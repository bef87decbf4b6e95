package catalog

import (
	"context"
	"database/sql"

	"mazaj-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, image_url, category, available, created_at, updated_at
		FROM products
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.ImageURL, &p.Category, &p.Available,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image_url, category, available, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Category, &p.Available,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, name, description, price, image_url, category, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		p.ID, p.Name, p.Description, p.Price,
		p.ImageURL, p.Category, p.Available,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debug("product created", zap.String("product_id", p.ID))
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, image_url = $4,
		    category = $5, available = $6, updated_at = NOW()
		WHERE id = $7
	`,
		p.Name, p.Description, p.Price, p.ImageURL,
		p.Category, p.Available, p.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	return err
}
