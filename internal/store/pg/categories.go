package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct{ pool *pgxpool.Pool }

const categoryCols = `id, name, description, image, created_at, updated_at, deleted`

func scanCategory(row pgx.Row) (*repository.Category, error) {
	var c repository.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt, &c.UpdatedAt, &c.Deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]repository.Category, error) {
	const query = `SELECT ` + categoryCols + ` FROM categories WHERE deleted = FALSE ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *categoryRepo) FindByID(ctx context.Context, id int64) (*repository.Category, error) {
	const query = `SELECT ` + categoryCols + ` FROM categories WHERE id = $1 AND deleted = FALSE`
	return scanCategory(r.pool.QueryRow(ctx, query, id))
}

func (r *categoryRepo) Create(ctx context.Context, c *repository.Category) (*repository.Category, error) {
	const query = `
		INSERT INTO categories (name, description, image, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, NOW(), NOW(), FALSE)
		RETURNING ` + categoryCols
	return scanCategory(r.pool.QueryRow(ctx, query, c.Name, c.Description, c.Image))
}

func (r *categoryRepo) Update(ctx context.Context, id int64, c *repository.Category) (*repository.Category, error) {
	const query = `
		UPDATE categories
		SET name = $2, description = $3, image = $4, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
		RETURNING ` + categoryCols
	return scanCategory(r.pool.QueryRow(ctx, query, id, c.Name, c.Description, c.Image))
}

func (r *categoryRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE categories SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) List(ctx context.Context, offset, limit int) ([]repository.Category, error) {
	const query = `SELECT ` + categoryCols + ` FROM categories WHERE deleted = FALSE ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM categories WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
