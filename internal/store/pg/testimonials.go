package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type testimonialRepo struct{ pool *pgxpool.Pool }

const testimonialCols = `id, name, image, content, created_at, updated_at, deleted`

func scanTestimonial(row pgx.Row) (*repository.Testimonial, error) {
	var t repository.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Image, &t.Content, &t.CreatedAt, &t.UpdatedAt, &t.Deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepo) FindAll(ctx context.Context) ([]repository.Testimonial, error) {
	const query = `SELECT ` + testimonialCols + ` FROM testimonials WHERE deleted = FALSE ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *testimonialRepo) FindByID(ctx context.Context, id int64) (*repository.Testimonial, error) {
	const query = `SELECT ` + testimonialCols + ` FROM testimonials WHERE id = $1 AND deleted = FALSE`
	return scanTestimonial(r.pool.QueryRow(ctx, query, id))
}

func (r *testimonialRepo) Create(ctx context.Context, t *repository.Testimonial) (*repository.Testimonial, error) {
	const query = `
		INSERT INTO testimonials (name, image, content, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, NOW(), NOW(), FALSE)
		RETURNING ` + testimonialCols
	return scanTestimonial(r.pool.QueryRow(ctx, query, t.Name, t.Image, t.Content))
}

func (r *testimonialRepo) Update(ctx context.Context, id int64, t *repository.Testimonial) (*repository.Testimonial, error) {
	const query = `
		UPDATE testimonials
		SET name = $2, image = $3, content = $4, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
		RETURNING ` + testimonialCols
	return scanTestimonial(r.pool.QueryRow(ctx, query, id, t.Name, t.Image, t.Content))
}

func (r *testimonialRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE testimonials SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *testimonialRepo) List(ctx context.Context, offset, limit int) ([]repository.Testimonial, error) {
	const query = `SELECT ` + testimonialCols + ` FROM testimonials WHERE deleted = FALSE ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *testimonialRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM testimonials WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
