package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type activityRepo struct{ pool *pgxpool.Pool }

const activityCols = `id, name, content, image, created_at, updated_at, deleted`

func scanActivity(row pgx.Row) (*repository.Activity, error) {
	var a repository.Activity
	err := row.Scan(&a.ID, &a.Name, &a.Content, &a.Image, &a.CreatedAt, &a.UpdatedAt, &a.Deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) FindAll(ctx context.Context) ([]repository.Activity, error) {
	const query = `SELECT ` + activityCols + ` FROM activities WHERE deleted = FALSE ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *activityRepo) FindByID(ctx context.Context, id int64) (*repository.Activity, error) {
	const query = `SELECT ` + activityCols + ` FROM activities WHERE id = $1 AND deleted = FALSE`
	return scanActivity(r.pool.QueryRow(ctx, query, id))
}

func (r *activityRepo) Create(ctx context.Context, a *repository.Activity) (*repository.Activity, error) {
	const query = `
		INSERT INTO activities (name, content, image, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, NOW(), NOW(), FALSE)
		RETURNING ` + activityCols
	return scanActivity(r.pool.QueryRow(ctx, query, a.Name, a.Content, a.Image))
}

func (r *activityRepo) Update(ctx context.Context, id int64, a *repository.Activity) (*repository.Activity, error) {
	const query = `
		UPDATE activities
		SET name = $2, content = $3, image = $4, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
		RETURNING ` + activityCols
	return scanActivity(r.pool.QueryRow(ctx, query, id, a.Name, a.Content, a.Image))
}

func (r *activityRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE activities SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *activityRepo) List(ctx context.Context, offset, limit int) ([]repository.Activity, error) {
	const query = `SELECT ` + activityCols + ` FROM activities WHERE deleted = FALSE ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *activityRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM activities WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
