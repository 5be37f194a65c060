package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type newsRepo struct{ pool *pgxpool.Pool }

// category_id se persiste pero ningún caso de uso lo setea todavía.
const newsCols = `id, name, content, image, category_id, created_at, updated_at, deleted`

func scanNews(row pgx.Row) (*repository.News, error) {
	var n repository.News
	err := row.Scan(&n.ID, &n.Name, &n.Content, &n.Image, &n.CategoryID, &n.CreatedAt, &n.UpdatedAt, &n.Deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *newsRepo) FindAll(ctx context.Context) ([]repository.News, error) {
	const query = `SELECT ` + newsCols + ` FROM news WHERE deleted = FALSE ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *newsRepo) FindByID(ctx context.Context, id int64) (*repository.News, error) {
	const query = `SELECT ` + newsCols + ` FROM news WHERE id = $1 AND deleted = FALSE`
	return scanNews(r.pool.QueryRow(ctx, query, id))
}

func (r *newsRepo) Create(ctx context.Context, n *repository.News) (*repository.News, error) {
	const query = `
		INSERT INTO news (name, content, image, category_id, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), FALSE)
		RETURNING ` + newsCols
	return scanNews(r.pool.QueryRow(ctx, query, n.Name, n.Content, n.Image, n.CategoryID))
}

func (r *newsRepo) Update(ctx context.Context, id int64, n *repository.News) (*repository.News, error) {
	const query = `
		UPDATE news
		SET name = $2, content = $3, image = $4, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
		RETURNING ` + newsCols
	return scanNews(r.pool.QueryRow(ctx, query, id, n.Name, n.Content, n.Image))
}

func (r *newsRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE news SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *newsRepo) List(ctx context.Context, offset, limit int) ([]repository.News, error) {
	const query = `SELECT ` + newsCols + ` FROM news WHERE deleted = FALSE ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func (r *newsRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM news WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
