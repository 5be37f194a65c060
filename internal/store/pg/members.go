package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type memberRepo struct{ pool *pgxpool.Pool }

const memberCols = `id, name, facebook_url, instagram_url, linkedin_url, image, description, created_at, updated_at, deleted`

func scanMember(row pgx.Row) (*repository.Member, error) {
	var m repository.Member
	err := row.Scan(&m.ID, &m.Name, &m.FacebookURL, &m.InstagramURL, &m.LinkedinURL,
		&m.Image, &m.Description, &m.CreatedAt, &m.UpdatedAt, &m.Deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) FindAll(ctx context.Context) ([]repository.Member, error) {
	const query = `SELECT ` + memberCols + ` FROM members WHERE deleted = FALSE ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *memberRepo) FindByID(ctx context.Context, id int64) (*repository.Member, error) {
	const query = `SELECT ` + memberCols + ` FROM members WHERE id = $1 AND deleted = FALSE`
	return scanMember(r.pool.QueryRow(ctx, query, id))
}

func (r *memberRepo) Create(ctx context.Context, m *repository.Member) (*repository.Member, error) {
	const query = `
		INSERT INTO members (name, facebook_url, instagram_url, linkedin_url, image, description, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), FALSE)
		RETURNING ` + memberCols
	return scanMember(r.pool.QueryRow(ctx, query,
		m.Name, m.FacebookURL, m.InstagramURL, m.LinkedinURL, m.Image, m.Description))
}

func (r *memberRepo) Update(ctx context.Context, id int64, m *repository.Member) (*repository.Member, error) {
	const query = `
		UPDATE members
		SET name = $2, facebook_url = $3, instagram_url = $4, linkedin_url = $5, image = $6, description = $7, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE
		RETURNING ` + memberCols
	return scanMember(r.pool.QueryRow(ctx, query,
		id, m.Name, m.FacebookURL, m.InstagramURL, m.LinkedinURL, m.Image, m.Description))
}

func (r *memberRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE members SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *memberRepo) List(ctx context.Context, offset, limit int) ([]repository.Member, error) {
	const query = `SELECT ` + memberCols + ` FROM members WHERE deleted = FALSE ORDER BY id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *memberRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM members WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}
