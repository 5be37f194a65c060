package pg

import (
	"context"
	"errors"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct{ pool *pgxpool.Pool }

// Los usuarios siempre se leen con su rol (JOIN roles).
const userCols = `u.id, u.first_name, u.last_name, u.email, u.password_hash, u.photo, u.role_id,
	u.created_at, u.updated_at, u.deleted, r.id, r.name, r.description`

const userFrom = ` FROM users u JOIN roles r ON r.id = u.role_id`

func scanUser(row pgx.Row) (*repository.User, error) {
	var u repository.User
	var role repository.Role
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Photo, &u.RoleID,
		&u.CreatedAt, &u.UpdatedAt, &u.Deleted, &role.ID, &role.Name, &role.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.Role = &role
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *userRepo) FindAll(ctx context.Context) ([]repository.User, error) {
	const query = `SELECT ` + userCols + userFrom + ` WHERE u.deleted = FALSE ORDER BY u.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*repository.User, error) {
	const query = `SELECT ` + userCols + userFrom + ` WHERE u.id = $1 AND u.deleted = FALSE`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	const query = `SELECT ` + userCols + userFrom + ` WHERE LOWER(u.email) = LOWER($1) AND u.deleted = FALSE`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepo) Create(ctx context.Context, u *repository.User) (*repository.User, error) {
	const query = `
		INSERT INTO users (first_name, last_name, email, password_hash, photo, role_id, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), FALSE)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Photo, u.RoleID).Scan(&id)
	if isUniqueViolation(err) {
		return nil, repository.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *userRepo) Update(ctx context.Context, id int64, u *repository.User) (*repository.User, error) {
	const query = `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, password_hash = $5, photo = $6, role_id = $7, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query,
		id, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Photo, u.RoleID)
	if isUniqueViolation(err) {
		return nil, repository.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *userRepo) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE users SET deleted = TRUE, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepo) List(ctx context.Context, offset, limit int) ([]repository.User, error) {
	const query = `SELECT ` + userCols + userFrom + ` WHERE u.deleted = FALSE ORDER BY u.id OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users WHERE deleted = FALSE`
	var n int64
	err := r.pool.QueryRow(ctx, query).Scan(&n)
	return n, err
}

type roleRepo struct{ pool *pgxpool.Pool }

func (r *roleRepo) FindByName(ctx context.Context, name string) (*repository.Role, error) {
	const query = `SELECT id, name, description FROM roles WHERE name = $1`
	var role repository.Role
	err := r.pool.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}
