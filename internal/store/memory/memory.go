// Package memory implementa repository.Store sobre slices en proceso.
// Respeta la misma semántica de soft-delete que pg: una fila marcada
// se comporta como inexistente. Pensado para desarrollo y tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

// rowMeta expone punteros a los campos comunes de un registro para que
// table[M] pueda administrarlos sin conocer el tipo concreto.
type rowMeta struct {
	id        *int64
	createdAt *time.Time
	updatedAt *time.Time
	deleted   *bool
}

type table[M any] struct {
	mu     sync.Mutex
	rows   []M
	nextID int64

	meta  func(*M) rowMeta
	apply func(dst, src *M) // copia solo los campos de negocio
}

func newTable[M any](meta func(*M) rowMeta, apply func(dst, src *M)) *table[M] {
	return &table[M]{nextID: 1, meta: meta, apply: apply}
}

func (t *table[M]) FindAll(_ context.Context) ([]M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []M
	for i := range t.rows {
		if !*t.meta(&t.rows[i]).deleted {
			out = append(out, t.rows[i])
		}
	}
	return out, nil
}

func (t *table[M]) FindByID(_ context.Context, id int64) (*M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		m := t.meta(&t.rows[i])
		if *m.id == id && !*m.deleted {
			cp := t.rows[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *table[M]) Create(_ context.Context, in *M) (*M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := *in
	m := t.meta(&row)
	now := time.Now().UTC()
	*m.id = t.nextID
	*m.createdAt = now
	*m.updatedAt = now
	*m.deleted = false
	t.nextID++
	t.rows = append(t.rows, row)

	cp := row
	return &cp, nil
}

func (t *table[M]) Update(_ context.Context, id int64, in *M) (*M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		m := t.meta(&t.rows[i])
		if *m.id == id && !*m.deleted {
			t.apply(&t.rows[i], in)
			*m.updatedAt = time.Now().UTC()
			cp := t.rows[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *table[M]) SoftDelete(_ context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		m := t.meta(&t.rows[i])
		if *m.id == id && !*m.deleted {
			*m.deleted = true
			*m.updatedAt = time.Now().UTC()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (t *table[M]) List(ctx context.Context, offset, limit int) ([]M, error) {
	all, err := t.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]M, end-offset)
	copy(out, all[offset:end])
	return out, nil
}

func (t *table[M]) Count(ctx context.Context) (int64, error) {
	all, err := t.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

// Store implementa repository.Store en memoria. Viene sembrado con los
// roles USER y ADMIN, igual que la migración inicial de postgres.
type Store struct {
	members      *table[repository.Member]
	testimonials *table[repository.Testimonial]
	activities   *table[repository.Activity]
	news         *table[repository.News]
	categories   *table[repository.Category]
	users        *userTable
	roles        *roleTable
}

func New() *Store {
	roles := &roleTable{rows: []repository.Role{
		{ID: 1, Name: repository.RoleUser, Description: "Usuario estándar"},
		{ID: 2, Name: repository.RoleAdmin, Description: "Administrador"},
	}}

	s := &Store{
		members: newTable(
			func(m *repository.Member) rowMeta {
				return rowMeta{&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Deleted}
			},
			func(dst, src *repository.Member) {
				dst.Name = src.Name
				dst.FacebookURL = src.FacebookURL
				dst.InstagramURL = src.InstagramURL
				dst.LinkedinURL = src.LinkedinURL
				dst.Image = src.Image
				dst.Description = src.Description
			},
		),
		testimonials: newTable(
			func(t *repository.Testimonial) rowMeta {
				return rowMeta{&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Deleted}
			},
			func(dst, src *repository.Testimonial) {
				dst.Name = src.Name
				dst.Image = src.Image
				dst.Content = src.Content
			},
		),
		activities: newTable(
			func(a *repository.Activity) rowMeta {
				return rowMeta{&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Deleted}
			},
			func(dst, src *repository.Activity) {
				dst.Name = src.Name
				dst.Content = src.Content
				dst.Image = src.Image
			},
		),
		news: newTable(
			func(n *repository.News) rowMeta {
				return rowMeta{&n.ID, &n.CreatedAt, &n.UpdatedAt, &n.Deleted}
			},
			func(dst, src *repository.News) {
				dst.Name = src.Name
				dst.Content = src.Content
				dst.Image = src.Image
			},
		),
		categories: newTable(
			func(c *repository.Category) rowMeta {
				return rowMeta{&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Deleted}
			},
			func(dst, src *repository.Category) {
				dst.Name = src.Name
				dst.Description = src.Description
				dst.Image = src.Image
			},
		),
		roles: roles,
	}
	s.users = &userTable{
		table: newTable(
			func(u *repository.User) rowMeta {
				return rowMeta{&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Deleted}
			},
			func(dst, src *repository.User) {
				dst.FirstName = src.FirstName
				dst.LastName = src.LastName
				dst.Email = src.Email
				dst.PasswordHash = src.PasswordHash
				dst.Photo = src.Photo
				dst.RoleID = src.RoleID
			},
		),
		roles: roles,
	}
	return s
}

func (s *Store) Members() repository.Crud[repository.Member]           { return s.members }
func (s *Store) Testimonials() repository.Crud[repository.Testimonial] { return s.testimonials }
func (s *Store) Activities() repository.Crud[repository.Activity]      { return s.activities }
func (s *Store) News() repository.Crud[repository.News]                { return s.news }
func (s *Store) Categories() repository.Crud[repository.Category]      { return s.categories }
func (s *Store) Users() repository.UserRepository                      { return s.users }
func (s *Store) Roles() repository.RoleRepository                      { return s.roles }

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close()                     {}

// userTable agrega a table[User] la unicidad de email y el join con roles.
type userTable struct {
	*table[repository.User]
	roles *roleTable
}

func (t *userTable) withRole(u *repository.User) *repository.User {
	if u == nil {
		return nil
	}
	if r, err := t.roles.findByID(u.RoleID); err == nil {
		u.Role = r
	}
	return u
}

func (t *userTable) emailInUse(email string, excludeID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		u := &t.rows[i]
		if u.ID != excludeID && !u.Deleted && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (t *userTable) Create(ctx context.Context, u *repository.User) (*repository.User, error) {
	if t.emailInUse(u.Email, 0) {
		return nil, repository.ErrEmailTaken
	}
	out, err := t.table.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	return t.withRole(out), nil
}

func (t *userTable) Update(ctx context.Context, id int64, u *repository.User) (*repository.User, error) {
	if t.emailInUse(u.Email, id) {
		return nil, repository.ErrEmailTaken
	}
	out, err := t.table.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}
	return t.withRole(out), nil
}

func (t *userTable) FindByID(ctx context.Context, id int64) (*repository.User, error) {
	u, err := t.table.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.withRole(u), nil
}

func (t *userTable) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		u := t.rows[i]
		if !u.Deleted && strings.EqualFold(u.Email, email) {
			return t.withRole(&u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *userTable) FindAll(ctx context.Context) ([]repository.User, error) {
	all, err := t.table.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		t.withRole(&all[i])
	}
	return all, nil
}

func (t *userTable) List(ctx context.Context, offset, limit int) ([]repository.User, error) {
	out, err := t.table.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	for i := range out {
		t.withRole(&out[i])
	}
	return out, nil
}

type roleTable struct {
	mu   sync.Mutex
	rows []repository.Role
}

func (t *roleTable) FindByName(_ context.Context, name string) (*repository.Role, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.rows[i].Name == name {
			cp := t.rows[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (t *roleTable) findByID(id int64) (*repository.Role, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.rows[i].ID == id {
			cp := t.rows[i]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}
