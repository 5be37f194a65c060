// Package pg implementa los repositorios sobre PostgreSQL (pgxpool).
//
// Todas las lecturas filtran deleted = FALSE: una fila soft-deleted se
// comporta como inexistente. Los timestamps los asigna la base (NOW()).
package pg

import (
	"context"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct{ pool *pgxpool.Pool }

type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		pcfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	// Mapear MaxIdleConns → MinConns (pgxpool)
	if cfg.MaxIdleConns > 0 {
		pcfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != "" {
		if d, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
			pcfg.MaxConnLifetime = d
			pcfg.MaxConnIdleTime = d
		}
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close cierra el pool subyacente (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Pool expone el pool interno (migraciones).
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

func (s *Store) Members() repository.Crud[repository.Member]           { return &memberRepo{pool: s.pool} }
func (s *Store) Testimonials() repository.Crud[repository.Testimonial] { return &testimonialRepo{pool: s.pool} }
func (s *Store) Activities() repository.Crud[repository.Activity]      { return &activityRepo{pool: s.pool} }
func (s *Store) News() repository.Crud[repository.News]                { return &newsRepo{pool: s.pool} }
func (s *Store) Categories() repository.Crud[repository.Category]      { return &categoryRepo{pool: s.pool} }
func (s *Store) Users() repository.UserRepository                      { return &userRepo{pool: s.pool} }
func (s *Store) Roles() repository.RoleRepository                      { return &roleRepo{pool: s.pool} }
