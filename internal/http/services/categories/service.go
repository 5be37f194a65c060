// Package categories sirve el listado de categorías, data de referencia
// que cambia poco: el resultado se cachea con TTL corto.
package categories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/cache"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

const cacheKey = "categories:list"

// Service expone el listado de categorías.
type Service interface {
	FindAll(ctx context.Context) ([]repository.Category, error)
}

// Deps contiene las dependencias del service.
type Deps struct {
	Repo repository.Crud[repository.Category]

	// Cache puede ser nil: sin cache cada listado va al storage.
	Cache cache.Client
	TTL   time.Duration
}

type service struct {
	deps Deps
}

func New(deps Deps) Service {
	if deps.TTL <= 0 {
		deps.TTL = time.Minute
	}
	return &service{deps: deps}
}

func (s *service) FindAll(ctx context.Context) ([]repository.Category, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("categories.FindAll"))

	if s.deps.Cache != nil {
		if raw, ok := s.deps.Cache.Get(cacheKey); ok {
			var out []repository.Category
			if err := json.Unmarshal(raw, &out); err == nil {
				log.Debug("categories served from cache")
				return out, nil
			}
			// Entrada corrupta: descartarla y recargar del storage.
			s.deps.Cache.Delete(cacheKey)
		}
	}

	out, err := s.deps.Repo.FindAll(ctx)
	if err != nil {
		log.Error("categories lookup failed", logger.Err(err))
		return nil, err
	}

	if s.deps.Cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			s.deps.Cache.Set(cacheKey, raw, s.deps.TTL)
		}
	}
	return out, nil
}
