// Package crud implementa los casos de uso compartidos por los recursos
// de contenido (members, testimonials, activities, news). La lógica es
// idéntica para todos, así que el service es genérico sobre el modelo.
package crud

import (
	"context"
	"errors"
	"math"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

// ErrInvalidPage indica un número de página menor a 1.
var ErrInvalidPage = errors.New("page index must not be less than one")

// Service expone los casos de uso de un recurso de contenido.
type Service[M any] interface {
	Save(ctx context.Context, m M) (*M, error)
	Update(ctx context.Context, id int64, m M) (*M, error)
	Delete(ctx context.Context, id int64) error

	// FindAll devuelve la página pedida (1-indexada). Una página más
	// allá del final devuelve items vacíos sin link next, no un error.
	FindAll(ctx context.Context, page int) (*repository.Page[M], error)
}

// Deps contiene las dependencias del service genérico.
type Deps[M any] struct {
	Repo repository.Crud[M]

	// PageSize es el tamaño de ventana de paginación (config, no request).
	PageSize int

	// Normalize se aplica antes de persistir (trim de nombres). nil = no-op.
	Normalize func(*M)
}

type service[M any] struct {
	deps Deps[M]
}

func New[M any](deps Deps[M]) Service[M] {
	if deps.PageSize <= 0 {
		deps.PageSize = 10
	}
	return &service[M]{deps: deps}
}

func (s *service[M]) normalize(m *M) {
	if s.deps.Normalize != nil {
		s.deps.Normalize(m)
	}
}

func (s *service[M]) Save(ctx context.Context, m M) (*M, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("crud.Save"))

	s.normalize(&m)
	out, err := s.deps.Repo.Create(ctx, &m)
	if err != nil {
		log.Error("create failed", logger.Err(err))
		return nil, err
	}
	return out, nil
}

func (s *service[M]) Update(ctx context.Context, id int64, m M) (*M, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("crud.Update"), logger.EntityID(id))

	s.normalize(&m)
	out, err := s.deps.Repo.Update(ctx, id, &m)
	if err != nil {
		if !repository.IsNotFound(err) {
			log.Error("update failed", logger.Err(err))
		}
		return nil, err
	}
	return out, nil
}

func (s *service[M]) Delete(ctx context.Context, id int64) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("crud.Delete"), logger.EntityID(id))

	if err := s.deps.Repo.SoftDelete(ctx, id); err != nil {
		if !repository.IsNotFound(err) {
			log.Error("delete failed", logger.Err(err))
		}
		return err
	}
	return nil
}

func (s *service[M]) FindAll(ctx context.Context, page int) (*repository.Page[M], error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("crud.FindAll"), logger.PageNum(page))

	if page < 1 {
		return nil, ErrInvalidPage
	}

	size := s.deps.PageSize

	// page*size desbordaría el offset; una página así queda más allá
	// del final de cualquier dataset real.
	if page > math.MaxInt/size {
		prev := page - 1
		return &repository.Page[M]{Items: []M{}, Previous: &prev}, nil
	}
	offset := (page - 1) * size

	items, err := s.deps.Repo.List(ctx, offset, size)
	if err != nil {
		log.Error("list failed", logger.Err(err))
		return nil, err
	}
	total, err := s.deps.Repo.Count(ctx)
	if err != nil {
		log.Error("count failed", logger.Err(err))
		return nil, err
	}

	out := &repository.Page[M]{Items: items}
	if page > 1 {
		prev := page - 1
		out.Previous = &prev
	}
	if int64(page*size) < total {
		next := page + 1
		out.Next = &next
	}
	return out, nil
}
