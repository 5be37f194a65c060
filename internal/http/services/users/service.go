// Package users expone el listado administrativo de usuarios.
// El gate por rol ADMIN lo aplica el router, no el service.
package users

import (
	"context"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

type Service interface {
	FindAll(ctx context.Context) ([]repository.User, error)
}

type Deps struct {
	Users repository.UserRepository
}

type service struct {
	deps Deps
}

func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) FindAll(ctx context.Context) ([]repository.User, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("users.FindAll"))

	out, err := s.deps.Users.FindAll(ctx)
	if err != nil {
		log.Error("user listing failed", logger.Err(err))
		return nil, err
	}
	return out, nil
}
