// Package auth implementa login, registro y resolución del usuario
// actual. Los errores de negocio salen como sentinels para que el
// controller los traduzca con errors.Is.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/email"
	dto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/auth"
	jwtx "github.com/MezaMaximiliano/OT168-Java-server/internal/jwt"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/security/password"
)

var (
	// ErrInvalidCredentials cubre usuario inexistente y password
	// incorrecto por igual, para no permitir enumeración de emails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch indica password != matchingPassword.
	ErrPasswordMismatch = errors.New("passwords don't match")

	// ErrTokenIssueFailed indica fallo al firmar el token.
	ErrTokenIssueFailed = errors.New("failed to issue token")
)

// ValidationError agrupa los mensajes de violación de campos de un
// registro. El controller lo extrae con errors.As.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Service expone los casos de uso de autenticación.
type Service interface {
	// Login verifica credenciales y devuelve un token firmado.
	Login(ctx context.Context, in dto.LoginRequest) (string, error)

	// Register crea el usuario con rol USER y devuelve el usuario
	// persistido junto con un token recién emitido.
	Register(ctx context.Context, in dto.RegisterRequest) (*repository.User, string, error)

	// Me resuelve el usuario actual por email. ErrNotFound si ya no existe.
	Me(ctx context.Context, email string) (*repository.User, error)
}

// Deps contiene las dependencias del auth service.
type Deps struct {
	Users  repository.UserRepository
	Roles  repository.RoleRepository
	Issuer *jwtx.Issuer

	// Mail puede ser nil: el email de bienvenida es best-effort.
	Mail email.Sender
}

type service struct {
	deps Deps
}

func New(deps Deps) Service {
	return &service{deps: deps}
}

func (s *service) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("auth.Login"))

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.deps.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		if !repository.IsNotFound(err) {
			log.Error("user lookup failed", logger.Err(err))
		}
		return "", ErrInvalidCredentials
	}

	if !password.Verify(in.Password, user.PasswordHash) {
		log.Debug("password check failed", logger.UserID(user.ID))
		return "", ErrInvalidCredentials
	}

	token, _, err := s.deps.Issuer.IssueAccess(user.Email, roleName(user))
	if err != nil {
		log.Error("token signing failed", logger.Err(err))
		return "", ErrTokenIssueFailed
	}

	log.Info("login successful", logger.UserID(user.ID))
	return token, nil
}

func (s *service) Register(ctx context.Context, in dto.RegisterRequest) (*repository.User, string, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("auth.Register"))

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	// El orden de los chequeos es contrato: email duplicado primero,
	// después mismatch de passwords, después campos requeridos.
	if in.Email != "" {
		if _, err := s.deps.Users.FindByEmail(ctx, in.Email); err == nil {
			return nil, "", repository.ErrEmailTaken
		} else if !repository.IsNotFound(err) {
			log.Error("email lookup failed", logger.Err(err))
			return nil, "", err
		}
	}

	if in.Password != in.MatchingPassword && in.Password != "" && in.MatchingPassword != "" {
		return nil, "", ErrPasswordMismatch
	}

	if msgs := in.Validate(); len(msgs) > 0 {
		return nil, "", &ValidationError{Messages: msgs}
	}

	hash, err := password.Hash(password.Default, in.Password)
	if err != nil {
		log.Error("password hashing failed", logger.Err(err))
		return nil, "", err
	}

	role, err := s.deps.Roles.FindByName(ctx, repository.RoleUser)
	if err != nil {
		log.Error("default role missing", logger.Err(err))
		return nil, "", err
	}

	user, err := s.deps.Users.Create(ctx, &repository.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Photo:        in.Photo,
		RoleID:       role.ID,
	})
	if err != nil {
		if !errors.Is(err, repository.ErrEmailTaken) {
			log.Error("user creation failed", logger.Err(err))
		}
		return nil, "", err
	}

	token, _, err := s.deps.Issuer.IssueAccess(user.Email, roleName(user))
	if err != nil {
		log.Error("token signing failed", logger.Err(err))
		return nil, "", ErrTokenIssueFailed
	}

	// Bienvenida best-effort: un SMTP caído no voltea el registro.
	if err := email.SendWelcome(s.deps.Mail, user.Email, user.FirstName); err != nil {
		log.Warn("welcome email failed", logger.Err(err))
	}

	log.Info("user registered", logger.UserID(user.ID))
	return user, token, nil
}

func (s *service) Me(ctx context.Context, email string) (*repository.User, error) {
	return s.deps.Users.FindByEmail(ctx, email)
}

func roleName(u *repository.User) string {
	if u.Role != nil {
		return u.Role.Name
	}
	return repository.RoleUser
}
