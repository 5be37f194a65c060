package auth

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	dto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/auth"
	usersdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/users"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	svc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/auth"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
	"go.uber.org/zap"
)

const maxBodySize = 64 * 1024 // 64KB

// RegisterController atiende POST /auth/register.
type RegisterController struct {
	service svc.Service
}

func NewRegisterController(service svc.Service) *RegisterController {
	return &RegisterController{service: service}
}

func (c *RegisterController) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("RegisterController.Register"))

	var req dto.RegisterRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	user, token, err := c.service.Register(ctx, req)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	// El token del usuario recién creado viaja en el header Authorization;
	// los clientes existentes lo leen de ahí, no del body.
	w.Header().Set("Authorization", token)
	httperrors.WriteJSON(w, http.StatusCreated, usersdto.FromModel(*user))
}

func (c *RegisterController) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	var verr *svc.ValidationError
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		httperrors.WriteMessage(w, http.StatusBadRequest, "Email already exists.")
	case errors.Is(err, svc.ErrPasswordMismatch):
		httperrors.WriteMessage(w, http.StatusBadRequest, "The passwords don't match.")
	case errors.As(err, &verr):
		httperrors.WriteViolations(w, verr.Messages)
	default:
		log.Error("registration failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}

// decodeStrict decodifica el body rechazando campos desconocidos y
// contenido extra después del JSON.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		httperrors.WriteError(w, httperrors.ErrInvalidJSON)
		return false
	}
	return true
}
