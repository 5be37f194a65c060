package auth

import (
	"errors"
	"net/http"

	dto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/auth"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	svc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/auth"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

// LoginController atiende POST /auth/login.
type LoginController struct {
	service svc.Service
}

func NewLoginController(service svc.Service) *LoginController {
	return &LoginController{service: service}
}

func (c *LoginController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("LoginController.Login"))

	var req dto.LoginRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	token, err := c.service.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrInvalidCredentials):
			httperrors.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		default:
			log.Error("login failed", logger.Err(err))
			httperrors.WriteError(w, httperrors.ErrInternalServerError)
		}
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, dto.LoginResponse{JWT: token})
}
