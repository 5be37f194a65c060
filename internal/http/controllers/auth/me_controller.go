package auth

import (
	"net/http"

	usersdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/users"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	mw "github.com/MezaMaximiliano/OT168-Java-server/internal/http/middlewares"
)

// MeController atiende GET /auth/me. El middleware RequireAuth ya
// validó el token y resolvió el usuario; acá solo se renderiza.
type MeController struct{}

func NewMeController() *MeController {
	return &MeController{}
}

func (c *MeController) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUser(r.Context())
	if user == nil {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, usersdto.FromModel(*user))
}
