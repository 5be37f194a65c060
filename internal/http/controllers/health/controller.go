package health

import (
	"net/http"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

type response struct {
	Status string `json:"status"`
}

// Controller atiende GET /health: liveness + ping al storage.
type Controller struct {
	store repository.Store
}

func New(store repository.Store) *Controller {
	return &Controller{store: store}
}

func (c *Controller) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.store.Ping(r.Context()); err != nil {
		logger.From(r.Context()).Error("storage ping failed", logger.Err(err))
		httperrors.WriteJSON(w, http.StatusServiceUnavailable, response{Status: "degraded"})
		return
	}
	httperrors.WriteJSON(w, http.StatusOK, response{Status: "ok"})
}
