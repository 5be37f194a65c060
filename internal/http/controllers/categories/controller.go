package categories

import (
	"net/http"

	dto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/categories"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	svc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/categories"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

// Controller atiende GET /categories: array JSON plano, sin paginar.
type Controller struct {
	service svc.Service
}

func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("categories.FindAll"))

	out, err := c.service.FindAll(ctx)
	if err != nil {
		log.Error("category listing failed", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, dto.FromModels(out))
}
