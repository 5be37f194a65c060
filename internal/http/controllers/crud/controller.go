// Package crud implementa el controller HTTP compartido por los
// recursos de contenido. Cada recurso lo instancia con sus funciones
// de mapeo DTO<->modelo; la semántica HTTP es idéntica para todos.
package crud

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/pagination"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	svc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/crud"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodySize = 64 * 1024 // 64KB

// Mensajes de negocio que los clientes existentes matchean literal.
const (
	msgNotFound    = "The ID doesn't exist."
	msgIDMismatch  = "URL id doesn't match body id."
	msgInvalidPage = "Page index must not be less than one."
)

// Hooks define el mapeo DTO<->modelo de un recurso concreto.
type Hooks[M, Req, Resp any] struct {
	// Resource es el segmento de URL del recurso ("members", "news"...).
	Resource string

	RequestID  func(Req) int64
	Validate   func(Req) []string
	ToModel    func(Req) M
	FromModel  func(M) Resp
	FromModels func([]M) []Resp
}

// Controller atiende POST, PUT /{id}, DELETE /{id} y GET ?page=n.
type Controller[M, Req, Resp any] struct {
	service svc.Service[M]
	hooks   Hooks[M, Req, Resp]
}

func New[M, Req, Resp any](service svc.Service[M], hooks Hooks[M, Req, Resp]) *Controller[M, Req, Resp] {
	return &Controller[M, Req, Resp]{service: service, hooks: hooks}
}

// Resource devuelve el segmento de URL del recurso.
func (c *Controller[M, Req, Resp]) Resource() string { return c.hooks.Resource }

func (c *Controller[M, Req, Resp]) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op(c.hooks.Resource+".Create"))

	var req Req
	if !decodeStrict(w, r, &req) {
		return
	}
	if msgs := c.hooks.Validate(req); len(msgs) > 0 {
		httperrors.WriteViolations(w, msgs)
		return
	}

	out, err := c.service.Save(ctx, c.hooks.ToModel(req))
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	httperrors.WriteJSON(w, http.StatusCreated, c.hooks.FromModel(*out))
}

func (c *Controller[M, Req, Resp]) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op(c.hooks.Resource+".Update"))

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req Req
	if !decodeStrict(w, r, &req) {
		return
	}
	if bodyID := c.hooks.RequestID(req); bodyID != 0 && bodyID != id {
		httperrors.WriteMessage(w, http.StatusBadRequest, msgIDMismatch)
		return
	}
	if msgs := c.hooks.Validate(req); len(msgs) > 0 {
		httperrors.WriteViolations(w, msgs)
		return
	}

	out, err := c.service.Update(ctx, id, c.hooks.ToModel(req))
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	httperrors.WriteJSON(w, http.StatusOK, c.hooks.FromModel(*out))
}

func (c *Controller[M, Req, Resp]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op(c.hooks.Resource+".Delete"))

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		c.handleError(w, err, log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller[M, Req, Resp]) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op(c.hooks.Resource+".FindAll"))

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		httperrors.WriteMessage(w, http.StatusBadRequest, msgInvalidPage)
		return
	}

	out, err := c.service.FindAll(ctx, page)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	dto := pagination.Render(c.hooks.Resource, c.hooks.FromModels(out.Items), out.Previous, out.Next)
	httperrors.WriteJSON(w, http.StatusOK, dto)
}

func (c *Controller[M, Req, Resp]) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case repository.IsNotFound(err):
		httperrors.WriteMessage(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, svc.ErrInvalidPage):
		httperrors.WriteMessage(w, http.StatusBadRequest, msgInvalidPage)
	default:
		log.Error("unexpected error", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError)
	}
}

// pathID parsea {id} del path. Un id no numérico se trata igual que uno
// inexistente.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httperrors.WriteMessage(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
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
