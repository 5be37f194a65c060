// Package router arma el árbol de rutas y el wiring de controllers,
// services y middlewares.
package router

import (
	"net/http"
	"strings"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/cache"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/config"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/email"
	authctl "github.com/MezaMaximiliano/OT168-Java-server/internal/http/controllers/auth"
	categoriesctl "github.com/MezaMaximiliano/OT168-Java-server/internal/http/controllers/categories"
	crudctl "github.com/MezaMaximiliano/OT168-Java-server/internal/http/controllers/crud"
	healthctl "github.com/MezaMaximiliano/OT168-Java-server/internal/http/controllers/health"
	usersctl "github.com/MezaMaximiliano/OT168-Java-server/internal/http/controllers/users"
	activitiesdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/activities"
	membersdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/members"
	newsdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/news"
	testimonialsdto "github.com/MezaMaximiliano/OT168-Java-server/internal/http/dto/testimonials"
	mw "github.com/MezaMaximiliano/OT168-Java-server/internal/http/middlewares"
	authsvc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/auth"
	categoriessvc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/categories"
	crudsvc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/crud"
	userssvc "github.com/MezaMaximiliano/OT168-Java-server/internal/http/services/users"
	jwtx "github.com/MezaMaximiliano/OT168-Java-server/internal/jwt"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps agrupa todo lo que el router necesita para armar el árbol.
type Deps struct {
	Config *config.Config
	Store  repository.Store
	Issuer *jwtx.Issuer

	// Cache puede ser nil (listado de categorías sin cache).
	Cache cache.Client

	// Mail puede ser nil (sin email de bienvenida).
	Mail email.Sender
}

// New construye el handler HTTP completo.
func New(deps Deps) http.Handler {
	cfg := deps.Config
	st := deps.Store
	pageSize := cfg.Pagination.PageSize

	r := chi.NewRouter()
	r.Use(mw.WithRequestID())
	r.Use(mw.WithLogging())
	r.Use(mw.WithRecover())
	if cfg.Metrics.Enabled {
		_ = metrics.Register(nil)
		r.Use(mw.WithMetrics())
	}

	// Recursos de contenido: mismo controller genérico, hooks por DTO.
	trimName := func(name *string) { *name = strings.TrimSpace(*name) }

	mountResource(r, crudctl.New(
		crudsvc.New(crudsvc.Deps[repository.Member]{
			Repo:      st.Members(),
			PageSize:  pageSize,
			Normalize: func(m *repository.Member) { trimName(&m.Name) },
		}),
		crudctl.Hooks[repository.Member, membersdto.MemberRequest, membersdto.MemberResponse]{
			Resource:   "members",
			RequestID:  func(r membersdto.MemberRequest) int64 { return r.ID },
			Validate:   membersdto.MemberRequest.Validate,
			ToModel:    membersdto.MemberRequest.ToModel,
			FromModel:  membersdto.FromModel,
			FromModels: membersdto.FromModels,
		},
	))

	mountResource(r, crudctl.New(
		crudsvc.New(crudsvc.Deps[repository.Testimonial]{
			Repo:      st.Testimonials(),
			PageSize:  pageSize,
			Normalize: func(t *repository.Testimonial) { trimName(&t.Name) },
		}),
		crudctl.Hooks[repository.Testimonial, testimonialsdto.TestimonialRequest, testimonialsdto.TestimonialResponse]{
			Resource:   "testimonials",
			RequestID:  func(r testimonialsdto.TestimonialRequest) int64 { return r.ID },
			Validate:   testimonialsdto.TestimonialRequest.Validate,
			ToModel:    testimonialsdto.TestimonialRequest.ToModel,
			FromModel:  testimonialsdto.FromModel,
			FromModels: testimonialsdto.FromModels,
		},
	))

	mountResource(r, crudctl.New(
		crudsvc.New(crudsvc.Deps[repository.Activity]{
			Repo:      st.Activities(),
			PageSize:  pageSize,
			Normalize: func(a *repository.Activity) { trimName(&a.Name) },
		}),
		crudctl.Hooks[repository.Activity, activitiesdto.ActivityRequest, activitiesdto.ActivityResponse]{
			Resource:   "activities",
			RequestID:  func(r activitiesdto.ActivityRequest) int64 { return r.ID },
			Validate:   activitiesdto.ActivityRequest.Validate,
			ToModel:    activitiesdto.ActivityRequest.ToModel,
			FromModel:  activitiesdto.FromModel,
			FromModels: activitiesdto.FromModels,
		},
	))

	mountResource(r, crudctl.New(
		crudsvc.New(crudsvc.Deps[repository.News]{
			Repo:      st.News(),
			PageSize:  pageSize,
			Normalize: func(n *repository.News) { trimName(&n.Name) },
		}),
		crudctl.Hooks[repository.News, newsdto.NewsRequest, newsdto.NewsResponse]{
			Resource:   "news",
			RequestID:  func(r newsdto.NewsRequest) int64 { return r.ID },
			Validate:   newsdto.NewsRequest.Validate,
			ToModel:    newsdto.NewsRequest.ToModel,
			FromModel:  newsdto.FromModel,
			FromModels: newsdto.FromModels,
		},
	))

	// Categorías: listado cacheado, sin paginar.
	catService := categoriessvc.New(categoriessvc.Deps{
		Repo:  st.Categories(),
		Cache: deps.Cache,
		TTL:   cfg.CacheTTL(),
	})
	r.Get("/categories", categoriesctl.New(catService).FindAll)

	// Auth.
	authService := authsvc.New(authsvc.Deps{
		Users:  st.Users(),
		Roles:  st.Roles(),
		Issuer: deps.Issuer,
		Mail:   deps.Mail,
	})
	r.Post("/auth/login", authctl.NewLoginController(authService).Login)
	r.Post("/auth/register", authctl.NewRegisterController(authService).Register)

	requireAuth := mw.RequireAuth(deps.Issuer, st.Users())
	r.With(requireAuth).Get("/auth/me", authctl.NewMeController().Me)

	// Listado administrativo de usuarios.
	usersService := userssvc.New(userssvc.Deps{Users: st.Users()})
	r.With(requireAuth, mw.RequireRole(repository.RoleAdmin)).
		Get("/users", usersctl.New(usersService).FindAll)

	// Operacional.
	r.Get("/health", healthctl.New(st).Health)
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	return r
}

func mountResource[M, Req, Resp any](r chi.Router, ctl *crudctl.Controller[M, Req, Resp]) {
	r.Route("/"+ctl.Resource(), func(r chi.Router) {
		r.Post("/", ctl.Create)
		r.Get("/", ctl.FindAll)
		r.Put("/{id}", ctl.Update)
		r.Delete("/{id}", ctl.Delete)
	})
}
