package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	jwtx "github.com/MezaMaximiliano/OT168-Java-server/internal/jwt"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
)

// ExtractToken saca el token del header Authorization. Acepta el token
// crudo o con prefijo "Bearer " (el cliente original manda ambos).
func ExtractToken(r *http.Request) string {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return strings.TrimSpace(ah[len("bearer "):])
	}
	return ah
}

// RequireAuth valida el token del header Authorization, resuelve el
// usuario por el email del subject y lo deja en el contexto.
//
// Token ausente/inválido/expirado -> 401. Token válido cuyo usuario ya
// no existe (o fue borrado) -> 404, comportamiento que el cliente del
// API original depende para invalidar sesiones.
func RequireAuth(issuer *jwtx.Issuer, users repository.UserRepository) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ExtractToken(r)
			if raw == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="missing token"`)
				httperrors.WriteError(w, httperrors.ErrUnauthorized)
				return
			}

			claims, err := issuer.Parse(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token", error_description="`+err.Error()+`"`)
				httperrors.WriteError(w, httperrors.ErrUnauthorized.WithDetail(err.Error()))
				return
			}

			email := jwtx.Subject(claims)
			user, err := users.FindByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					httperrors.WriteMessage(w, http.StatusNotFound, "The ID doesn't exist.")
					return
				}
				logger.From(r.Context()).Error("user lookup failed", logger.Err(err))
				httperrors.WriteError(w, httperrors.ErrInternalServerError)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = WithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole verifica el rol del usuario resuelto por RequireAuth.
// Debe montarse después de RequireAuth.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r.Context())
			if user == nil {
				httperrors.WriteError(w, httperrors.ErrUnauthorized)
				return
			}
			if user.Role == nil || user.Role.Name != role {
				httperrors.WriteError(w, httperrors.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
