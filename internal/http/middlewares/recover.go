package middlewares

import (
	"net/http"

	httperrors "github.com/MezaMaximiliano/OT168-Java-server/internal/http/errors"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/observability/logger"
	"go.uber.org/zap"
)

// WithRecover convierte panics en 500 para no tirar el proceso por un
// handler roto. Loguea el valor del panic con stacktrace.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						zap.Any("panic", rec),
						zap.Stack("stack"),
					)
					httperrors.WriteError(w, httperrors.ErrInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
