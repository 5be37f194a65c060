package middlewares

import (
	"context"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyClaims
	ctxKeyUser
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

// GetRequestID devuelve el request ID inyectado por WithRequestID ("" si no hay).
func GetRequestID(ctx context.Context) string {
	rid, _ := ctx.Value(ctxKeyRequestID).(string)
	return rid
}

// WithClaims guarda las claims del token en el contexto.
func WithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, claims)
}

// GetClaims devuelve las claims del contexto (nil si no hay).
func GetClaims(ctx context.Context) map[string]any {
	claims, _ := ctx.Value(ctxKeyClaims).(map[string]any)
	return claims
}

// WithUser guarda el usuario autenticado resuelto por RequireAuth.
func WithUser(ctx context.Context, u *repository.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// GetUser devuelve el usuario autenticado (nil si no hay).
func GetUser(ctx context.Context) *repository.User {
	u, _ := ctx.Value(ctxKeyUser).(*repository.User)
	return u
}
