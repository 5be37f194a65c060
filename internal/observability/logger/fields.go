package logger

import (
	"time"

	"go.uber.org/zap"
)

// Campos estándar HTTP.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }

func Duration(v time.Duration) zap.Field {
	return zap.Int64("duration_ms", v.Milliseconds())
}

// Campos estándar de negocio.

func EntityID(v int64) zap.Field { return zap.Int64("entity_id", v) }
func UserID(v int64) zap.Field   { return zap.Int64("user_id", v) }
func Email(v string) zap.Field   { return zap.String("email", v) }
func Role(v string) zap.Field    { return zap.String("role", v) }
func PageNum(v int) zap.Field    { return zap.Int("page", v) }

// Campos estándar de sistema.

// Layer identifica la capa (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Op identifica la operación actual.
func Op(v string) zap.Field { return zap.String("op", v) }

// Component identifica el componente/módulo.
func Component(v string) zap.Field { return zap.String("component", v) }

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }
