// Package cache provee un cache chico de bytes con backend memory o redis.
// Lo usa el listado de categorías (data de referencia, TTL corto).
package cache

import "time"

// Client define las operaciones de cache. Un miss se reporta con ok=false,
// nunca con error: el cache es best-effort.
type Client interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Close() error
}
