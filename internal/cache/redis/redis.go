package redis

import (
	"context"
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/cache"
	rdb "github.com/redis/go-redis/v9"
)

type Redis struct {
	c      *rdb.Client
	prefix string
}

func New(addr string, db int, prefix string) cache.Client {
	return &Redis{c: rdb.NewClient(&rdb.Options{Addr: addr, DB: db}), prefix: prefix}
}

func (r *Redis) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *Redis) Get(k string) ([]byte, bool) {
	b, err := r.c.Get(context.Background(), r.key(k)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(k string, v []byte, ttl time.Duration) {
	_ = r.c.Set(context.Background(), r.key(k), v, ttl).Err()
}

func (r *Redis) Delete(k string) { _ = r.c.Del(context.Background(), r.key(k)).Err() }
func (r *Redis) Close() error    { return r.c.Close() }
