package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReportCache guarda o resumo financeiro no Redis com TTL curto.
// Invalidação por versão de namespace: cada mutação de projeto ou
// parcela incrementa a versão e as chaves antigas expiram sozinhas.
// Sem Redis configurado, todas as operações são no-op.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(addr string) *ReportCache {
	if addr == "" {
		return &ReportCache{}
	}
	return &ReportCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 60 * time.Second,
	}
}

func (c *ReportCache) key(ctx context.Context, params string) (string, error) {
	ver, err := c.rdb.Get(ctx, "reports:ver").Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("reports:summary:%d:%s", ver, params), nil
}

// Get devolve o payload JSON cacheado para os parâmetros, se houver.
func (c *ReportCache) Get(ctx context.Context, params string) (string, bool) {
	if c.rdb == nil {
		return "", false
	}

	key, err := c.key(ctx, params)
	if err != nil {
		return "", false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *ReportCache) Set(ctx context.Context, params, payload string) {
	if c.rdb == nil {
		return
	}

	key, err := c.key(ctx, params)
	if err != nil {
		return
	}

	// Cache é melhor-esforço: erro de escrita não propaga.
	_ = c.rdb.Set(ctx, key, payload, c.ttl).Err()
}

// Invalidate descarta todos os resumos cacheados.
func (c *ReportCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Incr(ctx, "reports:ver").Err()
}
