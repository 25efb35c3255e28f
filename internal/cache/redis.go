// Package cache guarda o resumo do painel no Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/ponto-eletronico/internal/dto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/usecase/stats"
)

const (
	StatsKey   = "ponto:stats:summary"
	VersionKey = "ponto:stats:version"
)

// summaryKey separa os resumos por versão; versões antigas expiram pelo TTL.
func summaryKey(version int64) string {
	return fmt.Sprintf("%s:%d", StatsKey, version)
}

func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type StatsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStatsCache(client redis.Cmdable, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, VersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

func (c *StatsCache) Get(ctx context.Context, version int64) (*dto.StatsDTO, bool, error) {
	raw, err := c.client.Get(ctx, summaryKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (c *StatsCache) Set(ctx context.Context, version int64, s *dto.StatsDTO) error {
	raw, err := encode(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(version), raw, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, VersionKey).Err()
}

func encode(s *dto.StatsDTO) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode stats: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) (*dto.StatsDTO, error) {
	var s dto.StatsDTO
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &s, nil
}

var _ stats.Cache = (*StatsCache)(nil)
