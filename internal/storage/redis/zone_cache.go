package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

const (
	safeZonesKey = "safe-zones:active"
	riskAreasKey = "risk-areas:active"
)

// ZoneCache keeps the active zone/area sets hot so every location
// report doesn't hit Postgres. A cache miss returns (nil, nil); admin
// writes invalidate both keys.
type ZoneCache struct {
	client *goredis.Client
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{client: r.Client}
}

func (c *ZoneCache) GetSafeZones(ctx context.Context) ([]domain.SafeZone, error) {
	var zones []domain.SafeZone
	if err := c.get(ctx, safeZonesKey, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *ZoneCache) SetSafeZones(ctx context.Context, zones []domain.SafeZone, ttl time.Duration) error {
	return c.set(ctx, safeZonesKey, zones, ttl)
}

func (c *ZoneCache) GetRiskAreas(ctx context.Context) ([]domain.HighRiskArea, error) {
	var areas []domain.HighRiskArea
	if err := c.get(ctx, riskAreasKey, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (c *ZoneCache) SetRiskAreas(ctx context.Context, areas []domain.HighRiskArea, ttl time.Duration) error {
	return c.set(ctx, riskAreasKey, areas, ttl)
}

func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, safeZonesKey, riskAreasKey).Err()
}

func (c *ZoneCache) get(ctx context.Context, key string, target any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, target)
}

func (c *ZoneCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}
