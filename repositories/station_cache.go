package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bike-train-finder/models"
	"bike-train-finder/services"
)

const stationsCacheKey = "bike-train-finder:stations:all"

// StationCache keeps the full station list in Redis. Redis failures fall
// through to the source; only the station list is cached, never searches.
type StationCache struct {
	rdb    *redis.Client
	source services.StationLister
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewStationCache(rdb *redis.Client, source services.StationLister, ttl time.Duration, logger *zap.SugaredLogger) *StationCache {
	return &StationCache{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *StationCache) ListStations(ctx context.Context) ([]models.Station, error) {
	raw, err := c.rdb.Get(ctx, stationsCacheKey).Bytes()
	switch {
	case err == nil:
		var stations []models.Station
		if err := json.Unmarshal(raw, &stations); err == nil {
			return stations, nil
		}
		c.logger.Warnw("discarding unreadable station cache entry", "key", stationsCacheKey)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("station cache read failed", "error", err)
	}

	stations, err := c.source.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(stations)
	if err != nil {
		return stations, nil
	}
	if err := c.rdb.Set(ctx, stationsCacheKey, b, c.ttl).Err(); err != nil {
		c.logger.Warnw("station cache write failed", "error", err)
	}

	return stations, nil
}

// Invalidate drops the cached station list
func (c *StationCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, stationsCacheKey).Err()
}
