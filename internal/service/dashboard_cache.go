package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"maternity-dashboard/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Redis key prefix for cached dashboard payloads
	RedisDashboardKeyPrefix = "dashboard:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// =============================================================================
// Types
// =============================================================================

// DashboardCache keeps composed dashboard payloads per user.
// It is best-effort: failures are logged and reported as cache misses.
type DashboardCache interface {
	Get(ctx context.Context, userID string) (*dto.DashboardResponse, bool)
	Set(ctx context.Context, userID string, dashboard *dto.DashboardResponse)
	Invalidate(ctx context.Context, userID string)
}

// RedisDashboardCache stores dashboards as JSON strings with a TTL.
type RedisDashboardCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

type noopDashboardCache struct{}

// =============================================================================
// Constructors
// =============================================================================

func NewRedisDashboardCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisDashboardCache {
	return &RedisDashboardCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// NewNoopDashboardCache returns a cache that never stores anything, used when Redis is not configured
func NewNoopDashboardCache() DashboardCache {
	return noopDashboardCache{}
}

// =============================================================================
// Redis implementation
// =============================================================================

func (c *RedisDashboardCache) Get(ctx context.Context, userID string) (*dto.DashboardResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cached dashboard for user %s: %+v", userID, err)
		}
		return nil, false
	}

	var dashboard dto.DashboardResponse
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		c.log.Warnf("Discarding corrupt cached dashboard for user %s: %+v", userID, err)
		c.Invalidate(ctx, userID)
		return nil, false
	}

	c.log.Debugf("Dashboard cache hit for user %s", userID)
	return &dashboard, true
}

func (c *RedisDashboardCache) Set(ctx context.Context, userID string, dashboard *dto.DashboardResponse) {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		c.log.Warnf("Failed to encode dashboard for user %s: %+v", userID, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, dashboardKey(userID), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to cache dashboard for user %s: %+v", userID, err)
	}
}

// Invalidate drops the user's cached dashboard. Called after every claim mutation.
func (c *RedisDashboardCache) Invalidate(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, dashboardKey(userID)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate dashboard cache for user %s: %+v", userID, err)
		return
	}
	c.log.Debugf("Invalidated dashboard cache for user %s", userID)
}

func dashboardKey(userID string) string {
	return RedisDashboardKeyPrefix + userID
}

// =============================================================================
// No-op implementation
// =============================================================================

func (noopDashboardCache) Get(context.Context, string) (*dto.DashboardResponse, bool) {
	return nil, false
}

func (noopDashboardCache) Set(context.Context, string, *dto.DashboardResponse) {}

func (noopDashboardCache) Invalidate(context.Context, string) {}
