package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abegailflorig/Foodie-Finder-Team-A-Chi/internal/domain"
)

const engagementLeaderboardKey = "engagement:alltime"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MarkerKey(authorID int, subjectType domain.SubjectType, subjectID int) string {
	return "review:" + string(subjectType) + ":" + strconv.Itoa(subjectID) + ":" + strconv.Itoa(authorID)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

// Top reads the engagement leaderboard, highest score first.
func (c *RedisCache) Top(ctx context.Context, n int64) ([]domain.ScoredMenuItem, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, engagementLeaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ScoredMenuItem, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		entries = append(entries, domain.ScoredMenuItem{MenuItemID: id, Score: member.Score})
	}
	return entries, nil
}
