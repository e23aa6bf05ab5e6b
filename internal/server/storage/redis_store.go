package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

const (
	// Redis key 前缀
	resultKeyPrefix = "game:result:"

	// 对局结果过期时间
	resultExpiration = 24 * time.Hour
)

// GameResult 一局游戏的最终结果（用于 Redis 序列化）
type GameResult struct {
	GameID     string                   `json:"game_id"`
	FinishedAt int64                    `json:"finished_at"`
	Standings  []protocol.StandingEntry `json:"standings"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveResult 保存对局结果到 Redis
func (rs *RedisStore) SaveResult(ctx context.Context, result *GameResult) error {
	if result == nil {
		return nil
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化对局结果失败: %w", err)
	}

	key := resultKeyPrefix + result.GameID
	return rs.client.Set(ctx, key, jsonData, resultExpiration).Err()
}

// LoadResult 从 Redis 读取对局结果，不存在返回 nil
func (rs *RedisStore) LoadResult(ctx context.Context, gameID string) (*GameResult, error) {
	key := resultKeyPrefix + gameID
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result GameResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("反序列化对局结果失败: %w", err)
	}

	return &result, nil
}
