package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:quartets"

	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID string `json:"player_id"`

	TotalGames    int `json:"total_games"`    // 总场次
	Wins          int `json:"wins"`           // 胜场（四张组最多）
	TotalQuartets int `json:"total_quartets"` // 累计凑齐的四张组
	BestQuartets  int `json:"best_quartets"`  // 单局最多四张组

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// RecordResult 记录一局结果：更新每位玩家的统计并累加排行榜积分
// standings 必须按名次排列，第一名计为胜者
func (lm *LeaderboardManager) RecordResult(ctx context.Context, standings []protocol.StandingEntry) error {
	if lm == nil || lm.redis == nil || len(standings) == 0 {
		return nil
	}

	now := time.Now().Unix()
	for i, entry := range standings {
		stats, err := lm.GetPlayerStats(ctx, entry.Player)
		if err != nil {
			return err
		}
		if stats == nil {
			stats = &PlayerStats{PlayerID: entry.Player}
		}

		stats.TotalGames++
		stats.TotalQuartets += entry.SetCount
		if entry.SetCount > stats.BestQuartets {
			stats.BestQuartets = entry.SetCount
		}
		if i == 0 {
			stats.Wins++
		}
		stats.LastPlayedAt = now

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		if err := lm.redis.Set(ctx, playerStatsKey+entry.Player, data, 0).Err(); err != nil {
			return err
		}
		if err := lm.redis.ZIncrBy(ctx, leaderboardKey, float64(entry.SetCount), entry.Player).Err(); err != nil {
			return err
		}
	}

	return nil
}

// GetPlayerStats 获取玩家统计，不存在返回 nil
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	if lm == nil || lm.redis == nil {
		return nil, nil
	}

	data, err := lm.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetLeaderboard 获取四张组累计排行榜
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]protocol.LeaderboardEntry, error) {
	if lm == nil || lm.redis == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	items, err := lm.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]protocol.LeaderboardEntry, 0, len(items))
	for i, item := range items {
		id, _ := item.Member.(string)
		entries = append(entries, protocol.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: id,
			Quartets: int(item.Score),
		})
	}
	return entries, nil
}
