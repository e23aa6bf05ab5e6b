package handler

import (
	"context"
	"log"

	"github.com/quartets-live/quartets-server/internal/protocol"
	"github.com/quartets-live/quartets-server/internal/types"
)

// handleGetStats 返回发起方自己的统计数据
func (h *Handler) handleGetStats(client types.ClientInterface) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	stats, err := h.leaderboard.GetPlayerStats(ctx, client.GetPlayerID())
	if err != nil {
		log.Printf("读取玩家统计失败: %v", err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}

	payload := protocol.StatsResultPayload{PlayerID: client.GetPlayerID()}
	if stats != nil {
		payload.TotalGames = stats.TotalGames
		payload.Wins = stats.Wins
		payload.TotalQuartets = stats.TotalQuartets
		payload.BestQuartets = stats.BestQuartets
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, payload))
}

// handleGetLeaderboard 返回排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	limit := 0
	if len(msg.Payload) > 0 {
		payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
		if err != nil {
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		limit = payload.Limit
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	entries, err := h.leaderboard.GetLeaderboard(ctx, limit)
	if err != nil {
		log.Printf("读取排行榜失败: %v", err)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknown))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: entries,
	}))
}
