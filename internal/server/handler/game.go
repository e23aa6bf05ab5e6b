package handler

import (
	"context"
	"log"
	"time"

	"github.com/quartets-live/quartets-server/internal/game/card"
	"github.com/quartets-live/quartets-server/internal/game/session"
	"github.com/quartets-live/quartets-server/internal/protocol"
	"github.com/quartets-live/quartets-server/internal/server/storage"
	"github.com/quartets-live/quartets-server/internal/types"
)

// persistTimeout 落库超时
const persistTimeout = 5 * time.Second

// handleJoin 处理加入游戏
func (h *Handler) handleJoin(client types.ClientInterface) {
	sess := h.registry.GetOrCreate(client.GetGameID())
	if err := sess.Join(client.GetPlayerID()); err != nil {
		sendError(client, err)
		return
	}

	log.Printf("👤 玩家 %s 加入游戏 %s", client.GetPlayerID(), client.GetGameID())
	h.server.Broadcast(client.GetGameID(), protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: client.GetPlayerID(),
	}))
}

// handleStart 处理开始游戏
func (h *Handler) handleStart(client types.ClientInterface) {
	sess := h.registry.GetOrCreate(client.GetGameID())
	if err := sess.Start(h.minPlayers); err != nil {
		sendError(client, err)
		return
	}

	log.Printf("🃏 游戏 %s 开始", client.GetGameID())
	// 每位玩家收到只含自己手牌的快照
	h.server.BroadcastEach(client.GetGameID(), func(playerID string) *protocol.Message {
		return protocol.MustNewMessage(protocol.MsgGameStart, protocol.GameStartPayload{
			State: sess.SnapshotFor(playerID),
		})
	})
}

// handleAsk 处理要牌
func (h *Handler) handleAsk(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AskPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	sess := h.registry.GetOrCreate(client.GetGameID())
	res, err := sess.Ask(client.GetPlayerID(), payload.Target, card.Rank(payload.Rank), card.Suit(payload.Suit))
	if err != nil {
		sendError(client, err)
		return
	}

	h.server.BroadcastEach(client.GetGameID(), func(playerID string) *protocol.Message {
		return protocol.MustNewMessage(protocol.MsgGameUpdate, protocol.GameUpdatePayload{
			State: sess.SnapshotFor(playerID),
			Log:   res.LogLine,
		})
	})

	if res.Finished {
		h.finishGame(sess)
	}
}

// HandleDisconnect 处理连接断开：标记玩家离线并通知其他玩家
// 由连接的读协程在传输层断开时调用
func (h *Handler) HandleDisconnect(client types.ClientInterface) {
	sess := h.registry.Get(client.GetGameID())
	if sess == nil {
		return
	}
	if !sess.Disconnect(client.GetPlayerID()) {
		return
	}

	log.Printf("👋 玩家 %s 离开游戏 %s", client.GetPlayerID(), client.GetGameID())
	h.server.Broadcast(client.GetGameID(), protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		Player: client.GetPlayerID(),
	}))
}

// finishGame 广播最终排名并异步落库
func (h *Handler) finishGame(sess *session.Session) {
	standings := sess.Standings()

	log.Printf("🏁 游戏 %s 结束", sess.ID)
	h.server.Broadcast(sess.ID, protocol.MustNewMessage(protocol.MsgGameEnd, protocol.GameEndPayload{
		Standings: standings,
	}))

	// 落库在广播之后进行，Redis 故障不影响对局结束
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if h.store != nil {
			result := &storage.GameResult{
				GameID:     sess.ID,
				FinishedAt: time.Now().Unix(),
				Standings:  standings,
			}
			if err := h.store.SaveResult(ctx, result); err != nil {
				log.Printf("保存对局结果失败: %v", err)
			}
		}
		if err := h.leaderboard.RecordResult(ctx, standings); err != nil {
			log.Printf("更新排行榜失败: %v", err)
		}
	}()
}
