package server

import "github.com/quartets-live/quartets-server/internal/protocol"

// Broadcast 把消息发给游戏内所有已注册连接
// 单个连接发送失败只会让那个连接走隐式断开流程，不影响其他玩家
func (s *Server) Broadcast(gameID string, msg *protocol.Message) {
	for _, client := range s.clientsOf(gameID) {
		client.SendMessage(msg)
	}
}

// BroadcastEach 为每个收件人单独构建消息后发送（用于脱敏快照）
func (s *Server) BroadcastEach(gameID string, build func(playerID string) *protocol.Message) {
	for _, client := range s.clientsOf(gameID) {
		if msg := build(client.PlayerID); msg != nil {
			client.SendMessage(msg)
		}
	}
}
