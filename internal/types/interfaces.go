package types

import (
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// ClientInterface 连接客户端的抽象，处理器和测试共用
type ClientInterface interface {
	GetGameID() string
	GetPlayerID() string
	SendMessage(msg *protocol.Message)
	Close()
}

// ServerInterface 处理器需要的服务器能力
type ServerInterface interface {
	// Broadcast 把同一条消息发给游戏内所有已注册连接
	Broadcast(gameID string, msg *protocol.Message)
	// BroadcastEach 为每个收件人单独构建消息（用于脱敏快照）
	// build 返回 nil 时跳过该收件人
	BroadcastEach(gameID string, build func(playerID string) *protocol.Message)
}
