package testutil

import (
	"sync"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

// BroadcastRecord 一次广播的记录
type BroadcastRecord struct {
	GameID  string
	Message *protocol.Message
}

// MockServer 实现 types.ServerInterface，记录广播供断言
type MockServer struct {
	mu         sync.Mutex
	Players    map[string][]string // gameID → 已注册玩家，用于 BroadcastEach
	Broadcasts []BroadcastRecord
	PerPlayer  map[string][]*protocol.Message // playerID → 收到的个性化消息
}

// NewMockServer 创建 MockServer
func NewMockServer() *MockServer {
	return &MockServer{
		Players:   make(map[string][]string),
		PerPlayer: make(map[string][]*protocol.Message),
	}
}

// AddPlayer 注册一个玩家，使其参与 BroadcastEach
func (m *MockServer) AddPlayer(gameID, playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Players[gameID] = append(m.Players[gameID], playerID)
}

func (m *MockServer) Broadcast(gameID string, msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Broadcasts = append(m.Broadcasts, BroadcastRecord{GameID: gameID, Message: msg})
}

func (m *MockServer) BroadcastEach(gameID string, build func(playerID string) *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, playerID := range m.Players[gameID] {
		if msg := build(playerID); msg != nil {
			m.PerPlayer[playerID] = append(m.PerPlayer[playerID], msg)
		}
	}
}

// BroadcastCount 返回已记录的广播次数
func (m *MockServer) BroadcastCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Broadcasts)
}
