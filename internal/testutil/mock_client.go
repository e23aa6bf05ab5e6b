package testutil

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetGameID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetPlayerID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言调用次数的测试）
type SimpleClient struct {
	GameID   string
	PlayerID string

	mu       sync.Mutex
	Messages []*protocol.Message
	Closed   bool
}

// NewSimpleClient 创建 SimpleClient
func NewSimpleClient(gameID, playerID string) *SimpleClient {
	return &SimpleClient{GameID: gameID, PlayerID: playerID}
}

func (m *SimpleClient) GetGameID() string   { return m.GameID }
func (m *SimpleClient) GetPlayerID() string { return m.PlayerID }

func (m *SimpleClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
}

func (m *SimpleClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

// Sent 返回已发送消息的副本
func (m *SimpleClient) Sent() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*protocol.Message(nil), m.Messages...)
}
