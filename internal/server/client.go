package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

const (
	// 写入超时
	writeWait = 10 * time.Second

	// 读取超时（pong 等待时间）
	pongWait = 60 * time.Second

	// ping 发送间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小
	maxMessageSize = 4096
)

// Client 代表一条玩家连接
type Client struct {
	GameID   string // 所在游戏 ID
	PlayerID string // 玩家 ID
	IP       string // 客户端 IP 地址

	server  *Server
	conn    *websocket.Conn
	send    chan []byte
	release func() // 归还连接信号量，只调用一次

	mu     sync.RWMutex
	closed bool
}

// NewClient 创建新客户端
func NewClient(s *Server, conn *websocket.Conn, gameID, playerID string, release func()) *Client {
	return &Client{
		GameID:   gameID,
		PlayerID: playerID,
		server:   s,
		conn:     conn,
		send:     make(chan []byte, 256),
		release:  release,
	}
}

// GetGameID 实现 types.ClientInterface
func (c *Client) GetGameID() string { return c.GameID }

// GetPlayerID 实现 types.ClientInterface
func (c *Client) GetPlayerID() string { return c.PlayerID }

// ReadPump 从 WebSocket 读取消息
// 每条入站消息依次交给处理器；传输层断开时触发隐式 disconnect
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		c.conn.Close()
		if c.release != nil {
			c.release()
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("读取错误: %v", err)
			}
			break
		}

		// 解析消息
		msg, err := protocol.Decode(message)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		// 交给处理器处理
		c.server.handler.Handle(c, msg)
	}
}

// WritePump 向 WebSocket 写入消息
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 通道已关闭
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage 发送消息给客户端
// 发送缓冲区满视作连接已死，关闭连接走隐式断开流程
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("消息编码错误: %v", err)
		return
	}

	// 持读锁期间 send 不会被关闭
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	full := false
	select {
	case c.send <- data:
	default:
		full = true
	}
	c.mu.RUnlock()

	if full {
		log.Printf("玩家 %s 发送缓冲区已满，断开连接", c.PlayerID)
		c.Close()
	}
}

// Close 关闭客户端连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// handleDisconnect 处理断开连接
// 目录里已被新连接顶替时不动会话，避免把刚重连的玩家标记为离线
func (c *Client) handleDisconnect() {
	if c.server.unregisterClient(c) {
		c.server.handler.HandleDisconnect(c)
	}
	c.Close()
}
