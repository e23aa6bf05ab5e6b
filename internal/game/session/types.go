package session

import (
	"time"

	"github.com/quartets-live/quartets-server/internal/game/card"
)

// Status 会话状态
type Status int

const (
	StatusLobby    Status = iota // 等待玩家加入
	StatusPlaying                // 游戏进行中
	StatusFinished               // 游戏已结束
)

var statusNames = map[Status]string{
	StatusLobby:    "lobby",
	StatusPlaying:  "playing",
	StatusFinished: "finished",
}

func (s Status) String() string {
	return statusNames[s]
}

// Player 会话中的玩家
type Player struct {
	ID        string
	Hand      []card.Card // 手牌，保持获得顺序
	Quartets  []card.Rank // 已凑齐的四张组，按凑齐顺序
	Connected bool        // 断线玩家保留手牌但跳过回合
}

// Event 会话事件记录（仅用于审计和调试，从不广播）
type Event struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Detail string    `json:"detail"`
	At     time.Time `json:"at"`
}
