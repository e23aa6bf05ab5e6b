package handler

import (
	"errors"

	"github.com/quartets-live/quartets-server/internal/apperrors"
	"github.com/quartets-live/quartets-server/internal/game/session"
	"github.com/quartets-live/quartets-server/internal/protocol"
	"github.com/quartets-live/quartets-server/internal/server/storage"
	"github.com/quartets-live/quartets-server/internal/types"
)

// Deps 处理器依赖
type Deps struct {
	Server      types.ServerInterface
	Registry    *session.Registry
	Store       *storage.RedisStore
	Leaderboard *storage.LeaderboardManager
	MinPlayers  int // 开局最少人数
}

// Handler 消息处理器
// 每条入站消息在这里分发；会话操作自带互斥，广播一律在操作返回之后执行
type Handler struct {
	server      types.ServerInterface
	registry    *session.Registry
	store       *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	minPlayers  int
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		server:      deps.Server,
		registry:    deps.Registry,
		store:       deps.Store,
		leaderboard: deps.Leaderboard,
		minPlayers:  deps.MinPlayers,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 游戏操作
		protocol.MsgJoin:  func(c types.ClientInterface, _ *protocol.Message) { h.handleJoin(c) },
		protocol.MsgStart: func(c types.ClientInterface, _ *protocol.Message) { h.handleStart(c) },
		protocol.MsgAsk:   h.handleAsk,

		// 排行榜
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
	}
}

// Handle 分发一条入站消息
// 未知的 action 只回给发起方错误，不广播也不改动会话状态
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	fn, ok := h.handlers[msg.Type]
	if !ok {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeUnknownAction))
		return
	}
	fn(client, msg)
}

// sendError 把错误翻译成协议错误消息，只发给发起方
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
