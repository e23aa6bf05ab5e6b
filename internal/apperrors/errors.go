package apperrors

import (
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// GameError 游戏错误（会话和处理器共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidState      = &GameError{Code: protocol.ErrCodeInvalidState, Message: "当前游戏状态不允许该操作"}
	ErrNotYourTurn       = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrInvalidTarget     = &GameError{Code: protocol.ErrCodeInvalidTarget, Message: "无效的询问目标"}
	ErrDuplicatePlayer   = &GameError{Code: protocol.ErrCodeDuplicate, Message: "玩家已在游戏中"}
	ErrInsufficientCards = &GameError{Code: protocol.ErrCodeNotEnough, Message: "牌堆不足，无法发牌"}
	ErrUnknownAction     = &GameError{Code: protocol.ErrCodeUnknownAction, Message: "未知的操作类型"}
)
