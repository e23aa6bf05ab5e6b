package protocol

// 错误码
const (
	ErrCodeUnknown       = 1000
	ErrCodeInvalidMsg    = 1001
	ErrCodeUnknownAction = 1002 // 未知的 action
	ErrCodeInvalidState  = 3001 // 当前状态不允许该操作
	ErrCodeNotYourTurn   = 3002
	ErrCodeInvalidTarget = 3003 // 目标玩家或目标牌不合法
	ErrCodeDuplicate     = 3004 // 玩家重复加入
	ErrCodeNotEnough     = 3005 // 牌堆不够发牌
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:       "未知错误",
	ErrCodeInvalidMsg:    "无效的消息格式",
	ErrCodeUnknownAction: "未知的操作类型",
	ErrCodeInvalidState:  "当前游戏状态不允许该操作",
	ErrCodeNotYourTurn:   "还没轮到您",
	ErrCodeInvalidTarget: "无效的询问目标",
	ErrCodeDuplicate:     "玩家已在游戏中",
	ErrCodeNotEnough:     "牌堆不足，无法发牌",
}
