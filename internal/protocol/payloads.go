package protocol

// --- 客户端请求 Payloads ---

// AskPayload 要牌请求
type AskPayload struct {
	Target string `json:"target"` // 被询问的玩家 ID
	Rank   int    `json:"rank"`   // 点数 1-13
	Suit   string `json:"suit"`   // hearts/diamonds/clubs/spades
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 返回条数，0 表示默认
}

// --- 服务端响应 Payloads ---

// CardInfo 一张牌
type CardInfo struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

// PlayerInfo 快照中的玩家信息
// Hand 只在发给玩家本人的快照中填充，其他玩家只能看到 HandSize
type PlayerInfo struct {
	ID        string     `json:"id"`
	HandSize  int        `json:"hand_size"`
	Hand      []CardInfo `json:"hand,omitempty"`
	Quartets  []int      `json:"quartets"` // 已凑齐的四张组点数
	Connected bool       `json:"connected"`
}

// GameStateDTO 游戏状态快照
type GameStateDTO struct {
	GameID        string       `json:"game_id"`
	Status        string       `json:"status"` // lobby/playing/finished
	Players       []PlayerInfo `json:"players"`
	CurrentTurn   string       `json:"current_turn,omitempty"` // 当前回合玩家 ID
	DrawPileCount int          `json:"draw_pile_count"`        // 摸牌堆剩余数量（不暴露内容）
}

// PlayerJoinedPayload 玩家加入通知
type PlayerJoinedPayload struct {
	Player string `json:"player"`
}

// GameStartPayload 游戏开始通知
type GameStartPayload struct {
	State *GameStateDTO `json:"state"`
}

// GameUpdatePayload 游戏状态更新通知
type GameUpdatePayload struct {
	State *GameStateDTO `json:"state"`
	Log   string        `json:"log"` // 本次操作的文字描述
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	Player string `json:"player"`
}

// StandingEntry 最终排名条目
type StandingEntry struct {
	Player   string `json:"player"`
	SetCount int    `json:"set_count"`
}

// GameEndPayload 游戏结束通知
type GameEndPayload struct {
	Standings []StandingEntry `json:"standings"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID      string `json:"player_id"`
	TotalGames    int    `json:"total_games"`
	Wins          int    `json:"wins"`
	TotalQuartets int    `json:"total_quartets"`
	BestQuartets  int    `json:"best_quartets"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Quartets int    `json:"quartets"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}
