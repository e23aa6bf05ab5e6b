package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgJoin  MessageType = "join"  // 加入游戏
	MsgStart MessageType = "start" // 开始游戏
	MsgAsk   MessageType = "ask"   // 向其他玩家要牌

	// 排行榜
	MsgGetStats       MessageType = "get_stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
const (
	MsgPlayerJoined MessageType = "player_joined" // 有玩家加入
	MsgGameStart    MessageType = "game_start"    // 游戏开始
	MsgGameUpdate   MessageType = "game_update"   // 游戏状态更新
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开
	MsgGameEnd      MessageType = "game_end"      // 游戏结束

	// 排行榜
	MsgStatsResult       MessageType = "stats_result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard_result" // 排行榜结果

	// 错误（只发给出错的连接，从不广播）
	MsgError MessageType = "error"
)
