package client

import (
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// --- 便捷方法 ---

// Join 加入游戏
func (c *Client) Join() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoin, nil))
}

// Start 开始游戏
func (c *Client) Start() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgStart, nil))
}

// Ask 向目标玩家索要一张牌
func (c *Client) Ask(target string, rank int, suit string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgAsk, protocol.AskPayload{
		Target: target,
		Rank:   rank,
		Suit:   suit,
	}))
}

// GetStats 获取个人统计
func (c *Client) GetStats() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetStats, nil))
}

// GetLeaderboard 获取排行榜
func (c *Client) GetLeaderboard(limit int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Limit: limit,
	}))
}
