package session

import (
	"github.com/quartets-live/quartets-server/internal/game/card"
)

// NewTestSession 构建一个处于对局状态的会话，用于测试
// hands 按 players 顺序指定手牌，pile 为摸牌堆（末尾为堆顶）
func NewTestSession(id string, players []string, hands map[string][]card.Card, pile []card.Card) *Session {
	s := NewSession(id)
	for _, p := range players {
		s.players[p] = &Player{
			ID:        p,
			Hand:      append([]card.Card(nil), hands[p]...),
			Connected: true,
		}
		s.joinOrder = append(s.joinOrder, p)
	}
	s.drawPile = append([]card.Card(nil), pile...)
	s.turnOrder = append([]string(nil), s.joinOrder...)
	s.turnIdx = 0
	s.status = StatusPlaying
	return s
}
