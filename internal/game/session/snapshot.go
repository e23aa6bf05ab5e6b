package session

import (
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// SnapshotFor 生成发给指定玩家的状态快照
// 只有收件人自己的手牌会完整下发，其他玩家只暴露手牌数量，
// 避免把对手手牌泄露给客户端
func (s *Session) SnapshotFor(recipientID string) *protocol.GameStateDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	dto := &protocol.GameStateDTO{
		GameID:        s.ID,
		Status:        s.status.String(),
		Players:       make([]protocol.PlayerInfo, 0, len(s.joinOrder)),
		DrawPileCount: len(s.drawPile),
	}
	if s.status == StatusPlaying {
		dto.CurrentTurn = s.turnOrder[s.turnIdx]
	}

	for _, id := range s.joinOrder {
		p := s.players[id]
		info := protocol.PlayerInfo{
			ID:        p.ID,
			HandSize:  len(p.Hand),
			Quartets:  make([]int, 0, len(p.Quartets)),
			Connected: p.Connected,
		}
		for _, r := range p.Quartets {
			info.Quartets = append(info.Quartets, int(r))
		}
		if id == recipientID {
			info.Hand = make([]protocol.CardInfo, 0, len(p.Hand))
			for _, c := range p.Hand {
				info.Hand = append(info.Hand, protocol.CardInfo{Rank: int(c.Rank), Suit: string(c.Suit)})
			}
		}
		dto.Players = append(dto.Players, info)
	}

	return dto
}
