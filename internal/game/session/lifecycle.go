package session

import (
	"fmt"
	"sort"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

// Disconnect 标记玩家离线
// 玩家的手牌和四张组保留在局中，只在回合轮转时被跳过；
// 如果正轮到该玩家，回合立即推进。返回状态是否发生了变化
func (s *Session) Disconnect(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.players[playerID]
	if !exists || !p.Connected || s.status == StatusFinished {
		return false
	}

	p.Connected = false
	if s.status == StatusPlaying && s.turnOrder[s.turnIdx] == playerID {
		s.advanceTurn()
	}
	s.appendEvent("player_left", fmt.Sprintf("玩家 %s 离线", playerID))

	return true
}

// checkEnd 判断游戏是否结束：牌堆摸空且所有人手牌出清
// 结束时定格状态并记录事件。调用方必须已持锁
func (s *Session) checkEnd() bool {
	if s.status != StatusPlaying {
		return s.status == StatusFinished
	}
	if len(s.drawPile) > 0 {
		return false
	}
	for _, p := range s.players {
		if len(p.Hand) > 0 {
			return false
		}
	}

	s.status = StatusFinished
	s.appendEvent("game_end", fmt.Sprintf("游戏结束，胜者 %s", s.standingsLocked()[0].Player))
	return true
}

// Standings 返回最终排名：四张组数量降序，数量相同按加入顺序
func (s *Session) Standings() []protocol.StandingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standingsLocked()
}

func (s *Session) standingsLocked() []protocol.StandingEntry {
	standings := make([]protocol.StandingEntry, 0, len(s.joinOrder))
	for _, id := range s.joinOrder {
		standings = append(standings, protocol.StandingEntry{
			Player:   id,
			SetCount: len(s.players[id].Quartets),
		})
	}
	// 加入顺序是次要排序键，SliceStable 天然保留
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].SetCount > standings[j].SetCount
	})
	return standings
}
