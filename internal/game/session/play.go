package session

import (
	"fmt"
	"strings"

	"github.com/quartets-live/quartets-server/internal/apperrors"
	"github.com/quartets-live/quartets-server/internal/game/card"
)

// AskResult 一次要牌的结果
type AskResult struct {
	Hit       bool        // 目标玩家有这张牌
	Drew      bool        // 未命中且从牌堆摸了一张
	Completed []card.Rank // 本次操作后新凑齐的四张组
	Finished  bool        // 本次操作后游戏结束
	LogLine   string      // 广播用的文字描述
}

// Ask 当前回合玩家向目标玩家要一张指定的牌
// 命中则牌转移且回合不变（可以连续要牌）；未命中则从牌堆摸一张，
// 回合推进到下一个在线玩家
func (s *Session) Ask(askerID, targetID string, rank card.Rank, suit card.Suit) (*AskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return nil, apperrors.ErrInvalidState
	}

	current := s.currentPlayer()
	if current == nil || current.ID != askerID || !current.Connected {
		return nil, apperrors.ErrNotYourTurn
	}

	target, exists := s.players[targetID]
	if !exists || targetID == askerID || !target.Connected {
		return nil, apperrors.ErrInvalidTarget
	}
	if !rank.Valid() || !suit.Valid() {
		return nil, apperrors.ErrInvalidTarget
	}

	wanted := card.Card{Rank: rank, Suit: suit}
	// 要自己已经持有的牌是非法的
	if holds(current.Hand, wanted) {
		return nil, apperrors.ErrInvalidTarget
	}

	result := &AskResult{}
	var line strings.Builder

	if holds(target.Hand, wanted) {
		target.Hand = remove(target.Hand, wanted)
		current.Hand = append(current.Hand, wanted)
		result.Hit = true
		fmt.Fprintf(&line, "%s 从 %s 手中拿到了 %s，可以继续要牌", askerID, targetID, wanted)
	} else {
		fmt.Fprintf(&line, "%s 想要 %s，但 %s 没有", askerID, wanted, targetID)
		if len(s.drawPile) > 0 {
			drawn := s.drawPile[len(s.drawPile)-1]
			s.drawPile = s.drawPile[:len(s.drawPile)-1]
			current.Hand = append(current.Hand, drawn)
			result.Drew = true
			line.WriteString("，于是摸了一张牌")
		} else {
			line.WriteString("，牌堆已空")
		}
		s.advanceTurn()
	}

	result.Completed = s.collectQuartets()
	for _, r := range result.Completed {
		fmt.Fprintf(&line, "，并凑齐了一组 %s", r)
	}

	if s.checkEnd() {
		result.Finished = true
	}

	result.LogLine = line.String()
	s.appendEvent("game_update", result.LogLine)

	return result, nil
}

// collectQuartets 扫描所有玩家的手牌，把凑齐四张的点数移入 Quartets
// 调用方必须已持锁
func (s *Session) collectQuartets() []card.Rank {
	var completed []card.Rank
	for _, id := range s.joinOrder {
		p := s.players[id]
		counts := make(map[card.Rank]int)
		for _, c := range p.Hand {
			counts[c.Rank]++
		}
		for r := card.RankA; r <= card.RankK; r++ {
			if counts[r] == 4 {
				p.Hand = removeRank(p.Hand, r)
				p.Quartets = append(p.Quartets, r)
				completed = append(completed, r)
			}
		}
	}
	return completed
}

// holds 判断手牌中是否有指定的牌
func holds(hand []card.Card, c card.Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// remove 从手牌中移除指定的牌
func remove(hand []card.Card, c card.Card) []card.Card {
	for i, h := range hand {
		if h == c {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}

// removeRank 从手牌中移除指定点数的所有牌
func removeRank(hand []card.Card, r card.Rank) []card.Card {
	kept := hand[:0]
	for _, h := range hand {
		if h.Rank != r {
			kept = append(kept, h)
		}
	}
	return kept
}
