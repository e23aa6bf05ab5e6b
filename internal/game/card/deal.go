package card

import (
	"github.com/quartets-live/quartets-server/internal/apperrors"
)

// HandSize 计算每位玩家的起手牌数量
// 人少时多发，人多时少发，最少 4 张
func HandSize(playerCount int) int {
	size := 7 - (playerCount-2)/2
	if size < 4 {
		size = 4
	}
	return size
}

// Deal 给 playerCount 名玩家发牌，返回每人的手牌和剩余牌堆
// 发牌从牌堆顶（切片末尾）开始。如果按公式发牌会超出整副牌则报错，
// 绝不静默截断
func Deal(deck Deck, playerCount int) ([][]Card, Deck, error) {
	size := HandSize(playerCount)
	if size*playerCount > len(deck) {
		return nil, nil, apperrors.ErrInsufficientCards
	}

	hands := make([][]Card, playerCount)
	for i := range hands {
		hand := make([]Card, size)
		for j := range size {
			hand[j] = deck[len(deck)-1]
			deck = deck[:len(deck)-1]
		}
		hands[i] = hand
	}

	return hands, deck, nil
}
