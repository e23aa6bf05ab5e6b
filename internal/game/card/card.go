package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Suit 定义花色，取值与线上协议一致
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits 四种花色，顺序固定用于构建整副牌
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

// Symbol 返回花色符号
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

// Valid 判断花色是否合法
func (s Suit) Valid() bool {
	_, ok := suitSymbols[s]
	return ok
}

// ParseSuit 解析花色名称或符号
func ParseSuit(str string) (Suit, error) {
	s := Suit(strings.ToLower(str))
	if s.Valid() {
		return s, nil
	}
	for suit, symbol := range suitSymbols {
		if str == symbol {
			return suit, nil
		}
	}
	return "", fmt.Errorf("无法识别的花色: %s", str)
}

// Rank 定义点数 1-13，1 为 A
type Rank int

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA: "A",
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid 判断点数是否合法
func (r Rank) Valid() bool {
	return r >= RankA && r <= RankK
}

// ParseRank 解析点数字符串（"A"、"7"、"10"、"J" 等）
func ParseRank(str string) (Rank, error) {
	switch strings.ToUpper(str) {
	case "A":
		return RankA, nil
	case "J":
		return RankJ, nil
	case "Q":
		return RankQ, nil
	case "K":
		return RankK, nil
	}
	n, err := strconv.Atoi(str)
	if err != nil || !Rank(n).Valid() {
		return 0, fmt.Errorf("无法识别的点数: %s", str)
	}
	return Rank(n), nil
}

// Card 定义一张牌
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	return c.Suit.Symbol() + c.Rank.String()
}

// Deck 定义一副牌，末尾为牌堆顶
type Deck []Card

// NewDeck 构建一副 52 张的标准牌，顺序固定
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for r := RankA; r <= RankK; r++ {
		for _, s := range Suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle 原地均匀洗牌
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
