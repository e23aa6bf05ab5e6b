package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quartets-live/quartets-server/internal/apperrors"
	"github.com/quartets-live/quartets-server/internal/game/card"
)

// Session 一局游戏的全部可变状态
// 所有公开操作都持有 s.mu，彼此互斥；广播由调用方在操作返回后执行，
// 绝不在持锁期间做网络 I/O
type Session struct {
	ID string

	mu        sync.Mutex
	status    Status
	players   map[string]*Player
	joinOrder []string    // 加入顺序，开局时定格为回合顺序
	drawPile  []card.Card // 摸牌堆，末尾为堆顶
	turnOrder []string    // 开局后不再变化
	turnIdx   int         // 当前回合在 turnOrder 中的下标
	events    []Event
}

// NewSession 创建一个处于大厅状态的会话
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		status:  StatusLobby,
		players: make(map[string]*Player),
	}
}

// Join 玩家加入大厅
func (s *Session) Join(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusLobby {
		return apperrors.ErrInvalidState
	}
	if _, exists := s.players[playerID]; exists {
		return apperrors.ErrDuplicatePlayer
	}

	s.players[playerID] = &Player{
		ID:        playerID,
		Connected: true,
	}
	s.joinOrder = append(s.joinOrder, playerID)
	s.appendEvent("player_joined", fmt.Sprintf("玩家 %s 加入", playerID))

	return nil
}

// Start 开始游戏：洗牌、发牌、定格回合顺序
func (s *Session) Start(minPlayers int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if minPlayers < 2 {
		minPlayers = 2
	}
	if s.status != StatusLobby || len(s.players) < minPlayers {
		return apperrors.ErrInvalidState
	}

	deck := card.NewDeck()
	deck.Shuffle()

	hands, remaining, err := card.Deal(deck, len(s.players))
	if err != nil {
		return err
	}

	for i, id := range s.joinOrder {
		s.players[id].Hand = hands[i]
	}
	s.drawPile = remaining
	s.turnOrder = append([]string(nil), s.joinOrder...)
	s.turnIdx = 0
	// 首位玩家可能在大厅阶段就已离线，开局回合落在第一个在线玩家身上
	if !s.players[s.turnOrder[0]].Connected {
		s.advanceTurn()
	}
	s.status = StatusPlaying
	s.appendEvent("game_start", fmt.Sprintf("游戏开始，%d 名玩家，每人 %d 张牌", len(s.players), card.HandSize(len(s.players))))

	return nil
}

// Status 返回当前状态
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// HasPlayer 判断玩家是否在会话中
func (s *Session) HasPlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.players[playerID]
	return ok
}

// Events 返回事件日志副本
func (s *Session) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// appendEvent 追加一条事件记录，调用方必须已持锁
func (s *Session) appendEvent(eventType, detail string) {
	s.events = append(s.events, Event{
		ID:     uuid.New().String(),
		Type:   eventType,
		Detail: detail,
		At:     time.Now(),
	})
}

// currentPlayer 返回当前回合玩家，调用方必须已持锁
func (s *Session) currentPlayer() *Player {
	if s.status != StatusPlaying || len(s.turnOrder) == 0 {
		return nil
	}
	return s.players[s.turnOrder[s.turnIdx]]
}

// advanceTurn 把回合推进到下一个在线玩家，调用方必须已持锁
// 如果其他玩家全部离线，回合停留在原地
func (s *Session) advanceTurn() {
	for i := 1; i <= len(s.turnOrder); i++ {
		next := (s.turnIdx + i) % len(s.turnOrder)
		if s.players[s.turnOrder[next]].Connected {
			s.turnIdx = next
			return
		}
	}
}
