package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel("ws://localhost:1752/ws/g1/alice", "g1", "alice")
}

func TestHandleServerMessage_GameStart(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, PhaseConnecting, m.phase)

	state := &protocol.GameStateDTO{
		GameID:      "g1",
		Status:      "playing",
		CurrentTurn: "alice",
		Players: []protocol.PlayerInfo{
			{ID: "alice", HandSize: 7, Hand: []protocol.CardInfo{{Rank: 7, Suit: "hearts"}}, Connected: true},
			{ID: "bob", HandSize: 7, Connected: true},
		},
		DrawPileCount: 38,
	}
	m.handleServerMessage(protocol.MustNewMessage(protocol.MsgGameStart, protocol.GameStartPayload{State: state}))

	assert.Equal(t, PhasePlaying, m.phase)
	require.NotNil(t, m.state)
	assert.Equal(t, "alice", m.state.CurrentTurn)

	// View renders without panicking and shows our hand
	view := m.gameView()
	assert.Contains(t, view, "♥7")
	assert.Contains(t, view, "bob")
}

func TestHandleServerMessage_UpdateAndEnd(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhasePlaying

	m.handleServerMessage(protocol.MustNewMessage(protocol.MsgGameUpdate, protocol.GameUpdatePayload{
		State: &protocol.GameStateDTO{GameID: "g1", Status: "playing"},
		Log:   "alice 向 bob 索要 ♥7，命中",
	}))
	assert.Contains(t, strings.Join(m.logLines, "\n"), "命中")

	m.handleServerMessage(protocol.MustNewMessage(protocol.MsgGameEnd, protocol.GameEndPayload{
		Standings: []protocol.StandingEntry{{Player: "alice", SetCount: 8}, {Player: "bob", SetCount: 5}},
	}))
	assert.Equal(t, PhaseGameOver, m.phase)
	require.Len(t, m.standings, 2)
	assert.Contains(t, m.gameOverView(), "alice")
}

func TestHandleServerMessage_ErrorAndJoinLeave(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m.handleServerMessage(protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{Player: "bob"}))
	m.handleServerMessage(protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{Player: "bob"}))
	log := strings.Join(m.logLines, "\n")
	assert.Contains(t, log, "加入")
	assert.Contains(t, log, "离开")

	m.handleServerMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeNotYourTurn, "还没轮到你"))
	assert.Contains(t, m.error, "还没轮到你")
}

func TestLogRingBuffer(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for i := 0; i < maxLogLines+5; i++ {
		m.appendLog("line")
	}
	assert.Len(t, m.logLines, maxLogLines)
}
