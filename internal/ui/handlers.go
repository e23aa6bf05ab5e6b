package ui

import (
	"fmt"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

// handleServerMessage 处理服务器消息
// 按消息类型分发，解析失败的消息静默丢弃
func (m *Model) handleServerMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgPlayerJoined:
		m.handleMsgPlayerJoined(msg)
	case protocol.MsgGameStart:
		m.handleMsgGameStart(msg)
	case protocol.MsgGameUpdate:
		m.handleMsgGameUpdate(msg)
	case protocol.MsgPlayerLeft:
		m.handleMsgPlayerLeft(msg)
	case protocol.MsgGameEnd:
		m.handleMsgGameEnd(msg)
	case protocol.MsgStatsResult:
		m.handleMsgStatsResult(msg)
	case protocol.MsgLeaderboardResult:
		m.handleMsgLeaderboardResult(msg)
	case protocol.MsgError:
		m.handleMsgError(msg)
	}
}

func (m *Model) handleMsgPlayerJoined(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](msg)
	if err != nil {
		return
	}
	m.appendLog(fmt.Sprintf("👤 %s 加入了游戏", payload.Player))
}

func (m *Model) handleMsgGameStart(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GameStartPayload](msg)
	if err != nil {
		return
	}
	m.phase = PhasePlaying
	m.state = payload.State
	m.appendLog("🃏 游戏开始！")
}

func (m *Model) handleMsgGameUpdate(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GameUpdatePayload](msg)
	if err != nil {
		return
	}
	m.state = payload.State
	if payload.Log != "" {
		m.appendLog(payload.Log)
	}
}

func (m *Model) handleMsgPlayerLeft(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayerLeftPayload](msg)
	if err != nil {
		return
	}
	m.appendLog(fmt.Sprintf("👋 %s 离开了游戏", payload.Player))
}

func (m *Model) handleMsgGameEnd(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GameEndPayload](msg)
	if err != nil {
		return
	}
	m.phase = PhaseGameOver
	m.standings = payload.Standings
	m.appendLog("🏁 游戏结束")
}

func (m *Model) handleMsgStatsResult(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StatsResultPayload](msg)
	if err != nil {
		return
	}
	m.stats = payload
}

func (m *Model) handleMsgLeaderboardResult(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.LeaderboardResultPayload](msg)
	if err != nil {
		return
	}
	m.leaderboard = payload.Entries
}

func (m *Model) handleMsgError(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		return
	}
	m.error = fmt.Sprintf("⚠️ %s", payload.Message)
}
