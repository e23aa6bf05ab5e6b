package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quartets-live/quartets-server/internal/protocol"
)

// View 实现 tea.Model
func (m *Model) View() string {
	var body string
	switch m.phase {
	case PhaseConnecting:
		body = m.connectingView()
	case PhaseLobby:
		body = m.lobbyView()
	case PhasePlaying:
		body = m.gameView()
	case PhaseGameOver:
		body = m.gameOverView()
	}
	return docStyle.Render(body)
}

func (m *Model) connectingView() string {
	s := "🔌 正在连接服务器..."
	if m.error != "" {
		s += "\n\n" + errorStyle.Render(m.error)
	}
	return s
}

func (m *Model) lobbyView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🎴 四重奏"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("游戏: %s  玩家: %s\n\n", m.gameID, m.playerID))

	sb.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"等待其他玩家加入...",
		"",
		"  start  开始游戏（至少 2 人）",
		"  stats  我的战绩",
		"  top    排行榜",
	)))
	sb.WriteString("\n")
	sb.WriteString(m.renderLog())
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m *Model) gameView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🎴 四重奏"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderPlayers())
	sb.WriteString("\n")
	sb.WriteString(m.renderHand())
	sb.WriteString("\n")
	sb.WriteString(m.renderLog())
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m *Model) gameOverView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("🏁 游戏结束"))
	sb.WriteString("\n\n")
	for i, e := range m.standings {
		icon := "  "
		if i == 0 {
			icon = "🏆"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %-12s %d 组\n", icon, i+1, e.Player, e.SetCount))
	}
	sb.WriteString("\n")
	sb.WriteString(m.renderLog())
	sb.WriteString(m.renderFooter())
	return sb.String()
}

// renderPlayers 渲染所有玩家概况，自己的手牌只显示数量
func (m *Model) renderPlayers() string {
	if m.state == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("摸牌堆: %d 张\n", m.state.DrawPileCount))
	for _, p := range m.state.Players {
		line := fmt.Sprintf("%-12s 手牌 %2d  四张组 %d", p.ID, p.HandSize, len(p.Quartets))
		if !p.Connected {
			line = dimStyle.Render(line + "  (离线)")
		} else if p.ID == m.state.CurrentTurn {
			line = turnStyle.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderHand 渲染自己的手牌
func (m *Model) renderHand() string {
	if m.state == nil {
		return ""
	}

	var mine []protocol.CardInfo
	for _, p := range m.state.Players {
		if p.ID == m.playerID {
			mine = p.Hand
			break
		}
	}
	if len(mine) == 0 {
		return dimStyle.Render("（手牌已空）") + "\n"
	}

	cards := make([]string, len(mine))
	for i, c := range mine {
		cards[i] = renderCard(c)
	}
	return "手牌: " + strings.Join(cards, " ") + "\n"
}

// renderLog 渲染最近的操作日志与统计查询结果
func (m *Model) renderLog() string {
	var sb strings.Builder

	if m.stats != nil {
		sb.WriteString(fmt.Sprintf("📊 %s: %d 局 %d 胜, 共 %d 组, 单局最多 %d 组\n",
			m.stats.PlayerID, m.stats.TotalGames, m.stats.Wins,
			m.stats.TotalQuartets, m.stats.BestQuartets))
	}
	if len(m.leaderboard) > 0 {
		sb.WriteString("🏆 排行榜\n")
		for _, e := range m.leaderboard {
			sb.WriteString(fmt.Sprintf("  %2d. %-12s %d 组\n", e.Rank, e.PlayerID, e.Quartets))
		}
	}
	for _, line := range m.logLines {
		sb.WriteString(logStyle.Render(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *Model) renderFooter() string {
	s := promptStyle.Render(m.input.View())
	if m.error != "" {
		s += "\n" + errorStyle.Render(m.error)
	}
	return s
}
