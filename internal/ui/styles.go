package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quartets-live/quartets-server/internal/game/card"
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	promptStyle = lipgloss.NewStyle().MarginTop(1)
)

// renderCard 渲染一张牌，红花色用红底样式
func renderCard(c protocol.CardInfo) string {
	suit := card.Suit(c.Suit)
	text := " " + suit.Symbol() + card.Rank(c.Rank).String() + " "
	if suit == card.Hearts || suit == card.Diamonds {
		return redStyle.Render(text)
	}
	return blackStyle.Render(text)
}
