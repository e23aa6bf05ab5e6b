package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quartets-live/quartets-server/internal/client"
	"github.com/quartets-live/quartets-server/internal/protocol"
)

// 客户端阶段
type Phase int

const (
	PhaseConnecting Phase = iota
	PhaseLobby
	PhasePlaying
	PhaseGameOver
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ConnectionClosedMsg 连接断开消息
type ConnectionClosedMsg struct{}

const maxLogLines = 8

// Model 终端客户端的 bubbletea model
type Model struct {
	client *client.Client
	phase  Phase
	error  string

	gameID   string
	playerID string

	// 最近一次快照与操作日志
	state       *protocol.GameStateDTO
	logLines    []string
	standings   []protocol.StandingEntry
	stats       *protocol.StatsResultPayload
	leaderboard []protocol.LeaderboardEntry

	// 网络消息通道，由客户端回调写入
	messages chan tea.Msg

	// UI 组件
	input  textinput.Model
	width  int
	height int
}

// NewModel 创建客户端 model
func NewModel(serverURL, gameID, playerID string) *Model {
	ti := textinput.New()
	ti.Placeholder = "输入命令，help 查看帮助"
	ti.CharLimit = 64
	ti.Width = 48
	ti.Focus()

	messages := make(chan tea.Msg, 64)
	c := client.NewClient(serverURL, gameID, playerID)
	c.OnMessage = func(msg *protocol.Message) {
		select {
		case messages <- ServerMessage{Msg: msg}:
		default:
		}
	}
	c.OnClose = func() {
		select {
		case messages <- ConnectionClosedMsg{}:
		default:
		}
	}

	return &Model{
		client:   c,
		phase:    PhaseConnecting,
		gameID:   gameID,
		playerID: playerID,
		messages: messages,
		input:    ti,
	}
}

// Init 实现 tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.connect, m.waitForMessage)
}

// connect 建立连接并加入游戏
func (m *Model) connect() tea.Msg {
	if err := m.client.Connect(); err != nil {
		return ConnectionErrorMsg{Err: err}
	}
	if err := m.client.Join(); err != nil {
		return ConnectionErrorMsg{Err: err}
	}
	return ConnectedMsg{}
}

// waitForMessage 等待下一条网络消息
func (m *Model) waitForMessage() tea.Msg {
	return <-m.messages
}

// Update 实现 tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.client.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleCommand(m.input.Value())
		}

	case ConnectedMsg:
		m.phase = PhaseLobby
		return m, nil

	case ConnectionErrorMsg:
		m.error = fmt.Sprintf("连接失败: %v", msg.Err)
		return m, nil

	case ConnectionClosedMsg:
		m.error = "连接已断开"
		return m, tea.Quit

	case ServerMessage:
		m.handleServerMessage(msg.Msg)
		return m, m.waitForMessage
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleCommand 解析并执行输入的命令
func (m *Model) handleCommand(raw string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.error = ""

	cmd, err := parseCommand(raw)
	if err != nil {
		m.error = err.Error()
		return m, nil
	}

	switch cmd.Kind {
	case CmdNone:
		return m, nil
	case CmdStart:
		err = m.client.Start()
	case CmdAsk:
		err = m.client.Ask(cmd.Target, int(cmd.Rank), string(cmd.Suit))
	case CmdStats:
		err = m.client.GetStats()
	case CmdLeaderboard:
		err = m.client.GetLeaderboard(cmd.Limit)
	case CmdHelp:
		m.appendLog(helpText)
	case CmdQuit:
		m.client.Close()
		return m, tea.Quit
	}

	if err != nil {
		m.error = err.Error()
	}
	return m, nil
}

// appendLog 追加一条日志，保留最近几条
func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

const helpText = "start 开始 | ask <玩家> <点数> <花色> 要牌 | stats 战绩 | top [n] 排行榜 | quit 退出"
