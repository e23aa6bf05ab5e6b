package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/quartets-live/quartets-server/internal/ui"
)

func main() {
	serverAddr := flag.String("server", "localhost:1752", "服务器地址")
	gameID := flag.String("game", "lobby", "游戏 ID")
	playerID := flag.String("player", "", "玩家 ID，留空则随机生成")
	flag.Parse()

	if *playerID == "" {
		*playerID = uuid.New().String()[:8]
	}

	serverURL := fmt.Sprintf("ws://%s/ws/%s/%s", *serverAddr, *gameID, *playerID)

	model := ui.NewModel(serverURL, *gameID, *playerID)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
