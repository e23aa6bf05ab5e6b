package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/quartets-live/quartets-server/internal/game/card"
)

// CommandKind 命令类型
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdStart
	CmdAsk
	CmdStats
	CmdLeaderboard
	CmdHelp
	CmdQuit
)

// Command 解析后的玩家命令
type Command struct {
	Kind   CommandKind
	Target string    // ask: 被询问的玩家
	Rank   card.Rank // ask: 点数
	Suit   card.Suit // ask: 花色
	Limit  int       // top: 条数
}

var errUsageAsk = errors.New("用法: ask <玩家> <点数> <花色>，如 ask bob 7 hearts")

// parseCommand 解析命令行输入
// 支持: start / ask <玩家> <点数> <花色> / stats / top [n] / help / quit
func parseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "start", "s":
		return Command{Kind: CmdStart}, nil

	case "ask", "a":
		if len(fields) != 4 {
			return Command{}, errUsageAsk
		}
		rank, err := card.ParseRank(fields[2])
		if err != nil {
			return Command{}, err
		}
		suit, err := card.ParseSuit(fields[3])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdAsk, Target: fields[1], Rank: rank, Suit: suit}, nil

	case "stats":
		return Command{Kind: CmdStats}, nil

	case "top", "leaderboard":
		limit := 0
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				return Command{}, errors.New("用法: top [条数]")
			}
			limit = n
		}
		return Command{Kind: CmdLeaderboard, Limit: limit}, nil

	case "help", "h", "?":
		return Command{Kind: CmdHelp}, nil

	case "quit", "q", "exit":
		return Command{Kind: CmdQuit}, nil
	}

	return Command{}, errors.New("未知命令，输入 help 查看帮助")
}
