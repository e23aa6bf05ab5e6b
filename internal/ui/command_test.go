package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/game/card"
)

func TestParseCommand_Ask(t *testing.T) {
	t.Parallel()

	cmd, err := parseCommand("ask bob 7 hearts")
	require.NoError(t, err)
	assert.Equal(t, CmdAsk, cmd.Kind)
	assert.Equal(t, "bob", cmd.Target)
	assert.Equal(t, card.Rank7, cmd.Rank)
	assert.Equal(t, card.Hearts, cmd.Suit)

	// Face cards and the short alias
	cmd, err = parseCommand("a alice K spades")
	require.NoError(t, err)
	assert.Equal(t, CmdAsk, cmd.Kind)
	assert.Equal(t, card.RankK, cmd.Rank)
	assert.Equal(t, card.Spades, cmd.Suit)
}

func TestParseCommand_AskErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"ask",
		"ask bob",
		"ask bob 7",
		"ask bob 7 hearts extra",
		"ask bob 14 hearts",
		"ask bob 7 stars",
	} {
		_, err := parseCommand(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestParseCommand_Simple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  CommandKind
	}{
		{"start", CmdStart},
		{"s", CmdStart},
		{"  START  ", CmdStart},
		{"stats", CmdStats},
		{"top", CmdLeaderboard},
		{"leaderboard", CmdLeaderboard},
		{"help", CmdHelp},
		{"?", CmdHelp},
		{"quit", CmdQuit},
		{"q", CmdQuit},
		{"", CmdNone},
		{"   ", CmdNone},
	}

	for _, tt := range tests {
		cmd, err := parseCommand(tt.input)
		require.NoError(t, err, "input=%q", tt.input)
		assert.Equal(t, tt.kind, cmd.Kind, "input=%q", tt.input)
	}
}

func TestParseCommand_LeaderboardLimit(t *testing.T) {
	t.Parallel()

	cmd, err := parseCommand("top 25")
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.Limit)

	_, err = parseCommand("top zero")
	assert.Error(t, err)

	_, err = parseCommand("top -1")
	assert.Error(t, err)
}

func TestParseCommand_Unknown(t *testing.T) {
	t.Parallel()

	_, err := parseCommand("dance")
	assert.Error(t, err)
}
