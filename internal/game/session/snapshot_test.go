package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/game/card"
)

func TestSnapshotFor_RedactsOpponentHands(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	dto := s.SnapshotFor("a")

	assert.Equal(t, "g1", dto.GameID)
	assert.Equal(t, "playing", dto.Status)
	assert.Equal(t, "a", dto.CurrentTurn)
	assert.Equal(t, 2, dto.DrawPileCount)
	require.Len(t, dto.Players, 3)

	// Join order preserved
	assert.Equal(t, "a", dto.Players[0].ID)
	assert.Equal(t, "b", dto.Players[1].ID)
	assert.Equal(t, "c", dto.Players[2].ID)

	// Own hand visible, opponents reduced to counts
	assert.Len(t, dto.Players[0].Hand, 2)
	assert.Equal(t, 2, dto.Players[0].HandSize)
	assert.Nil(t, dto.Players[1].Hand)
	assert.Equal(t, 2, dto.Players[1].HandSize)
	assert.Nil(t, dto.Players[2].Hand)
	assert.Equal(t, 1, dto.Players[2].HandSize)
}

func TestSnapshotFor_Lobby(t *testing.T) {
	t.Parallel()

	s := NewSession("g9")
	require.NoError(t, s.Join("a"))

	dto := s.SnapshotFor("a")
	assert.Equal(t, "lobby", dto.Status)
	assert.Empty(t, dto.CurrentTurn)
	assert.Zero(t, dto.DrawPileCount)
}

func TestSnapshotFor_QuartetsVisibleToAll(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	s.players["b"].Quartets = []card.Rank{card.Rank7, card.RankK}

	dto := s.SnapshotFor("a")
	assert.Equal(t, []int{7, 13}, dto.Players[1].Quartets)
}

func TestSnapshotFor_DisconnectedFlag(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	require.True(t, s.Disconnect("c"))

	dto := s.SnapshotFor("a")
	assert.True(t, dto.Players[0].Connected)
	assert.False(t, dto.Players[2].Connected)
}
