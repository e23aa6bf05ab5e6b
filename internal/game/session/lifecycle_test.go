package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/apperrors"
	"github.com/quartets-live/quartets-server/internal/game/card"
)

func TestDisconnect_MarksOffline(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	handBefore := len(s.players["b"].Hand)

	require.True(t, s.Disconnect("b"))

	// Hand and quartets stay in the game, player only goes offline
	assert.False(t, s.players["b"].Connected)
	assert.Len(t, s.players["b"].Hand, handBefore)
	assert.True(t, s.HasPlayer("b"))

	// Second disconnect is a no-op
	assert.False(t, s.Disconnect("b"))
	// Unknown player is a no-op
	assert.False(t, s.Disconnect("zed"))
}

func TestDisconnect_OnOwnTurn_Advances(t *testing.T) {
	t.Parallel()

	// Turn order [a, b, c], it is b's turn
	s := threePlayerSession()
	s.turnIdx = 1

	require.True(t, s.Disconnect("b"))
	// Turn moves to c without any action from b
	assert.Equal(t, "c", s.turnOrder[s.turnIdx])
}

func TestDisconnect_NotTheirTurn_NoAdvance(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	require.True(t, s.Disconnect("c"))
	assert.Equal(t, "a", s.turnOrder[s.turnIdx])
}

func TestStart_AfterLobbyDisconnect_SkipsOfflinePlayer(t *testing.T) {
	t.Parallel()

	// "a" joins first and drops before the game starts
	s := NewSession("g1")
	require.NoError(t, s.Join("a"))
	require.NoError(t, s.Join("b"))
	require.NoError(t, s.Join("c"))
	require.True(t, s.Disconnect("a"))

	require.NoError(t, s.Start(2))

	// The opening turn lands on the first connected player, not on "a"
	assert.Equal(t, "b", s.turnOrder[s.turnIdx])
	assert.Equal(t, "b", s.SnapshotFor("b").CurrentTurn)

	// The offline player cannot act, the connected player can
	_, err := s.Ask("a", "b", s.players["b"].Hand[0].Rank, s.players["b"].Hand[0].Suit)
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)

	wanted := s.players["c"].Hand[0]
	_, err = s.Ask("b", "c", wanted.Rank, wanted.Suit)
	assert.NoError(t, err)
}

func TestAsk_OfflineAsker_Rejected(t *testing.T) {
	t.Parallel()

	// Force the turn onto an offline player: both opponents are offline
	// too, so the disconnect-time advance has nowhere to go
	s := threePlayerSession()
	s.players["b"].Connected = false
	s.players["c"].Connected = false
	require.True(t, s.Disconnect("a"))
	require.Equal(t, "a", s.turnOrder[s.turnIdx])

	wanted := s.players["b"].Hand[0]
	_, err := s.Ask("a", "b", wanted.Rank, wanted.Suit)
	assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
}

func TestStandings_OrderAndTies(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	s.players["a"].Quartets = []card.Rank{card.Rank2}
	s.players["b"].Quartets = []card.Rank{card.Rank5, card.Rank9}
	s.players["c"].Quartets = []card.Rank{card.Rank3}

	standings := s.Standings()
	require.Len(t, standings, 3)
	assert.Equal(t, "b", standings[0].Player)
	assert.Equal(t, 2, standings[0].SetCount)
	// a and c tie with one quartet each; join order breaks the tie
	assert.Equal(t, "a", standings[1].Player)
	assert.Equal(t, "c", standings[2].Player)
}

func TestCheckEnd_NotYet(t *testing.T) {
	t.Parallel()

	s := threePlayerSession()
	s.mu.Lock()
	finished := s.checkEnd()
	s.mu.Unlock()
	assert.False(t, finished)
	assert.Equal(t, StatusPlaying, s.Status())
}

// TestFullGame_Termination plays a two-player game to the end with a
// simple deterministic strategy: while the opponent has cards, ask for
// one of them (always a hit, since a card cannot be in two hands); once
// the opponent is empty, ask for any card outside the own hand (always
// a miss, draining the pile and passing the turn).
func TestFullGame_Termination(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("a"))
	require.NoError(t, s.Join("b"))
	require.NoError(t, s.Start(2))

	fullDeck := card.NewDeck()
	finishes := 0

	for turns := 0; s.Status() != StatusFinished; turns++ {
		require.Less(t, turns, 10000, "game did not terminate")

		askerID := s.turnOrder[s.turnIdx]
		targetID := "b"
		if askerID == "b" {
			targetID = "a"
		}
		asker, target := s.players[askerID], s.players[targetID]

		var wanted card.Card
		if len(target.Hand) > 0 {
			wanted = target.Hand[0]
		} else {
			found := false
			for _, fc := range fullDeck {
				if !holds(asker.Hand, fc) {
					wanted, found = fc, true
					break
				}
			}
			require.True(t, found, "no legal ask available")
		}

		res, err := s.Ask(askerID, targetID, wanted.Rank, wanted.Suit)
		require.NoError(t, err)
		if res.Finished {
			finishes++
		}
	}

	// Finished exactly once, pile and hands empty, all 13 quartets placed
	assert.Equal(t, 1, finishes)
	assert.Empty(t, s.drawPile)
	total := 0
	for _, entry := range s.Standings() {
		total += entry.SetCount
	}
	assert.Equal(t, 13, total)
	for _, p := range s.players {
		assert.Empty(t, p.Hand)
	}

	// Terminal state rejects everything
	_, err := s.Ask("a", "b", card.Rank2, card.Hearts)
	assert.Error(t, err)
	assert.Error(t, s.Join("zed"))
	assert.Error(t, s.Start(2))
}
