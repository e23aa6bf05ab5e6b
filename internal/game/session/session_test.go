package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quartets-live/quartets-server/internal/apperrors"
	"github.com/quartets-live/quartets-server/internal/game/card"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	require.NoError(t, s.Join("bob"))

	assert.True(t, s.HasPlayer("alice"))
	assert.True(t, s.HasPlayer("bob"))
	assert.Equal(t, []string{"alice", "bob"}, s.joinOrder)
}

func TestJoin_Duplicate(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	err := s.Join("alice")
	assert.ErrorIs(t, err, apperrors.ErrDuplicatePlayer)
}

func TestJoin_AfterStart(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	require.NoError(t, s.Join("bob"))
	require.NoError(t, s.Start(2))

	err := s.Join("carol")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestStart(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	require.NoError(t, s.Join("bob"))
	require.NoError(t, s.Start(2))

	assert.Equal(t, StatusPlaying, s.Status())
	// Two players get 7 cards each, 38 left in the pile
	assert.Len(t, s.players["alice"].Hand, 7)
	assert.Len(t, s.players["bob"].Hand, 7)
	assert.Len(t, s.drawPile, 38)
	// Turn order frozen from join order, first player starts
	assert.Equal(t, []string{"alice", "bob"}, s.turnOrder)
	assert.Equal(t, 0, s.turnIdx)
}

func TestStart_NotEnoughPlayers(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	err := s.Start(2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestStart_Twice(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	require.NoError(t, s.Join("bob"))
	require.NoError(t, s.Start(2))

	err := s.Start(2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestStart_CardConservation(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	players := []string{"p1", "p2", "p3", "p4", "p5"}
	for _, p := range players {
		require.NoError(t, s.Join(p))
	}
	require.NoError(t, s.Start(2))

	seen := make(map[card.Card]bool, 52)
	total := 0
	for _, p := range s.players {
		for _, c := range p.Hand {
			assert.False(t, seen[c], "card %v dealt twice", c)
			seen[c] = true
			total++
		}
	}
	for _, c := range s.drawPile {
		assert.False(t, seen[c], "card %v appears twice", c)
		seen[c] = true
		total++
	}
	assert.Equal(t, 52, total)
}

func TestEvents_Recorded(t *testing.T) {
	t.Parallel()

	s := NewSession("g1")
	require.NoError(t, s.Join("alice"))
	require.NoError(t, s.Join("bob"))
	require.NoError(t, s.Start(2))

	events := s.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "player_joined", events[0].Type)
	assert.Equal(t, "player_joined", events[1].Type)
	assert.Equal(t, "game_start", events[2].Type)
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.At.IsZero())
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	s1 := r.GetOrCreate("g1")
	s2 := r.GetOrCreate("g1")
	assert.Same(t, s1, s2)
	assert.NotSame(t, s1, r.GetOrCreate("g2"))
	assert.Equal(t, 2, r.Count())

	assert.Same(t, s1, r.Get("g1"))
	assert.Nil(t, r.Get("missing"))
}

func TestRegistry_ConcurrentFirstAccess(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	const goroutines = 32
	results := make([]*Session, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func() {
			defer wg.Done()
			results[i] = r.GetOrCreate("g1")
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, 1, r.Count())
}
