package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"haunted-house-be/internal/game"
)

func TestSubmitRollResolvesDistinctValues(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	res, err := e.SubmitRoll("p1", 9)
	require.NoError(t, err)
	require.False(t, res.Resolved)

	_, err = e.SubmitRoll("p2", 5)
	require.NoError(t, err)

	res, err = e.SubmitRoll("p3", 3)
	require.NoError(t, err)
	require.True(t, res.Resolved)
	require.Equal(t, []string{"p1", "p2", "p3"}, res.TurnOrder)

	s, err = e.Session(s.Code)
	require.NoError(t, err)
	require.Equal(t, game.PhasePlaying, s.Phase)
	require.Equal(t, "p1", s.CurrentTurn())
}

func TestSubmitRollReopensTiedSubset(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	_, err := e.SubmitRoll("p1", 5)
	require.NoError(t, err)
	_, err = e.SubmitRoll("p2", 5)
	require.NoError(t, err)

	res, err := e.SubmitRoll("p3", 9)
	require.NoError(t, err)
	require.False(t, res.Resolved)
	require.Equal(t, []string{"p1", "p2"}, res.TiedIDs)

	s, err = e.Session(s.Code)
	require.NoError(t, err)
	require.Equal(t, game.PhaseRolling, s.Phase)

	// The untied member's 9 stands; it may not roll again.
	_, err = e.SubmitRoll("p3", 1)
	require.ErrorIs(t, err, game.ErrRollNotNeeded)

	_, err = e.SubmitRoll("p1", 3)
	require.NoError(t, err)
	res, err = e.SubmitRoll("p2", 7)
	require.NoError(t, err)
	require.True(t, res.Resolved)
	require.Equal(t, []string{"p3", "p2", "p1"}, res.TurnOrder)
}

func TestSubmitRollRepeatedTiesShrink(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	for _, id := range testIDs {
		_, err := e.SubmitRoll(id, 4)
		require.NoError(t, err)
	}
	s, err := e.Session(s.Code)
	require.NoError(t, err)
	require.ElementsMatch(t, testIDs, s.NeedsRoll)

	// Two stay tied, one breaks free; only the pair rolls a third time.
	_, err = e.SubmitRoll("p1", 2)
	require.NoError(t, err)
	_, err = e.SubmitRoll("p2", 8)
	require.NoError(t, err)
	res, err := e.SubmitRoll("p3", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p3"}, res.TiedIDs)

	_, err = e.SubmitRoll("p1", 6)
	require.NoError(t, err)
	res, err = e.SubmitRoll("p3", 1)
	require.NoError(t, err)
	require.True(t, res.Resolved)
	require.Equal(t, []string{"p2", "p1", "p3"}, res.TurnOrder)
}

func TestLeaveOfLastPendingRollerResolves(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	_, err := e.SubmitRoll("p1", 9)
	require.NoError(t, err)
	_, err = e.SubmitRoll("p2", 5)
	require.NoError(t, err)

	// The only member still owed a roll leaves; the remaining rolls decide
	// the order instead of waiting forever.
	_, err = e.LeaveSession("p3")
	require.NoError(t, err)

	s, err = e.Session(s.Code)
	require.NoError(t, err)
	require.Equal(t, game.PhasePlaying, s.Phase)
	require.Equal(t, []string{"p1", "p2"}, s.TurnOrder)
	require.Equal(t, "p1", s.CurrentTurn())

	_, err = e.SubmitRoll("p1", 4)
	require.ErrorIs(t, err, game.ErrNotInRollingPhase)
}

func TestLeaveOfLastPendingRollerReopensTie(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	_, err := e.SubmitRoll("p1", 5)
	require.NoError(t, err)
	_, err = e.SubmitRoll("p2", 5)
	require.NoError(t, err)

	_, err = e.LeaveSession("p3")
	require.NoError(t, err)

	// The survivors are tied, so the round reopens for them.
	s, err = e.Session(s.Code)
	require.NoError(t, err)
	require.Equal(t, game.PhaseRolling, s.Phase)
	require.ElementsMatch(t, []string{"p1", "p2"}, s.NeedsRoll)

	_, err = e.SubmitRoll("p1", 3)
	require.NoError(t, err)
	res, err := e.SubmitRoll("p2", 7)
	require.NoError(t, err)
	require.True(t, res.Resolved)
	require.Equal(t, []string{"p2", "p1"}, res.TurnOrder)
}

func TestLeaveMidRollingKeepsWaiting(t *testing.T) {
	e := newTestEngine(t, 1)
	s := rollingSession(t, e)

	_, err := e.SubmitRoll("p1", 9)
	require.NoError(t, err)

	// Two rolls are still pending after the leave, so nothing resolves.
	_, err = e.LeaveSession("p2")
	require.NoError(t, err)

	s, err = e.Session(s.Code)
	require.NoError(t, err)
	require.Equal(t, game.PhaseRolling, s.Phase)
	require.Equal(t, []string{"p3"}, s.NeedsRoll)
}

func TestSubmitRollClampsValue(t *testing.T) {
	e := newTestEngine(t, 1)
	rollingSession(t, e)

	res, err := e.SubmitRoll("p1", 99)
	require.NoError(t, err)
	require.Equal(t, 16, res.Value)

	res, err = e.SubmitRoll("p2", -4)
	require.NoError(t, err)
	require.Equal(t, 1, res.Value)
}

func TestSubmitRollPhaseGuards(t *testing.T) {
	e := newTestEngine(t, 1)
	lobbySession(t, e)

	_, err := e.SubmitRoll("p1", 5)
	require.ErrorIs(t, err, game.ErrNotInRollingPhase)

	_, err = e.SubmitRoll("ghost", 5)
	require.ErrorIs(t, err, game.ErrNotInSession)
}

func TestResolutionSeedsProgressAndMap(t *testing.T) {
	e := newTestEngine(t, 1)
	s := playingSession(t, e)

	state, err := e.State(s.Code)
	require.NoError(t, err)
	require.NotNil(t, state.PlayerState)
	require.NotNil(t, state.Map)

	ps := state.PlayerState
	require.Equal(t, testIDs, ps.TurnOrder)
	for _, id := range testIDs {
		require.Equal(t, 0, ps.PlayerMoves[id])
		require.Equal(t, "entrance-hall", ps.PlayerPositions[id])
		require.NotNil(t, ps.CharacterData[id])
	}

	// Starting subgraph is wired symmetrically.
	ms := state.Map
	require.Len(t, ms.RevealedRooms, 4)
	require.Equal(t, "foyer", ms.Connections["entrance-hall"][game.North])
	require.Equal(t, "entrance-hall", ms.Connections["foyer"][game.South])
	require.Equal(t, "grand-staircase", ms.Connections["foyer"][game.North])
	require.Equal(t, "foyer", ms.Connections["grand-staircase"][game.South])
}
