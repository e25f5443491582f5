package game_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"haunted-house-be/internal/game"
)

func TestCreateSession(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)

	require.True(t, strings.HasPrefix(s.Code, "BAH-"))
	require.Len(t, s.Code, len("BAH-")+6)
	require.Equal(t, "p1", s.HostID)
	require.Equal(t, game.PhaseLobby, s.Phase)
	require.Len(t, s.Members, 1)
	require.Equal(t, game.StatusJoined, s.Members[0].Status)
}

func TestCreateSessionCapacityClamped(t *testing.T) {
	e := newTestEngine(t, 1)

	s := e.CreateSession("p1", "Alice", 4)
	require.Equal(t, 4, s.MaxPlayers)

	// Out-of-range requests fall back to the configured bounds.
	s = e.CreateSession("p2", "Bob", 99)
	require.Equal(t, 6, s.MaxPlayers)
	s = e.CreateSession("p3", "Cleo", 1)
	require.Equal(t, 3, s.MaxPlayers)
}

func TestJoinSessionIdempotent(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)

	joined, err := e.JoinSession(s.Code, "p2", "Bob")
	require.NoError(t, err)
	require.Len(t, joined.Members, 2)

	// Retried join with the same id is a no-op success.
	joined, err = e.JoinSession(s.Code, "p2", "Bob")
	require.NoError(t, err)
	require.Len(t, joined.Members, 2)

	_, err = e.JoinSession("BAH-NOPE", "p3", "Cleo")
	require.ErrorIs(t, err, game.ErrSessionNotFound)
}

func TestJoinSessionFull(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)
	for _, id := range []string{"p2", "p3", "p4", "p5", "p6"} {
		_, err := e.JoinSession(s.Code, id, "x")
		require.NoError(t, err)
	}

	_, err := e.JoinSession(s.Code, "p7", "Overflow")
	require.ErrorIs(t, err, game.ErrSessionFull)
}

func TestLeaveReassignsHost(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)
	_, err := e.JoinSession(s.Code, "p2", "Bob")
	require.NoError(t, err)
	_, err = e.JoinSession(s.Code, "p3", "Cleo")
	require.NoError(t, err)

	res, err := e.LeaveSession("p1")
	require.NoError(t, err)
	require.True(t, res.WasHost)
	require.False(t, res.Deleted)
	require.Equal(t, "p2", res.Session.HostID)
}

func TestLeaveLastMemberDeletesSession(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)

	res, err := e.LeaveSession("p1")
	require.NoError(t, err)
	require.True(t, res.Deleted)

	_, err = e.Session(s.Code)
	require.ErrorIs(t, err, game.ErrSessionNotFound)

	_, err = e.LeaveSession("p1")
	require.ErrorIs(t, err, game.ErrNotInSession)
}

func TestSelectCharacter(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)
	_, err := e.JoinSession(s.Code, "p2", "Bob")
	require.NoError(t, err)

	updated, err := e.SelectCharacter("p1", "professor-longfellow")
	require.NoError(t, err)
	require.Equal(t, game.StatusSelecting, updated.Members[0].Status)

	_, err = e.SelectCharacter("p2", "professor-longfellow")
	require.ErrorIs(t, err, game.ErrCharacterTaken)

	_, err = e.SelectCharacter("p2", "no-such-character")
	require.ErrorIs(t, err, game.ErrUnknownCharacter)

	// Clearing the selection frees the character for others.
	_, err = e.SelectCharacter("p1", "")
	require.NoError(t, err)
	_, err = e.SelectCharacter("p2", "professor-longfellow")
	require.NoError(t, err)
}

func TestToggleReadyRequiresCharacter(t *testing.T) {
	e := newTestEngine(t, 1)
	e.CreateSession("p1", "Alice", 0)

	_, err := e.ToggleReady("p1")
	require.ErrorIs(t, err, game.ErrNoCharacter)

	_, err = e.SelectCharacter("p1", "jenny-leclerc")
	require.NoError(t, err)

	updated, err := e.ToggleReady("p1")
	require.NoError(t, err)
	require.Equal(t, game.StatusReady, updated.Members[0].Status)

	updated, err = e.ToggleReady("p1")
	require.NoError(t, err)
	require.Equal(t, game.StatusSelecting, updated.Members[0].Status)
}

func TestStartGates(t *testing.T) {
	e := newTestEngine(t, 1)
	s := e.CreateSession("p1", "Alice", 0)

	_, err := e.Start("p1")
	require.ErrorIs(t, err, game.ErrNotEnoughPlayers)

	_, err = e.JoinSession(s.Code, "p2", "Bob")
	require.NoError(t, err)
	_, err = e.JoinSession(s.Code, "p3", "Cleo")
	require.NoError(t, err)

	_, err = e.Start("p2")
	require.ErrorIs(t, err, game.ErrNotHost)

	_, err = e.Start("p1")
	require.ErrorIs(t, err, game.ErrMissingCharacters)

	chars := []string{"professor-longfellow", "heather-granville", "ox-bellows"}
	for i, id := range []string{"p1", "p2", "p3"} {
		_, err = e.SelectCharacter(id, chars[i])
		require.NoError(t, err)
	}

	_, err = e.Start("p1")
	require.ErrorIs(t, err, game.ErrNotAllReady)

	_, err = e.ToggleReady("p2")
	require.NoError(t, err)
	_, err = e.ToggleReady("p3")
	require.NoError(t, err)

	started, err := e.Start("p1")
	require.NoError(t, err)
	require.Equal(t, game.PhaseRolling, started.Phase)
	require.ElementsMatch(t, []string{"p1", "p2", "p3"}, started.NeedsRoll)

	_, err = e.Start("p1")
	require.ErrorIs(t, err, game.ErrNotInLobby)
}

func TestUpdateName(t *testing.T) {
	e := newTestEngine(t, 1)
	e.CreateSession("p1", "Alice", 0)

	updated, err := e.UpdateName("p1", "Alicia")
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.Members[0].Name)

	// Empty names are ignored rather than erased.
	updated, err = e.UpdateName("p1", "")
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.Members[0].Name)
}
