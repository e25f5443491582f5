package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"haunted-house-be/internal/game"
	"haunted-house-be/internal/store"
)

func TestCanMove(t *testing.T) {
	e := newTestEngine(t, 1)
	s := playingSession(t, e)

	// Entrance hall has no south door at all.
	q, err := e.CanMove(s.Code, "entrance-hall", game.South)
	require.NoError(t, err)
	require.False(t, q.CanMove)

	// North is already wired to the foyer.
	q, err = e.CanMove(s.Code, "entrance-hall", game.North)
	require.NoError(t, err)
	require.True(t, q.CanMove)
	require.False(t, q.NeedsReveal)
	require.Equal(t, "foyer", q.TargetRoom)

	// East has a door but nothing behind it yet.
	q, err = e.CanMove(s.Code, "entrance-hall", game.East)
	require.NoError(t, err)
	require.True(t, q.CanMove)
	require.True(t, q.NeedsReveal)

	_, err = e.CanMove(s.Code, "no-such-room", game.North)
	require.ErrorIs(t, err, game.ErrRoomNotFound)

	_, err = e.CanMove("BAH-NOPE", "entrance-hall", game.North)
	require.ErrorIs(t, err, game.ErrSessionNotFound)
}

func TestRevealPlacesAndWiresRoom(t *testing.T) {
	e := newTestEngine(t, 42)
	s := playingSession(t, e)

	room, err := e.Reveal(s.Code, "entrance-hall", game.East)
	require.NoError(t, err)

	// The drawn template must face back toward the origin.
	require.True(t, room.HasDoor(game.West))

	// One grid step east of the entrance hall.
	require.Equal(t, 1, room.X)
	require.Equal(t, 0, room.Y)

	ms, err := e.Map(s.Code)
	require.NoError(t, err)
	require.Equal(t, room.ID, ms.Connections["entrance-hall"][game.East])
	require.Equal(t, "entrance-hall", ms.Connections[room.ID][game.West])
	require.Contains(t, ms.RevealedRooms, room.ID)
}

func TestRevealFailurePrecedence(t *testing.T) {
	e := newTestEngine(t, 42)
	s := playingSession(t, e)

	_, err := e.Reveal("BAH-NOPE", "entrance-hall", game.East)
	require.ErrorIs(t, err, game.ErrSessionNotFound)

	_, err = e.Reveal(s.Code, "no-such-room", game.East)
	require.ErrorIs(t, err, game.ErrRoomNotFound)

	_, err = e.Reveal(s.Code, "entrance-hall", game.South)
	require.ErrorIs(t, err, game.ErrNoDoor)

	_, err = e.Reveal(s.Code, "entrance-hall", game.North)
	require.ErrorIs(t, err, game.ErrAlreadyConnected)
}

func TestRevealNeverDuplicatesTemplate(t *testing.T) {
	e := newTestEngine(t, 7)
	s := playingSession(t, e)

	first, err := e.Reveal(s.Code, "entrance-hall", game.East)
	require.NoError(t, err)
	second, err := e.Reveal(s.Code, "entrance-hall", game.West)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestRevealPoolExhausted(t *testing.T) {
	// A content set with a door but no templates behind it.
	ct := game.Content{
		StartingRooms: []game.RevealedRoom{
			{ID: "hall", Name: "Hall", Doors: []game.Direction{game.North}, Floor: game.FloorGround},
		},
		StartingRoomID: "hall",
		Characters: []game.Character{
			{ID: "a"}, {ID: "b"}, {ID: "c"},
		},
	}
	rng := rand.New(rand.NewSource(1))
	e := game.NewEngine(testConfig(), ct, store.NewMemoryStore(), zap.NewNop(), rng)

	s := e.CreateSession("p1", "Alice", 0)
	for _, id := range []string{"p2", "p3"} {
		_, err := e.JoinSession(s.Code, id, "x")
		require.NoError(t, err)
	}
	for i, id := range testIDs {
		_, err := e.SelectCharacter(id, []string{"a", "b", "c"}[i])
		require.NoError(t, err)
		_, err = e.ToggleReady(id)
		require.NoError(t, err)
	}
	_, err := e.Start("p1")
	require.NoError(t, err)
	for i, v := range []int{9, 5, 3} {
		_, err = e.SubmitRoll(testIDs[i], v)
		require.NoError(t, err)
	}

	_, err = e.Reveal(s.Code, "hall", game.North)
	require.ErrorIs(t, err, game.ErrPoolExhausted)
}
