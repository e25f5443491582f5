package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"haunted-house-be/internal/game"
)

func TestFileStoreEmptyDir(t *testing.T) {
	fs := NewFileStore(t.TempDir(), zap.NewNop())

	snap, err := fs.Load()
	require.NoError(t, err)
	require.Nil(t, snap.Sessions)
	require.Nil(t, snap.Players)
	require.Nil(t, snap.Maps)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, zap.NewNop())

	snap := game.Snapshot{
		Sessions: map[string]*game.Session{
			"BAH-ABC123": {
				Code:   "BAH-ABC123",
				HostID: "p1",
				Phase:  game.PhasePlaying,
				Members: []*game.Member{
					{ID: "p1", Name: "Alice", Status: game.StatusReady, CharacterID: "jenny-leclerc"},
				},
				TurnOrder: []string{"p1"},
			},
		},
		Players: map[string]*game.PlayerState{
			"BAH-ABC123": {
				TurnOrder:       []string{"p1"},
				PlayerMoves:     map[string]int{"p1": 3},
				PlayerPositions: map[string]string{"p1": "foyer"},
			},
		},
		Maps: map[string]*game.MapState{
			"BAH-ABC123": {
				RevealedRooms: map[string]*game.RevealedRoom{
					"foyer": {ID: "foyer", Name: "Foyer", Doors: []game.Direction{game.North}},
				},
				Connections: map[string]map[game.Direction]string{
					"foyer": {game.North: "grand-staircase"},
				},
			},
		},
	}
	require.NoError(t, fs.Save(snap))

	for _, name := range []string{sessionsFile, playersFile, mapsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Equal(t, snap.Sessions, loaded.Sessions)
	require.Equal(t, snap.Players, loaded.Players)
	require.Equal(t, snap.Maps, loaded.Maps)
}

func TestFileStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	fs := NewFileStore(dir, zap.NewNop())

	require.NoError(t, fs.Save(game.Snapshot{}))
	_, err := os.Stat(dir)
	require.NoError(t, err)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionsFile), []byte("{nope"), 0o644))

	fs := NewFileStore(dir, zap.NewNop())
	_, err := fs.Load()
	require.Error(t, err)
}
