package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"haunted-house-be/internal/game"
)

const (
	sessionsFile = "sessions.json"
	playersFile  = "players.json"
	mapsFile     = "maps.json"
)

// FileStore persists engine state as three JSON snapshot files under a
// data directory, one per store, rewritten in full on every save.
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

type sessionsRecord struct {
	Sessions    map[string]*game.Session `json:"sessions"`
	LastUpdated time.Time                `json:"lastUpdated"`
}

type playersRecord struct {
	Games       map[string]*game.PlayerState `json:"games"`
	LastUpdated time.Time                    `json:"lastUpdated"`
}

type mapsRecord struct {
	Maps        map[string]*game.MapState `json:"maps"`
	LastUpdated time.Time                 `json:"lastUpdated"`
}

// Load reads whatever snapshot files exist. Missing files are fine: the
// corresponding store just starts empty. Unknown fields in old files are
// ignored, so the layout stays additive.
func (f *FileStore) Load() (game.Snapshot, error) {
	var snap game.Snapshot

	var sr sessionsRecord
	if err := f.readFile(sessionsFile, &sr); err != nil {
		return snap, err
	}
	snap.Sessions = sr.Sessions

	var pr playersRecord
	if err := f.readFile(playersFile, &pr); err != nil {
		return snap, err
	}
	snap.Players = pr.Games

	var mr mapsRecord
	if err := f.readFile(mapsFile, &mr); err != nil {
		return snap, err
	}
	snap.Maps = mr.Maps

	return snap, nil
}

func (f *FileStore) readFile(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			f.log.Info("no snapshot found, starting fresh", zap.String("file", name))
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// Save rewrites all three snapshot files.
func (f *FileStore) Save(snap game.Snapshot) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	now := time.Now()

	if err := f.writeFile(sessionsFile, sessionsRecord{Sessions: snap.Sessions, LastUpdated: now}); err != nil {
		return err
	}
	if err := f.writeFile(playersFile, playersRecord{Games: snap.Players, LastUpdated: now}); err != nil {
		return err
	}
	return f.writeFile(mapsFile, mapsRecord{Maps: snap.Maps, LastUpdated: now})
}

func (f *FileStore) writeFile(name string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, name), data, 0o644)
}
