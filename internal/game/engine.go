package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"haunted-house-be/internal/config"
)

// Snapshot is the full persisted state: one record per session in each of
// the three stores, written as a whole on every mutation.
type Snapshot struct {
	Sessions map[string]*Session     `json:"sessions"`
	Players  map[string]*PlayerState `json:"players"`
	Maps     map[string]*MapState    `json:"maps"`
}

// Persister loads state once at startup and rewrites it in full after
// every mutation. Save failures are best-effort: the in-memory state stays
// authoritative for the process lifetime.
type Persister interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// Engine owns all session, player, and map state and is their sole writer
// (the sync intent being the one documented exception). A single mutex
// serializes intents, so no intent ever observes another's partial writes.
type Engine struct {
	mu  sync.Mutex
	log *zap.Logger
	cfg config.Config

	content Content
	rng     Rand
	store   Persister

	sessions map[string]*Session
	players  map[string]*PlayerState
	maps     map[string]*MapState
	byMember map[string]string // connection id -> session code
}

// NewEngine builds the engine and loads persisted state. A nil rng falls
// back to a time-seeded source.
func NewEngine(cfg config.Config, content Content, store Persister, log *zap.Logger, rng Rand) *Engine {
	if rng == nil {
		rng = defaultRand()
	}
	e := &Engine{
		log:      log,
		cfg:      cfg,
		content:  content,
		rng:      rng,
		store:    store,
		sessions: make(map[string]*Session),
		players:  make(map[string]*PlayerState),
		maps:     make(map[string]*MapState),
		byMember: make(map[string]string),
	}

	snap, err := store.Load()
	if err != nil {
		log.Error("loading persisted state failed, starting fresh", zap.Error(err))
		return e
	}
	if snap.Sessions != nil {
		e.sessions = snap.Sessions
	}
	if snap.Players != nil {
		e.players = snap.Players
	}
	if snap.Maps != nil {
		e.maps = snap.Maps
	}
	for code, s := range e.sessions {
		for _, m := range s.Members {
			e.byMember[m.ID] = code
		}
	}
	log.Info("engine state loaded",
		zap.Int("sessions", len(e.sessions)),
		zap.Int("player_states", len(e.players)),
		zap.Int("maps", len(e.maps)),
	)
	return e
}

// persist flushes the full snapshot. Errors are logged and swallowed; the
// caller's mutation is never rolled back. Must be called with e.mu held.
func (e *Engine) persist() {
	snap := Snapshot{
		Sessions: e.sessions,
		Players:  e.players,
		Maps:     e.maps,
	}
	if err := e.store.Save(snap); err != nil {
		e.log.Error("state save failed", zap.Error(err))
	}
}

// teardown removes a session and its player/map state. Must be called with
// e.mu held.
func (e *Engine) teardown(code string) {
	s := e.sessions[code]
	if s != nil {
		for _, m := range s.Members {
			delete(e.byMember, m.ID)
		}
	}
	delete(e.sessions, code)
	delete(e.players, code)
	delete(e.maps, code)
}

// sweepStale drops empty sessions and sessions with no activity for a full
// TTL. Every intent stamps its session, so a game being played is never
// swept. Must be called with e.mu held.
func (e *Engine) sweepStale() {
	if e.cfg.SessionTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-e.cfg.SessionTTL)
	for code, s := range e.sessions {
		last := s.LastActive
		if last.IsZero() {
			last = s.CreatedAt
		}
		if len(s.Members) == 0 || last.Before(cutoff) {
			e.log.Info("sweeping stale session", zap.String("session", code))
			e.teardown(code)
		}
	}
}

// Session returns a detached copy of the session with the given code.
func (e *Engine) Session(code string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(s), nil
}

// SessionByMember returns a detached copy of the session the given
// connection id belongs to.
func (e *Engine) SessionByMember(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	return copySession(s), nil
}

func (e *Engine) sessionByMember(id string) *Session {
	code, ok := e.byMember[id]
	if !ok {
		return nil
	}
	return e.sessions[code]
}

// State returns the broadcast snapshot for a session. The snapshot is
// deep-copied under the lock: transports marshal it on their own
// goroutines, after intents from other connections may already be writing.
func (e *Engine) State(code string) (FullState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[code]
	if !ok {
		return FullState{}, ErrSessionNotFound
	}
	return FullState{
		Session:     copySession(s),
		PlayerState: copyPlayerState(e.players[code]),
		Map:         copyMapState(e.maps[code]),
	}, nil
}

// Content exposes the static reference data for read-only transports.
func (e *Engine) Content() Content {
	return e.content
}
