package game

import "go.uber.org/zap"

// RemapIdentity rewrites every structure keyed by oldID to newID across
// all three stores: membership, host role, socket index, roll ledger, both
// turn-order projections, and the per-member progress maps. Values and
// sequence positions are untouched. The whole rewrite happens under one
// lock with no failable step after validation, so callers never observe a
// partial remap.
func (e *Engine) RemapIdentity(code, oldID, newID string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	m := s.member(oldID)
	if m == nil {
		return nil, ErrMemberNotFound
	}

	m.ID = newID
	if s.HostID == oldID {
		s.HostID = newID
	}
	delete(e.byMember, oldID)
	e.byMember[newID] = code

	if v, ok := s.DiceRolls[oldID]; ok {
		delete(s.DiceRolls, oldID)
		s.DiceRolls[newID] = v
	}
	replaceID(s.NeedsRoll, oldID, newID)
	replaceID(s.TurnOrder, oldID, newID)

	if ps := e.players[code]; ps != nil {
		replaceID(ps.TurnOrder, oldID, newID)
		remapKey(ps.PlayerMoves, oldID, newID)
		remapKey(ps.PlayerPositions, oldID, newID)
		remapKey(ps.CharacterData, oldID, newID)
		remapKey(ps.PlayerCards, oldID, newID)
		remapKey(ps.DeadPlayers, oldID, newID)
	}
	s.touch()
	e.persist()

	e.log.Info("identity remapped",
		zap.String("session", code),
		zap.String("old", oldID),
		zap.String("new", newID),
	)
	return copySession(s), nil
}

func replaceID(ids []string, oldID, newID string) {
	for i, v := range ids {
		if v == oldID {
			ids[i] = newID
		}
	}
}

func remapKey[V any](m map[string]V, oldID, newID string) {
	if v, ok := m[oldID]; ok {
		delete(m, oldID)
		m[newID] = v
	}
}

// SyncPayload carries client-authoritative sections pushed during an
// explicit sync. Only non-nil sections are applied, and each replaces its
// whole section rather than merging: a key absent from a pushed section is
// itself meaningful (a removed feature must disappear).
type SyncPayload struct {
	PlayerMoves      map[string]int             `json:"playerMoves,omitempty"`
	PlayerPositions  map[string]string          `json:"playerPositions,omitempty"`
	Map              *MapState                  `json:"map,omitempty"`
	PlayerCards      map[string]*CardPile       `json:"playerCards,omitempty"`
	CharacterData    map[string]*CharacterStats `json:"characterData,omitempty"`
	CurrentTurnIndex *int                       `json:"currentTurnIndex,omitempty"`
}

// SyncState is the one mutation path that accepts client state verbatim,
// used to recover after disconnects. It is deliberately narrow; everything
// else is engine-derived.
func (e *Engine) SyncState(id string, payload SyncPayload) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return ErrNotInSession
	}
	ps := e.players[s.Code]
	if ps == nil {
		return ErrNotInPlayingPhase
	}

	if payload.PlayerMoves != nil {
		ps.PlayerMoves = payload.PlayerMoves
	}
	if payload.PlayerPositions != nil {
		ps.PlayerPositions = payload.PlayerPositions
	}
	if payload.PlayerCards != nil {
		ps.PlayerCards = payload.PlayerCards
	}
	if payload.CharacterData != nil {
		ps.CharacterData = payload.CharacterData
	}
	if payload.Map != nil {
		e.maps[s.Code] = payload.Map
	}
	if payload.CurrentTurnIndex != nil && len(ps.TurnOrder) > 0 {
		idx := *payload.CurrentTurnIndex % len(ps.TurnOrder)
		if idx < 0 {
			idx += len(ps.TurnOrder)
		}
		ps.CurrentTurnIndex = idx
		s.CurrentTurnIndex = idx
	}
	s.touch()
	e.persist()

	e.log.Debug("client state synced",
		zap.String("session", s.Code),
		zap.String("member", id),
	)
	return nil
}
