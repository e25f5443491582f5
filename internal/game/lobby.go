package game

import (
	"time"

	"go.uber.org/zap"
)

const codePrefix = "BAH-"

// CreateSession opens a new lobby with the creator as host and sole member.
// maxPlayers is clamped into the configured capacity range; zero means the
// configured maximum.
func (e *Engine) CreateSession(hostID, hostName string, maxPlayers int) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sweepStale()

	code := codePrefix + e.randCode(6)
	for _, taken := e.sessions[code]; taken; _, taken = e.sessions[code] {
		code = codePrefix + e.randCode(6)
	}

	if hostName == "" {
		hostName = "Host"
	}
	if maxPlayers <= 0 || maxPlayers > e.cfg.MaxPlayers {
		maxPlayers = e.cfg.MaxPlayers
	}
	if maxPlayers < e.cfg.MinPlayers {
		maxPlayers = e.cfg.MinPlayers
	}
	now := time.Now()
	s := &Session{
		Code:       code,
		HostID:     hostID,
		MinPlayers: e.cfg.MinPlayers,
		MaxPlayers: maxPlayers,
		CreatedAt:  now,
		LastActive: now,
		Phase:      PhaseLobby,
		Members: []*Member{
			{ID: hostID, Name: hostName, Status: StatusJoined},
		},
	}
	e.sessions[code] = s
	e.byMember[hostID] = code
	e.persist()

	e.log.Info("session created",
		zap.String("session", code),
		zap.String("host", hostID),
	)
	return copySession(s)
}

// JoinSession appends a member. Re-joining with an id already present is a
// no-op success, so retried intents stay safe.
func (e *Engine) JoinSession(code, id, name string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.member(id) != nil {
		return copySession(s), nil
	}
	if len(s.Members) >= s.MaxPlayers {
		return nil, ErrSessionFull
	}

	if name == "" {
		name = "Player"
	}
	s.Members = append(s.Members, &Member{ID: id, Name: name, Status: StatusJoined})
	e.byMember[id] = code
	s.touch()
	e.persist()

	e.log.Info("member joined",
		zap.String("session", code),
		zap.String("member", id),
	)
	return copySession(s), nil
}

// LeaveResult reports what happened to the session a member left.
type LeaveResult struct {
	Session *Session
	WasHost bool
	Deleted bool
}

// LeaveSession removes the member from whatever session it is in. The
// session is torn down when its last member leaves; otherwise the host role
// passes to the next remaining member if the host left.
func (e *Engine) LeaveSession(id string) (LeaveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return LeaveResult{}, ErrNotInSession
	}

	wasHost := s.HostID == id
	for i, m := range s.Members {
		if m.ID == id {
			s.Members = append(s.Members[:i], s.Members[i+1:]...)
			break
		}
	}
	delete(e.byMember, id)
	e.dropFromGameState(s, id)

	if len(s.Members) == 0 {
		e.teardown(s.Code)
		e.persist()
		e.log.Info("session deleted", zap.String("session", s.Code))
		return LeaveResult{WasHost: wasHost, Deleted: true}, nil
	}

	if wasHost {
		s.HostID = s.Members[0].ID
	}
	s.touch()
	e.persist()
	return LeaveResult{Session: copySession(s), WasHost: wasHost}, nil
}

// dropFromGameState scrubs a departed member from the roll ledger, turn
// order, and progress maps so the remaining members are never blocked on
// it. The leaver may have been the last pending roller; resolution cannot
// wait for a roll that will never come, so the resolve step runs here too.
// Must be called with e.mu held.
func (e *Engine) dropFromGameState(s *Session, id string) {
	delete(s.DiceRolls, id)
	s.NeedsRoll = removeID(s.NeedsRoll, id)
	s.TurnOrder = removeTurnEntry(s.TurnOrder, &s.CurrentTurnIndex, id)

	if s.Phase == PhaseRolling && len(s.NeedsRoll) == 0 && len(s.DiceRolls) > 0 {
		e.resolveRolls(s)
	}

	ps := e.players[s.Code]
	if ps == nil {
		return
	}
	ps.TurnOrder = removeTurnEntry(ps.TurnOrder, &ps.CurrentTurnIndex, id)
	delete(ps.PlayerMoves, id)
	delete(ps.PlayerPositions, id)
	delete(ps.CharacterData, id)
	delete(ps.PlayerCards, id)
	delete(ps.DeadPlayers, id)
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// removeTurnEntry drops id from a turn order while keeping the active-turn
// pointer on the same member where possible.
func removeTurnEntry(order []string, idx *int, id string) []string {
	for i, v := range order {
		if v != id {
			continue
		}
		order = append(order[:i], order[i+1:]...)
		if *idx > i || *idx >= len(order) {
			*idx--
		}
		if *idx < 0 {
			*idx = 0
		}
		break
	}
	return order
}

// UpdateStatus sets a member's participation status.
func (e *Engine) UpdateStatus(id string, status MemberStatus) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	m := s.member(id)
	if m == nil {
		return nil, ErrMemberNotFound
	}
	m.Status = status
	s.touch()
	e.persist()
	return copySession(s), nil
}

// UpdateName renames a member.
func (e *Engine) UpdateName(id, name string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	m := s.member(id)
	if m == nil {
		return nil, ErrMemberNotFound
	}
	if name != "" {
		m.Name = name
	}
	s.touch()
	e.persist()
	return copySession(s), nil
}

// SelectCharacter assigns a character to the member, or clears the
// selection when characterID is empty. A character held by a different
// member cannot be taken.
func (e *Engine) SelectCharacter(id, characterID string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	m := s.member(id)
	if m == nil {
		return nil, ErrMemberNotFound
	}
	if characterID != "" {
		if _, ok := e.content.Character(characterID); !ok {
			return nil, ErrUnknownCharacter
		}
		for _, other := range s.Members {
			if other.ID != id && other.CharacterID == characterID {
				return nil, ErrCharacterTaken
			}
		}
	}

	m.CharacterID = characterID
	if characterID != "" && m.Status == StatusJoined {
		m.Status = StatusSelecting
	}
	s.touch()
	e.persist()
	return copySession(s), nil
}

// ToggleReady flips the member between selecting and ready. Readying
// requires a character selection.
func (e *Engine) ToggleReady(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	m := s.member(id)
	if m == nil {
		return nil, ErrMemberNotFound
	}
	if m.CharacterID == "" {
		return nil, ErrNoCharacter
	}

	if m.Status == StatusReady {
		m.Status = StatusSelecting
	} else {
		m.Status = StatusReady
	}
	s.touch()
	e.persist()
	return copySession(s), nil
}

// CanStart evaluates the three start gates in order and returns the first
// failure: minimum membership, every member has a character, every
// non-host member is ready.
func (e *Engine) CanStart(code string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[code]
	if !ok {
		return ErrSessionNotFound
	}
	return canStart(s)
}

func canStart(s *Session) error {
	if len(s.Members) < s.MinPlayers {
		return ErrNotEnoughPlayers
	}
	for _, m := range s.Members {
		if m.CharacterID == "" {
			return ErrMissingCharacters
		}
	}
	for _, m := range s.Members {
		if m.ID != s.HostID && m.Status != StatusReady {
			return ErrNotAllReady
		}
	}
	return nil
}

// Start moves the session from lobby to rolling and opens the dice ledger
// for every current member. Only the host can start.
func (e *Engine) Start(requesterID string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(requesterID)
	if s == nil {
		return nil, ErrNotInSession
	}
	if s.HostID != requesterID {
		return nil, ErrNotHost
	}
	if s.Phase != PhaseLobby {
		return nil, ErrNotInLobby
	}
	if err := canStart(s); err != nil {
		return nil, err
	}

	s.Phase = PhaseRolling
	s.DiceRolls = make(map[string]int, len(s.Members))
	s.NeedsRoll = make([]string, 0, len(s.Members))
	for _, m := range s.Members {
		s.NeedsRoll = append(s.NeedsRoll, m.ID)
	}
	s.touch()
	e.persist()

	e.log.Info("initiative rolling started",
		zap.String("session", s.Code),
		zap.Int("members", len(s.Members)),
	)
	return copySession(s), nil
}
