package game

// SetMoves supplies a member's move budget for the active turn. The engine
// never derives budgets itself; character speed lives in static content
// the caller resolves. An empty targetID means the requester itself; a
// non-empty one must name a member of the requester's own session.
func (e *Engine) SetMoves(requesterID, targetID string, moves int) (*PlayerState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(requesterID)
	if s == nil {
		return nil, ErrNotInSession
	}
	if targetID == "" {
		targetID = requesterID
	}
	if s.member(targetID) == nil {
		return nil, ErrMemberNotFound
	}
	ps, ok := e.players[s.Code]
	if !ok {
		return nil, ErrNotInPlayingPhase
	}
	if moves < 0 {
		moves = 0
	}
	ps.PlayerMoves[targetID] = moves
	s.touch()
	e.persist()
	return copyPlayerState(ps), nil
}

// UseMove decrements the member's remaining budget. turnEnded is true iff
// the decrement reached exactly zero. The budget never goes negative.
func (e *Engine) UseMove(id string) (movesLeft int, turnEnded bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return 0, false, ErrNotInSession
	}
	ps, ok := e.players[s.Code]
	if !ok {
		return 0, false, ErrNotInPlayingPhase
	}
	movesLeft, turnEnded, err = useMove(ps, id)
	if err != nil {
		return 0, false, err
	}
	s.touch()
	e.persist()
	return movesLeft, turnEnded, nil
}

func useMove(ps *PlayerState, id string) (int, bool, error) {
	if ps.PlayerMoves[id] <= 0 {
		return 0, false, ErrNoMovesLeft
	}
	ps.PlayerMoves[id]--
	left := ps.PlayerMoves[id]
	return left, left == 0, nil
}

// NextTurn advances the active-turn pointer, wrapping unconditionally. It
// does not grant the new active member a budget; that arrives via
// SetMoves.
func (e *Engine) NextTurn(code string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[code]
	if !ok {
		return "", ErrSessionNotFound
	}
	ps, ok := e.players[code]
	if !ok {
		return "", ErrNotInPlayingPhase
	}
	next := nextTurn(s, ps)
	s.touch()
	e.persist()
	return next, nil
}

// nextTurn moves both projections of the turn pointer in lockstep. Must be
// called with e.mu held.
func nextTurn(s *Session, ps *PlayerState) string {
	if len(ps.TurnOrder) == 0 {
		return ""
	}
	ps.CurrentTurnIndex = (ps.CurrentTurnIndex + 1) % len(ps.TurnOrder)
	s.CurrentTurnIndex = ps.CurrentTurnIndex
	return ps.TurnOrder[ps.CurrentTurnIndex]
}

// Position returns a member's current room.
func (e *Engine) Position(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return "", ErrNotInSession
	}
	ps, ok := e.players[s.Code]
	if !ok {
		return "", ErrNotInPlayingPhase
	}
	return ps.PlayerPositions[id], nil
}

// MarkDead flags a member as dead without removing it from the session.
func (e *Engine) MarkDead(id string) (*PlayerState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	ps, ok := e.players[s.Code]
	if !ok {
		return nil, ErrNotInPlayingPhase
	}
	if ps.DeadPlayers == nil {
		ps.DeadPlayers = make(map[string]bool)
	}
	ps.DeadPlayers[id] = true
	s.touch()
	e.persist()
	return copyPlayerState(ps), nil
}

// GrantCard appends a card to the member's pile for the given deck.
func (e *Engine) GrantCard(id string, deck TokenType, cardID string) (*PlayerState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return nil, ErrNotInSession
	}
	ps, ok := e.players[s.Code]
	if !ok {
		return nil, ErrNotInPlayingPhase
	}
	pile := ps.PlayerCards[id]
	if pile == nil {
		pile = &CardPile{}
		if ps.PlayerCards == nil {
			ps.PlayerCards = make(map[string]*CardPile)
		}
		ps.PlayerCards[id] = pile
	}
	switch deck {
	case TokenItem:
		pile.Items = append(pile.Items, cardID)
	case TokenEvent:
		pile.Events = append(pile.Events, cardID)
	case TokenOmen:
		pile.Omens = append(pile.Omens, cardID)
	}
	s.touch()
	e.persist()
	return copyPlayerState(ps), nil
}
