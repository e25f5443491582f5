package game

import "go.uber.org/zap"

// MoveResult is what a successful move intent returns. Revealed is set
// only when the step instantiated a new room.
type MoveResult struct {
	RoomID    string        `json:"roomId"`
	Revealed  *RevealedRoom `json:"revealedRoom,omitempty"`
	MovesLeft int           `json:"movesLeft"`
	TurnEnded bool          `json:"turnEnded"`
	NextTurn  string        `json:"nextTurn,omitempty"`
}

// Move runs the cross-store move sequence: validate, deduct a move, reveal
// if the door is unwired, reposition, advance the turn if the budget is
// exhausted. All preconditions (including pool availability for a pending
// reveal) are checked before the first write, so a failed move never
// leaves partial state. Clients rely on the reveal landing before the
// position update, which this ordering guarantees.
func (e *Engine) Move(id string, dir Direction) (MoveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !dir.Valid() {
		return MoveResult{}, ErrInvalidDirection
	}
	s := e.sessionByMember(id)
	if s == nil {
		return MoveResult{}, ErrNotInSession
	}
	if s.Phase != PhasePlaying {
		return MoveResult{}, ErrNotInPlayingPhase
	}
	if s.CurrentTurn() != id {
		return MoveResult{}, ErrNotYourTurn
	}
	ps := e.players[s.Code]
	ms := e.maps[s.Code]
	if ps == nil || ms == nil {
		return MoveResult{}, ErrNotInPlayingPhase
	}

	pos := ps.PlayerPositions[id]
	query, err := canMove(ms, pos, dir)
	if err != nil {
		return MoveResult{}, err
	}
	if !query.CanMove {
		return MoveResult{}, ErrNoDoor
	}
	if ps.PlayerMoves[id] <= 0 {
		return MoveResult{}, ErrNoMovesLeft
	}
	if query.NeedsReveal && len(e.eligibleTemplates(ms, dir.Opposite())) == 0 {
		return MoveResult{}, ErrPoolExhausted
	}

	movesLeft, turnEnded, err := useMove(ps, id)
	if err != nil {
		return MoveResult{}, err
	}

	target := query.TargetRoom
	var revealed *RevealedRoom
	if query.NeedsReveal {
		revealed, err = e.reveal(s.Code, pos, dir)
		if err != nil {
			// Unreachable: eligibility was checked above.
			e.log.Error("reveal failed after precheck", zap.Error(err))
			return MoveResult{}, ErrInternal
		}
		target = revealed.ID
	}

	ps.PlayerPositions[id] = target

	result := MoveResult{
		RoomID:    target,
		Revealed:  copyRoom(revealed),
		MovesLeft: movesLeft,
		TurnEnded: turnEnded,
	}
	if turnEnded {
		result.NextTurn = nextTurn(s, ps)
	}
	s.touch()
	e.persist()

	e.log.Debug("move applied",
		zap.String("session", s.Code),
		zap.String("member", id),
		zap.String("from", pos),
		zap.String("to", target),
		zap.Int("moves_left", movesLeft),
	)
	return result, nil
}
