package game

import (
	"sort"

	"go.uber.org/zap"
)

// RollResult reports what a roll submission did to the rolling phase.
// While Resolved is false and TiedIDs is non-empty, only the tied members
// are expected to roll again.
type RollResult struct {
	Value     int      `json:"value"`
	Resolved  bool     `json:"resolved"`
	TiedIDs   []string `json:"tiedPlayers,omitempty"`
	TurnOrder []string `json:"turnOrder,omitempty"`
}

// SubmitRoll records one initiative roll. The raw value is clamped into
// the configured dice range. When the last pending member has rolled, ties
// re-open rolling for the tied subset only; a fully unique ledger resolves
// into the canonical turn order and moves the session to playing.
func (e *Engine) SubmitRoll(id string, value int) (RollResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.sessionByMember(id)
	if s == nil {
		return RollResult{}, ErrNotInSession
	}
	if s.Phase != PhaseRolling {
		return RollResult{}, ErrNotInRollingPhase
	}
	if !contains(s.NeedsRoll, id) {
		return RollResult{}, ErrRollNotNeeded
	}

	if value < e.cfg.DiceMin {
		value = e.cfg.DiceMin
	}
	if value > e.cfg.DiceMax {
		value = e.cfg.DiceMax
	}
	s.DiceRolls[id] = value
	s.NeedsRoll = removeID(s.NeedsRoll, id)
	s.touch()

	if len(s.NeedsRoll) > 0 {
		e.persist()
		return RollResult{Value: value}, nil
	}

	tied := e.resolveRolls(s)
	e.persist()
	if len(tied) > 0 {
		return RollResult{Value: value, TiedIDs: append([]string(nil), tied...)}, nil
	}
	return RollResult{Value: value, Resolved: true, TurnOrder: append([]string(nil), s.TurnOrder...)}, nil
}

// resolveRolls runs the tie check once the pending set is empty. Tied
// members get their previous rolls discarded and roll again; everyone
// else's ranking value stands. A fully unique ledger resolves into the
// canonical order and starts play. Returns the tied subset, empty on
// resolution. Must be called with e.mu held.
func (e *Engine) resolveRolls(s *Session) []string {
	tied := tiedMembers(s)
	if len(tied) > 0 {
		for _, tid := range tied {
			delete(s.DiceRolls, tid)
		}
		s.NeedsRoll = tied
		e.log.Info("initiative tie, re-rolling",
			zap.String("session", s.Code),
			zap.Strings("tied", tied),
		)
		return tied
	}

	s.TurnOrder = rankedOrder(s)
	s.CurrentTurnIndex = 0
	s.Phase = PhasePlaying
	e.startPlaying(s)

	e.log.Info("turn order resolved",
		zap.String("session", s.Code),
		zap.Strings("order", s.TurnOrder),
	)
	return nil
}

// tiedMembers returns, in roster order, every member whose roll value is
// shared with at least one other member.
func tiedMembers(s *Session) []string {
	counts := make(map[int]int, len(s.DiceRolls))
	for _, v := range s.DiceRolls {
		counts[v]++
	}
	var tied []string
	for _, m := range s.Members {
		if v, ok := s.DiceRolls[m.ID]; ok && counts[v] > 1 {
			tied = append(tied, m.ID)
		}
	}
	return tied
}

// rankedOrder sorts the ledger descending by roll. Values are unique here;
// tie rounds have already collapsed duplicates.
func rankedOrder(s *Session) []string {
	order := make([]string, 0, len(s.DiceRolls))
	for id := range s.DiceRolls {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		return s.DiceRolls[order[i]] > s.DiceRolls[order[j]]
	})
	return order
}

// startPlaying seeds the map and the per-member progress store when a
// session enters the playing phase. Everyone starts in the entrance hall
// with an empty move budget; the first budget arrives via set-moves.
func (e *Engine) startPlaying(s *Session) {
	ps := &PlayerState{
		TurnOrder:        append([]string(nil), s.TurnOrder...),
		CurrentTurnIndex: 0,
		PlayerMoves:      make(map[string]int, len(s.Members)),
		PlayerPositions:  make(map[string]string, len(s.Members)),
		CharacterData:    make(map[string]*CharacterStats, len(s.Members)),
		PlayerCards:      make(map[string]*CardPile, len(s.Members)),
		DeadPlayers:      make(map[string]bool),
	}
	for _, m := range s.Members {
		ps.PlayerMoves[m.ID] = 0
		ps.PlayerPositions[m.ID] = e.content.StartingRoomID
		ps.PlayerCards[m.ID] = &CardPile{}
		if ch, ok := e.content.Character(m.CharacterID); ok {
			ps.CharacterData[m.ID] = &CharacterStats{
				SpeedIndex:     ch.Speed.StartIndex,
				MightIndex:     ch.Might.StartIndex,
				SanityIndex:    ch.Sanity.StartIndex,
				KnowledgeIndex: ch.Knowledge.StartIndex,
			}
		}
	}
	e.players[s.Code] = ps
	e.maps[s.Code] = e.seedMap()

	e.log.Info("game started",
		zap.String("session", s.Code),
		zap.Int("members", len(s.Members)),
	)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
