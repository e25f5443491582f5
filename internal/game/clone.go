package game

// Everything handed across the engine boundary is a detached copy. Intents
// mutate engine-owned state under the mutex, but transports marshal what
// they were given after it is released; sharing live maps or slices with
// them would let a later intent race the marshal.

func copySession(s *Session) *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Members = make([]*Member, len(s.Members))
	for i, m := range s.Members {
		mc := *m
		cp.Members[i] = &mc
	}
	cp.DiceRolls = cloneMap(s.DiceRolls)
	cp.NeedsRoll = append([]string(nil), s.NeedsRoll...)
	cp.TurnOrder = append([]string(nil), s.TurnOrder...)
	return &cp
}

func copyPlayerState(ps *PlayerState) *PlayerState {
	if ps == nil {
		return nil
	}
	cp := &PlayerState{
		TurnOrder:        append([]string(nil), ps.TurnOrder...),
		CurrentTurnIndex: ps.CurrentTurnIndex,
		PlayerMoves:      cloneMap(ps.PlayerMoves),
		PlayerPositions:  cloneMap(ps.PlayerPositions),
		DeadPlayers:      cloneMap(ps.DeadPlayers),
	}
	if ps.CharacterData != nil {
		cp.CharacterData = make(map[string]*CharacterStats, len(ps.CharacterData))
		for k, v := range ps.CharacterData {
			if v == nil {
				cp.CharacterData[k] = nil
				continue
			}
			vc := *v
			cp.CharacterData[k] = &vc
		}
	}
	if ps.PlayerCards != nil {
		cp.PlayerCards = make(map[string]*CardPile, len(ps.PlayerCards))
		for k, v := range ps.PlayerCards {
			if v == nil {
				cp.PlayerCards[k] = nil
				continue
			}
			cp.PlayerCards[k] = &CardPile{
				Items:  append([]string(nil), v.Items...),
				Events: append([]string(nil), v.Events...),
				Omens:  append([]string(nil), v.Omens...),
			}
		}
	}
	return cp
}

func copyMapState(ms *MapState) *MapState {
	if ms == nil {
		return nil
	}
	cp := &MapState{
		RevealedRooms: make(map[string]*RevealedRoom, len(ms.RevealedRooms)),
		Connections:   make(map[string]map[Direction]string, len(ms.Connections)),
		SpecialLinks:  append([]SpecialLink(nil), ms.SpecialLinks...),
	}
	for id, r := range ms.RevealedRooms {
		cp.RevealedRooms[id] = copyRoom(r)
	}
	for id, conns := range ms.Connections {
		inner := make(map[Direction]string, len(conns))
		for d, to := range conns {
			inner[d] = to
		}
		cp.Connections[id] = inner
	}
	return cp
}

func cloneMap[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
