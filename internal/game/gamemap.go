package game

import "go.uber.org/zap"

// seedMap instantiates the fixed starting subgraph. Rooms and connections
// are deep-copied from content so per-session mutation never touches the
// shared data.
func (e *Engine) seedMap() *MapState {
	ms := &MapState{
		RevealedRooms: make(map[string]*RevealedRoom, len(e.content.StartingRooms)),
		Connections:   make(map[string]map[Direction]string, len(e.content.StartingRooms)),
		SpecialLinks:  append([]SpecialLink(nil), e.content.SpecialLinks...),
	}
	for i := range e.content.StartingRooms {
		room := copyRoom(&e.content.StartingRooms[i])
		ms.RevealedRooms[room.ID] = room
		ms.Connections[room.ID] = make(map[Direction]string)
	}
	for _, c := range e.content.SeedConnections {
		ms.Connections[c.From][c.Dir] = c.To
		ms.Connections[c.To][c.Dir.Opposite()] = c.From
	}
	return ms
}

func copyRoom(r *RevealedRoom) *RevealedRoom {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Doors = append([]Direction(nil), r.Doors...)
	cp.Tokens = append([]TokenType(nil), r.Tokens...)
	return &cp
}

// MoveQuery is the three-way answer to "can I walk that way": no door at
// all, an existing connection, or a door that still needs a reveal.
type MoveQuery struct {
	CanMove     bool   `json:"canMove"`
	NeedsReveal bool   `json:"needsReveal"`
	TargetRoom  string `json:"targetRoom,omitempty"`
}

// CanMove inspects the map without mutating it.
func (e *Engine) CanMove(code, roomID string, dir Direction) (MoveQuery, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ms, ok := e.maps[code]
	if !ok {
		return MoveQuery{}, ErrSessionNotFound
	}
	return canMove(ms, roomID, dir)
}

func canMove(ms *MapState, roomID string, dir Direction) (MoveQuery, error) {
	room, ok := ms.RevealedRooms[roomID]
	if !ok {
		return MoveQuery{}, ErrRoomNotFound
	}
	if !room.HasDoor(dir) {
		return MoveQuery{}, nil
	}
	if target, connected := ms.Connections[roomID][dir]; connected {
		return MoveQuery{CanMove: true, TargetRoom: target}, nil
	}
	return MoveQuery{CanMove: true, NeedsReveal: true}, nil
}

// eligibleTemplates filters the pool to templates not yet revealed in this
// session that declare a door facing back toward the origin.
func (e *Engine) eligibleTemplates(ms *MapState, backDoor Direction) []RoomTemplate {
	var out []RoomTemplate
	for _, t := range e.content.Templates {
		if _, revealed := ms.RevealedRooms[t.ID]; revealed {
			continue
		}
		for _, d := range t.Doors {
			if d == backDoor {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Reveal instantiates a random eligible template one grid step from the
// origin and wires the connection both ways.
func (e *Engine) Reveal(code, fromRoomID string, dir Direction) (*RevealedRoom, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.reveal(code, fromRoomID, dir)
	if err != nil {
		return nil, err
	}
	if s, ok := e.sessions[code]; ok {
		s.touch()
	}
	e.persist()
	return copyRoom(room), nil
}

// reveal holds the actual reveal logic so the movement coordinator can run
// it inside its own locked sequence. Failure precedence: session, room,
// door, existing connection, pool. Must be called with e.mu held.
func (e *Engine) reveal(code, fromRoomID string, dir Direction) (*RevealedRoom, error) {
	ms, ok := e.maps[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	from, ok := ms.RevealedRooms[fromRoomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if !from.HasDoor(dir) {
		return nil, ErrNoDoor
	}
	if _, connected := ms.Connections[fromRoomID][dir]; connected {
		return nil, ErrAlreadyConnected
	}

	opposite := dir.Opposite()
	pool := e.eligibleTemplates(ms, opposite)
	if len(pool) == 0 {
		return nil, ErrPoolExhausted
	}
	tmpl := pool[e.rng.Intn(len(pool))]

	dx, dy := dir.Offset()
	room := &RevealedRoom{
		ID:     tmpl.ID,
		Name:   tmpl.Name,
		X:      from.X + dx,
		Y:      from.Y + dy,
		Doors:  append([]Direction(nil), tmpl.Doors...),
		Floor:  tmpl.Floor,
		Tokens: append([]TokenType(nil), tmpl.Tokens...),
	}

	ms.RevealedRooms[room.ID] = room
	if ms.Connections[fromRoomID] == nil {
		ms.Connections[fromRoomID] = make(map[Direction]string)
	}
	ms.Connections[room.ID] = make(map[Direction]string)
	ms.Connections[fromRoomID][dir] = room.ID
	ms.Connections[room.ID][opposite] = fromRoomID

	e.log.Info("room revealed",
		zap.String("session", code),
		zap.String("room", room.ID),
		zap.String("from", fromRoomID),
		zap.String("direction", string(dir)),
	)
	return room, nil
}

// Map returns a detached copy of the map state for a session.
func (e *Engine) Map(code string) (*MapState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ms, ok := e.maps[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copyMapState(ms), nil
}
