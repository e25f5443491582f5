package game

import "time"

// Phase is the coarse session state. Transitions are monotonic:
// lobby -> rolling -> playing.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhaseRolling Phase = "rolling"
	PhasePlaying Phase = "playing"
)

// MemberStatus tracks a member's pre-game participation state.
type MemberStatus string

const (
	StatusJoined    MemberStatus = "joined"
	StatusSelecting MemberStatus = "selecting"
	StatusReady     MemberStatus = "ready"
)

// Member is one participant, keyed by the opaque connection id the
// transport hands us.
type Member struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Status      MemberStatus `json:"status"`
	CharacterID string       `json:"characterId,omitempty"`
}

// Session is one game instance. Members is ordered; the first remaining
// member inherits the host role when the host leaves.
type Session struct {
	Code             string         `json:"id"`
	HostID           string         `json:"hostId"`
	Members          []*Member      `json:"players"`
	MinPlayers       int            `json:"minPlayers"`
	MaxPlayers       int            `json:"maxPlayers"`
	CreatedAt        time.Time      `json:"createdAt"`
	LastActive       time.Time      `json:"lastActive"`
	Phase            Phase          `json:"gamePhase"`
	DiceRolls        map[string]int `json:"diceRolls,omitempty"`
	NeedsRoll        []string       `json:"needsRoll,omitempty"`
	TurnOrder        []string       `json:"turnOrder,omitempty"`
	CurrentTurnIndex int            `json:"currentTurnIndex"`
}

// touch stamps the session as active; idle sessions past the TTL are swept.
func (s *Session) touch() {
	s.LastActive = time.Now()
}

func (s *Session) member(id string) *Member {
	for _, m := range s.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// CurrentTurn returns the id of the member whose turn it is, or "" before
// the turn order is resolved.
func (s *Session) CurrentTurn() string {
	if len(s.TurnOrder) == 0 {
		return ""
	}
	return s.TurnOrder[s.CurrentTurnIndex%len(s.TurnOrder)]
}

// PlayerState is the per-session movement bookkeeping, mirroring the turn
// order for broadcast alongside per-member progress.
type PlayerState struct {
	TurnOrder        []string                   `json:"turnOrder"`
	CurrentTurnIndex int                        `json:"currentTurnIndex"`
	PlayerMoves      map[string]int             `json:"playerMoves"`
	PlayerPositions  map[string]string          `json:"playerPositions"`
	CharacterData    map[string]*CharacterStats `json:"characterData,omitempty"`
	PlayerCards      map[string]*CardPile       `json:"playerCards,omitempty"`
	DeadPlayers      map[string]bool            `json:"deadPlayers,omitempty"`
}

// CharacterStats are the current clip positions on the four trait tracks.
type CharacterStats struct {
	SpeedIndex     int `json:"speedIndex"`
	MightIndex     int `json:"mightIndex"`
	SanityIndex    int `json:"sanityIndex"`
	KnowledgeIndex int `json:"knowledgeIndex"`
}

// CardPile is a member's accumulated cards, grouped by deck.
type CardPile struct {
	Items  []string `json:"items"`
	Events []string `json:"events"`
	Omens  []string `json:"omens"`
}

// RevealedRoom is a room instantiated on the map grid. X/Y are scoped to
// the room's floor layer.
type RevealedRoom struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Doors  []Direction `json:"doors"`
	Floor  Floor       `json:"floor"`
	Tokens []TokenType `json:"tokens,omitempty"`
}

// HasDoor reports whether the room declares an exit in dir.
func (r *RevealedRoom) HasDoor(dir Direction) bool {
	for _, d := range r.Doors {
		if d == dir {
			return true
		}
	}
	return false
}

// SpecialLink is a non-directional connection between two fixed rooms
// (the grand staircase). It is carried for clients but never consulted by
// movement or reveal.
type SpecialLink struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// MapState is the revealed graph for one session. Connections are always
// symmetric: connections[A][d] == B implies connections[B][opposite(d)] == A.
type MapState struct {
	RevealedRooms map[string]*RevealedRoom        `json:"revealedRooms"`
	Connections   map[string]map[Direction]string `json:"connections"`
	SpecialLinks  []SpecialLink                   `json:"specialLinks,omitempty"`
}

// FullState is the snapshot broadcast to every session member after a
// successful mutation. PlayerState and Map are nil before the playing phase.
type FullState struct {
	Session     *Session     `json:"session"`
	PlayerState *PlayerState `json:"playerState,omitempty"`
	Map         *MapState    `json:"map,omitempty"`
}
