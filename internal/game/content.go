package game

// TokenType marks what a room grants when first entered. The engine only
// carries the markers; their effects are resolved by clients against the
// card tables.
type TokenType string

const (
	TokenOmen  TokenType = "omen"
	TokenEvent TokenType = "event"
	TokenItem  TokenType = "item"
)

// RoomTemplate is a static room archetype from which revealed rooms are
// instantiated. Templates are read-only; reveals deep-copy their slices.
type RoomTemplate struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Doors  []Direction `json:"doors"`
	Floor  Floor       `json:"floor"`
	Tokens []TokenType `json:"tokens,omitempty"`
}

// TraitTrack is one 8-slot stat track with the starting clip position.
type TraitTrack struct {
	Track      [8]int `json:"track"`
	StartIndex int    `json:"startIndex"`
}

// Character is a playable character with its four trait tracks.
type Character struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Speed     TraitTrack `json:"speed"`
	Might     TraitTrack `json:"might"`
	Sanity    TraitTrack `json:"sanity"`
	Knowledge TraitTrack `json:"knowledge"`
}

// SeedConnection wires two starting rooms together when a map is created.
type SeedConnection struct {
	From string
	Dir  Direction
	To   string
}

// Content bundles the static reference data the engine consumes. It is
// supplied at construction and never written to.
type Content struct {
	StartingRooms   []RevealedRoom
	SeedConnections []SeedConnection
	SpecialLinks    []SpecialLink
	StartingRoomID  string
	Templates       []RoomTemplate
	Characters      []Character
}

// Character looks a character up by id.
func (c Content) Character(id string) (Character, bool) {
	for _, ch := range c.Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Character{}, false
}

// Template looks a room template up by id.
func (c Content) Template(id string) (RoomTemplate, bool) {
	for _, t := range c.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return RoomTemplate{}, false
}
