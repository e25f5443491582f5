// Package content holds the static reference data the engine consumes:
// the starting subgraph, the room template pool, and the character trait
// tables. Everything here is read-only; the engine deep-copies whatever it
// instantiates per session.
package content

import "haunted-house-be/internal/game"

// StartingRoomID is where every player begins.
const StartingRoomID = "entrance-hall"

// startingRooms is the fixed subgraph every new map is seeded with: a
// vertical chain on the ground floor plus the upper landing reached by the
// grand staircase.
var startingRooms = []game.RevealedRoom{
	{
		ID:    "entrance-hall",
		Name:  "Entrance Hall",
		X:     0,
		Y:     0,
		Doors: []game.Direction{game.North, game.East, game.West},
		Floor: game.FloorGround,
	},
	{
		ID:    "foyer",
		Name:  "Foyer",
		X:     0,
		Y:     1,
		Doors: []game.Direction{game.North, game.South, game.East, game.West},
		Floor: game.FloorGround,
	},
	{
		ID:    "grand-staircase",
		Name:  "Grand Staircase",
		X:     0,
		Y:     2,
		Doors: []game.Direction{game.South},
		Floor: game.FloorGround,
	},
	{
		ID:    "upper-landing",
		Name:  "Upper Landing",
		X:     0,
		Y:     0,
		Doors: []game.Direction{game.North, game.South, game.East, game.West},
		Floor: game.FloorUpper,
	},
}

var seedConnections = []game.SeedConnection{
	{From: "entrance-hall", Dir: game.North, To: "foyer"},
	{From: "foyer", Dir: game.North, To: "grand-staircase"},
}

// The staircase link is declared for clients but never consulted by
// movement or reveal.
var specialLinks = []game.SpecialLink{
	{From: "grand-staircase", To: "upper-landing", Kind: "stairs"},
}

// templates is the reveal pool. Each session consumes each template at
// most once.
var templates = []game.RoomTemplate{
	{ID: "chapel", Name: "Chapel", Doors: []game.Direction{game.North, game.South}, Floor: game.FloorGround, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "dining-room", Name: "Dining Room", Doors: []game.Direction{game.North, game.East, game.West}, Floor: game.FloorGround, Tokens: []game.TokenType{game.TokenOmen}},
	{ID: "kitchen", Name: "Kitchen", Doors: []game.Direction{game.South, game.East}, Floor: game.FloorGround, Tokens: []game.TokenType{game.TokenItem}},
	{ID: "ballroom", Name: "Ballroom", Doors: []game.Direction{game.North, game.South, game.East, game.West}, Floor: game.FloorGround, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "conservatory", Name: "Conservatory", Doors: []game.Direction{game.North, game.West}, Floor: game.FloorGround, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "library", Name: "Library", Doors: []game.Direction{game.North, game.South}, Floor: game.FloorUpper, Tokens: []game.TokenType{game.TokenItem}},
	{ID: "master-bedroom", Name: "Master Bedroom", Doors: []game.Direction{game.South, game.West}, Floor: game.FloorUpper, Tokens: []game.TokenType{game.TokenOmen}},
	{ID: "gallery", Name: "Gallery", Doors: []game.Direction{game.North, game.East, game.West}, Floor: game.FloorUpper, Tokens: []game.TokenType{game.TokenOmen}},
	{ID: "attic", Name: "Attic", Doors: []game.Direction{game.South}, Floor: game.FloorUpper, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "bedroom", Name: "Bedroom", Doors: []game.Direction{game.East, game.West}, Floor: game.FloorUpper, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "crypt", Name: "Crypt", Doors: []game.Direction{game.North, game.South}, Floor: game.FloorBasement, Tokens: []game.TokenType{game.TokenOmen}},
	{ID: "furnace-room", Name: "Furnace Room", Doors: []game.Direction{game.East, game.West}, Floor: game.FloorBasement, Tokens: []game.TokenType{game.TokenOmen}},
	{ID: "wine-cellar", Name: "Wine Cellar", Doors: []game.Direction{game.North, game.East}, Floor: game.FloorBasement, Tokens: []game.TokenType{game.TokenItem}},
	{ID: "coal-chute", Name: "Coal Chute", Doors: []game.Direction{game.South, game.West}, Floor: game.FloorBasement, Tokens: []game.TokenType{game.TokenEvent}},
	{ID: "pentagram-chamber", Name: "Pentagram Chamber", Doors: []game.Direction{game.North, game.South, game.East, game.West}, Floor: game.FloorBasement, Tokens: []game.TokenType{game.TokenOmen}},
}

// Default bundles everything the engine needs.
func Default() game.Content {
	return game.Content{
		StartingRooms:   startingRooms,
		SeedConnections: seedConnections,
		SpecialLinks:    specialLinks,
		StartingRoomID:  StartingRoomID,
		Templates:       templates,
		Characters:      characters,
	}
}
