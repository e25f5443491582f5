package content

import "haunted-house-be/internal/game"

// Character trait tracks. Each track reads left to right on the character
// card; StartIndex is where the clip begins.
var characters = []game.Character{
	{
		ID:        "professor-longfellow",
		Name:      "Professor Longfellow",
		Speed:     game.TraitTrack{Track: [8]int{2, 2, 4, 4, 5, 5, 6, 6}, StartIndex: 3},
		Might:     game.TraitTrack{Track: [8]int{1, 2, 3, 4, 5, 5, 6, 6}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{1, 3, 3, 4, 5, 5, 6, 7}, StartIndex: 2},
		Knowledge: game.TraitTrack{Track: [8]int{4, 5, 5, 5, 5, 6, 7, 8}, StartIndex: 3},
	},
	{
		ID:        "heather-granville",
		Name:      "Heather Granville",
		Speed:     game.TraitTrack{Track: [8]int{3, 3, 4, 5, 6, 6, 7, 8}, StartIndex: 2},
		Might:     game.TraitTrack{Track: [8]int{3, 3, 3, 4, 5, 6, 7, 8}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{3, 3, 3, 4, 5, 6, 6, 6}, StartIndex: 2},
		Knowledge: game.TraitTrack{Track: [8]int{2, 3, 3, 4, 5, 6, 7, 8}, StartIndex: 4},
	},
	{
		ID:        "father-rhinehardt",
		Name:      "Father Rhinehardt",
		Speed:     game.TraitTrack{Track: [8]int{2, 3, 3, 4, 5, 6, 7, 7}, StartIndex: 2},
		Might:     game.TraitTrack{Track: [8]int{1, 2, 2, 4, 4, 5, 5, 7}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{3, 4, 5, 5, 6, 7, 7, 8}, StartIndex: 4},
		Knowledge: game.TraitTrack{Track: [8]int{1, 3, 3, 4, 5, 6, 6, 8}, StartIndex: 3},
	},
	{
		ID:        "jenny-leclerc",
		Name:      "Jenny LeClerc",
		Speed:     game.TraitTrack{Track: [8]int{2, 3, 4, 4, 4, 5, 6, 8}, StartIndex: 3},
		Might:     game.TraitTrack{Track: [8]int{3, 4, 4, 4, 4, 5, 6, 8}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{1, 1, 2, 4, 4, 4, 5, 6}, StartIndex: 4},
		Knowledge: game.TraitTrack{Track: [8]int{2, 3, 3, 4, 4, 5, 6, 8}, StartIndex: 2},
	},
	{
		ID:        "vivian-lopez",
		Name:      "Vivian Lopez",
		Speed:     game.TraitTrack{Track: [8]int{3, 4, 4, 4, 4, 6, 7, 8}, StartIndex: 3},
		Might:     game.TraitTrack{Track: [8]int{2, 2, 2, 4, 4, 5, 6, 6}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{4, 4, 4, 5, 6, 7, 8, 8}, StartIndex: 2},
		Knowledge: game.TraitTrack{Track: [8]int{4, 5, 5, 5, 5, 6, 6, 7}, StartIndex: 3},
	},
	{
		ID:        "ox-bellows",
		Name:      "Ox Bellows",
		Speed:     game.TraitTrack{Track: [8]int{2, 2, 2, 3, 4, 5, 5, 6}, StartIndex: 4},
		Might:     game.TraitTrack{Track: [8]int{4, 5, 5, 6, 6, 7, 8, 8}, StartIndex: 2},
		Sanity:    game.TraitTrack{Track: [8]int{2, 2, 3, 4, 5, 5, 6, 7}, StartIndex: 2},
		Knowledge: game.TraitTrack{Track: [8]int{2, 2, 3, 3, 5, 5, 6, 6}, StartIndex: 2},
	},
}
