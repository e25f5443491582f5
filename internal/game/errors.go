package game

import "errors"

// Intent failures are sentinel errors whose messages double as the
// machine-readable reason strings sent back to clients. None of them leave
// state partially mutated: every precondition is checked before the first
// write of an operation.
var (
	ErrSessionNotFound = errors.New("session_not_found")
	ErrSessionFull     = errors.New("session_full")
	ErrNotInSession    = errors.New("not_in_session")
	ErrMemberNotFound  = errors.New("member_not_found")

	ErrCharacterTaken   = errors.New("character_taken")
	ErrUnknownCharacter = errors.New("unknown_character")
	ErrNoCharacter      = errors.New("no_character")
	ErrNotHost          = errors.New("not_host")
	ErrNotInLobby       = errors.New("not_in_lobby")

	ErrNotEnoughPlayers  = errors.New("not_enough_players")
	ErrMissingCharacters = errors.New("missing_characters")
	ErrNotAllReady       = errors.New("not_all_ready")

	ErrNotInRollingPhase = errors.New("not_in_rolling_phase")
	ErrRollNotNeeded     = errors.New("roll_not_needed")

	ErrNotInPlayingPhase = errors.New("not_in_playing_phase")
	ErrNotYourTurn       = errors.New("not_your_turn")
	ErrNoMovesLeft       = errors.New("no_moves_left")

	ErrRoomNotFound     = errors.New("room_not_found")
	ErrNoDoor           = errors.New("no_door")
	ErrAlreadyConnected = errors.New("already_connected")
	ErrPoolExhausted    = errors.New("pool_exhausted")

	ErrInvalidDirection = errors.New("invalid_direction")
	ErrInvalidPayload   = errors.New("invalid_payload")
	ErrInternal         = errors.New("internal_error")
)

// Reason maps an engine error to the short reason string clients see.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
